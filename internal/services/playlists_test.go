package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPlaylistService(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		t.Run("Own Playlists", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST method, got %s", r.Method)
				}
				if r.URL.Path != "/playlists/get" {
					t.Errorf("expected path '/playlists/get', got %s", r.URL.Path)
				}
				w.Write([]byte(`[{"playlistid":"p-1","name":"Favorites"}]`))
			}))
			defer server.Close()

			svc := NewPlaylistService(NewClient(server.URL, nil))
			playlists, err := svc.List(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(playlists) != 1 || playlists[0].Name != "Favorites" {
				t.Errorf("unexpected playlists: %+v", playlists)
			}
		})

		t.Run("Another User's Playlists Carry The Target Filter", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var body map[string]map[string]string
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Errorf("failed to decode request body: %v", err)
				}
				if body["target_user"]["userid"] != "u-7" {
					t.Errorf("expected target user 'u-7', got %v", body)
				}
				w.Write([]byte("[]"))
			}))
			defer server.Close()

			svc := NewPlaylistService(NewClient(server.URL, nil))
			if _, err := svc.ListForUser(context.Background(), "u-7"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	})

	t.Run("Content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/playlists/content" {
				t.Errorf("expected path '/playlists/content', got %s", r.URL.Path)
			}

			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["playlistid"] != "p-1" {
				t.Errorf("expected playlistid 'p-1', got %s", body["playlistid"])
			}

			w.Write([]byte(`[{"preview":{"filmid":"42","name":"Solaris"}}]`))
		}))
		defer server.Close()

		svc := NewPlaylistService(NewClient(server.URL, nil))
		items, err := svc.Content(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(items) != 1 || items[0].Preview.Name != "Solaris" {
			t.Errorf("unexpected content: %+v", items)
		}
	})

	t.Run("Create", func(t *testing.T) {
		t.Run("Manual Playlist Sends Nil GenAttrs", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/playlists/create" {
					t.Errorf("expected path '/playlists/create', got %s", r.URL.Path)
				}

				var body map[string]any
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Errorf("failed to decode request body: %v", err)
				}
				if body["name"] != "Favorites" {
					t.Errorf("expected name 'Favorites', got %v", body["name"])
				}
				if body["gen_attrs"] != nil {
					t.Errorf("expected nil gen_attrs, got %v", body["gen_attrs"])
				}

				json.NewEncoder(w).Encode("p-new")
			}))
			defer server.Close()

			svc := NewPlaylistService(NewClient(server.URL, nil))
			id, err := svc.Create(context.Background(), "Favorites", "my picks", true)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if id != "p-new" {
				t.Errorf("expected playlist id 'p-new', got %s", id)
			}
		})
	})

	t.Run("Membership", func(t *testing.T) {
		t.Run("AddFilm And RemoveFilm Carry Filters And Target", func(t *testing.T) {
			var paths []string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				paths = append(paths, r.URL.Path)

				var body map[string]map[string]string
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Errorf("failed to decode request body: %v", err)
				}
				if body["filters"]["playlistid"] != "p-1" {
					t.Errorf("expected playlist filter 'p-1', got %v", body)
				}
				if body["target_film"]["filmid"] != "42" {
					t.Errorf("expected target film '42', got %v", body)
				}
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			svc := NewPlaylistService(NewClient(server.URL, nil))
			if err := svc.AddFilm(context.Background(), "p-1", "42"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if err := svc.RemoveFilm(context.Background(), "p-1", "42"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			want := []string{"/playlists/add", "/playlists/remove-film"}
			for i, w := range want {
				if paths[i] != w {
					t.Errorf("expected path %s, got %s", w, paths[i])
				}
			}
		})
	})

	t.Run("SetPublicity Sends The Flag As A Query Parameter", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/playlists/set-publicity" {
				t.Errorf("expected path '/playlists/set-publicity', got %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("publicity"); got != "false" {
				t.Errorf("expected publicity=false, got %s", got)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		svc := NewPlaylistService(NewClient(server.URL, nil))
		if err := svc.SetPublicity(context.Background(), "p-1", false); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("Remove Issues A DELETE With A Body Filter", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				t.Errorf("expected DELETE method, got %s", r.Method)
			}

			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["playlistid"] != "p-1" {
				t.Errorf("expected playlistid 'p-1', got %s", body["playlistid"])
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		svc := NewPlaylistService(NewClient(server.URL, nil))
		if err := svc.Remove(context.Background(), "p-1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}
