package session

import (
	"errors"
	"testing"

	"github.com/filmplane/filmplane/internal/shared"
)

func TestTokenStore(t *testing.T) {
	t.Run("Browser Context", func(t *testing.T) {
		t.Run("Get Returns False When Storage Is Empty", func(t *testing.T) {
			store := NewTokenStore(BrowserContext(), NewMemoryStorage(), nil)

			if _, ok := store.Get(); ok {
				t.Error("expected no credential in empty storage")
			}
			if store.Has() {
				t.Error("expected Has to report false")
			}
		})

		t.Run("Get Returns Stored Credential", func(t *testing.T) {
			storage := NewMemoryStorage()
			storage.Set(KeyAccessToken, "abc123")
			store := NewTokenStore(BrowserContext(), storage, nil)

			token, ok := store.Get()
			if !ok {
				t.Fatal("expected credential to be present")
			}
			if token != "abc123" {
				t.Errorf("expected 'abc123', got %s", token)
			}
		})

		t.Run("Empty String Counts As Absent", func(t *testing.T) {
			storage := NewMemoryStorage()
			storage.Set(KeyAccessToken, "")
			store := NewTokenStore(BrowserContext(), storage, nil)

			if store.Has() {
				t.Error("expected empty credential to count as absent")
			}
		})

		t.Run("Set And Clear Round Trip Through Storage", func(t *testing.T) {
			storage := NewMemoryStorage()
			store := NewTokenStore(BrowserContext(), storage, nil)

			store.set("tok")
			if v, _ := storage.Get(KeyAccessToken); v != "tok" {
				t.Errorf("expected storage to hold 'tok', got %s", v)
			}

			store.clear()
			if _, ok := storage.Get(KeyAccessToken); ok {
				t.Error("expected storage entry to be removed")
			}
		})
	})

	t.Run("Server Context", func(t *testing.T) {
		t.Run("Get Reads From Request Cookies", func(t *testing.T) {
			exec := ServerContext(map[string]string{KeyAccessToken: "cookie-token"})
			store := NewTokenStore(exec, NewMemoryStorage(), nil)

			token, ok := store.Get()
			if !ok {
				t.Fatal("expected cookie credential to be found")
			}
			if token != "cookie-token" {
				t.Errorf("expected 'cookie-token', got %s", token)
			}
		})

		t.Run("Missing Cookie Means Absent", func(t *testing.T) {
			store := NewTokenStore(ServerContext(nil), NewMemoryStorage(), nil)
			if store.Has() {
				t.Error("expected no credential without a cookie")
			}
		})

		t.Run("Set And Clear Are No-Ops", func(t *testing.T) {
			storage := NewMemoryStorage()
			exec := ServerContext(map[string]string{KeyAccessToken: "cookie-token"})
			store := NewTokenStore(exec, storage, nil)

			store.set("new-token")
			if _, ok := storage.Get(KeyAccessToken); ok {
				t.Error("expected server-side set to be a no-op")
			}

			store.clear()
			if token, _ := store.Get(); token != "cookie-token" {
				t.Error("expected cookie credential to remain readable after clear")
			}
		})
	})

	t.Run("TokenSource", func(t *testing.T) {
		t.Run("Returns Bearer Token When Present", func(t *testing.T) {
			storage := NewMemoryStorage()
			storage.Set(KeyAccessToken, "abc123")
			store := NewTokenStore(BrowserContext(), storage, nil)

			tok, err := store.Token()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tok.AccessToken != "abc123" {
				t.Errorf("expected access token 'abc123', got %s", tok.AccessToken)
			}
			if tok.TokenType != "Bearer" {
				t.Errorf("expected token type 'Bearer', got %s", tok.TokenType)
			}
		})

		t.Run("Returns ErrNotAuthenticated When Absent", func(t *testing.T) {
			store := NewTokenStore(BrowserContext(), NewMemoryStorage(), nil)

			_, err := store.Token()
			if !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected ErrNotAuthenticated, got %v", err)
			}
		})
	})
}
