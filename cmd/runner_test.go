package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/filmplane/filmplane/internal/session"
	"github.com/filmplane/filmplane/internal/shared"
	tu "github.com/filmplane/filmplane/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			storage := session.NewMemoryStorage()

			runner := NewRunner(RunnerOpts{
				Config:  config,
				Logger:  logger,
				Output:  output,
				Storage: storage,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.engine == nil {
				t.Error("expected session engine to be wired")
			}
			if runner.router == nil || runner.auth == nil || runner.identity == nil {
				t.Error("expected session core to be wired")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("seeds auth state from storage", func(t *testing.T) {
			storage := session.NewMemoryStorage()
			storage.Set(session.KeyAccessToken, "persisted")
			storage.Set(session.KeyCurrentUserID, "u-1")
			storage.Set(session.KeyCurrentUserName, "ada")

			runner := NewRunner(RunnerOpts{Storage: storage})

			if !runner.auth.Authenticated() {
				t.Error("expected persisted credential to authenticate the session")
			}
			if got := runner.identity.Current(); got.DisplayName != "ada" {
				t.Errorf("expected seeded identity, got %+v", got)
			}
		})

		t.Run("registers all command groups", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			commands := runner.register()

			want := []string{"setup", "auth", "films", "playlists", "users", "export", "serve", "tui"}
			if len(commands) != len(want) {
				t.Fatalf("expected %d commands, got %d", len(want), len(commands))
			}
			for i, name := range want {
				if commands[i].Name != name {
					t.Errorf("command %d: expected %s, got %s", i, name, commands[i].Name)
				}
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			if err := runner.writeJSON(data, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			if err := runner.writeJSON(data, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			expected := `{"key":"value"}` + "\n"
			if output.String() != expected {
				t.Errorf("expected %q, got %q", expected, output.String())
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			// channels cannot be marshaled to JSON
			err := runner.writeJSON(make(chan int), false)
			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if output.String() != "hello world" {
				t.Errorf("expected 'hello world', got %q", output.String())
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			if err := runner.writePlain("text"); err == nil {
				t.Error("expected error from failing writer")
			}
		})
	})

	t.Run("writePlainHeader", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		runner.writePlainHeader("Export complete")

		if !strings.Contains(output.String(), "Export complete") {
			t.Errorf("expected header title, got %q", output.String())
		}
	})

	t.Run("End To End Sign-In Over HTTP", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/auth/token":
				json.NewEncoder(w).Encode(map[string]string{"access_token": "srv-token"})
			case "/users/current":
				json.NewEncoder(w).Encode(map[string]any{"userid": "u-1"})
			case "/users/u-1":
				json.NewEncoder(w).Encode(map[string]any{"userid": "u-1", "username": "ada"})
			default:
				t.Errorf("unexpected request path: %s", r.URL.Path)
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		config := shared.DefaultConfig()
		config.API.BaseURL = server.URL
		storage := session.NewMemoryStorage()
		runner := NewRunner(RunnerOpts{
			Config:  config,
			Output:  &bytes.Buffer{},
			Storage: storage,
		})

		result, err := runner.engine.Login(context.Background(), nil, "ada", "secret")
		if err != nil {
			t.Fatalf("expected sign-in to succeed, got %v", err)
		}
		if result.Identity.DisplayName != "ada" {
			t.Errorf("unexpected identity: %+v", result.Identity)
		}
		if token, _ := storage.Get(session.KeyAccessToken); token != "srv-token" {
			t.Errorf("expected committed credential 'srv-token', got %q", token)
		}
		if got := runner.router.Current(); got != session.RoutePlane {
			t.Errorf("expected navigation to %s, got %s", session.RoutePlane, got)
		}
	})
}
