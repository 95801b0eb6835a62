package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

// delayedSource publishes StatusUnknown first, then a terminal status after
// the subscriber is attached.
type delayedSource struct {
	terminal Status
}

func (d *delayedSource) Status() Status {
	return StatusUnknown
}

func (d *delayedSource) Subscribe() (<-chan Status, func()) {
	ch := make(chan Status, 2)
	ch <- StatusUnknown
	ch <- d.terminal
	return ch, func() {}
}

// silentSource never publishes a terminal status.
type silentSource struct{}

func (s *silentSource) Status() Status {
	return StatusUnknown
}

func (s *silentSource) Subscribe() (<-chan Status, func()) {
	return make(chan Status), func() {}
}

func TestAuthGuard(t *testing.T) {
	t.Run("Server Pass Short-Circuits To Allowed", func(t *testing.T) {
		guard := NewAuthGuard(ServerContext(nil), &silentSource{}, nil)

		decision, err := guard.Evaluate(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !decision.Allowed {
			t.Error("expected server evaluation to allow without consulting the source")
		}
	})

	t.Run("Browser Pass", func(t *testing.T) {
		t.Run("Allows On Authenticated", func(t *testing.T) {
			storage := NewMemoryStorage()
			storage.Set(KeyAccessToken, "tok")
			auth := NewAuthState(NewTokenStore(BrowserContext(), storage, nil), nil)
			guard := NewAuthGuard(BrowserContext(), auth, nil)

			decision, err := guard.Evaluate(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !decision.Allowed {
				t.Error("expected authenticated status to allow")
			}
		})

		t.Run("Denies With Login Redirect On NotAuthenticated", func(t *testing.T) {
			auth := NewAuthState(NewTokenStore(BrowserContext(), NewMemoryStorage(), nil), nil)
			guard := NewAuthGuard(BrowserContext(), auth, nil)

			decision, err := guard.Evaluate(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if decision.Allowed {
				t.Error("expected denial without a credential")
			}
			if decision.RedirectTo != RouteLogin {
				t.Errorf("expected redirect to %s, got %s", RouteLogin, decision.RedirectTo)
			}
		})

		t.Run("Skips Unknown And Waits For First Terminal Value", func(t *testing.T) {
			guard := NewAuthGuard(BrowserContext(), &delayedSource{terminal: StatusAuthenticated}, nil)

			decision, err := guard.Evaluate(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !decision.Allowed {
				t.Error("expected guard to decide on the terminal value, not unknown")
			}
		})

		t.Run("Context Cancellation Aborts The Wait", func(t *testing.T) {
			guard := NewAuthGuard(BrowserContext(), &silentSource{}, nil)

			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()

			_, err := guard.Evaluate(ctx)
			if !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("expected deadline error, got %v", err)
			}
		})
	})
}

func TestBrowserGuard(t *testing.T) {
	t.Run("Allows Under Browser", func(t *testing.T) {
		guard := NewBrowserGuard(BrowserContext())
		if !guard.Evaluate().Allowed {
			t.Error("expected browser context to be allowed")
		}
	})

	t.Run("Denies Under Server", func(t *testing.T) {
		guard := NewBrowserGuard(ServerContext(nil))
		decision := guard.Evaluate()
		if decision.Allowed {
			t.Error("expected server context to be denied")
		}
		if decision.RedirectTo != "" {
			t.Errorf("expected no redirect for browser-only denial, got %s", decision.RedirectTo)
		}
	})
}
