package session

import (
	"testing"
	"time"
)

func TestIdentity(t *testing.T) {
	t.Run("Zero Value Is Empty", func(t *testing.T) {
		if !(Identity{}).Empty() {
			t.Error("expected zero identity to report empty")
		}
	})

	t.Run("Populated Identity Is Not Empty", func(t *testing.T) {
		if (Identity{ID: "u-1", DisplayName: "ada"}).Empty() {
			t.Error("expected populated identity to report non-empty")
		}
	})
}

func TestIdentityCache(t *testing.T) {
	t.Run("Seeding", func(t *testing.T) {
		t.Run("Empty Storage Seeds Empty Identity", func(t *testing.T) {
			cache := NewIdentityCache(NewMemoryStorage(), nil)
			if !cache.Current().Empty() {
				t.Errorf("expected empty identity, got %+v", cache.Current())
			}
		})

		t.Run("Stored Entries Seed The First Value", func(t *testing.T) {
			storage := NewMemoryStorage()
			storage.Set(KeyCurrentUserID, "u-7")
			storage.Set(KeyCurrentUserName, "ada")

			cache := NewIdentityCache(storage, nil)

			got := cache.Current()
			if got.ID != "u-7" || got.DisplayName != "ada" {
				t.Errorf("expected seeded identity u-7/ada, got %+v", got)
			}
		})

		t.Run("Seed Is Delivered Before Any Network Resolution", func(t *testing.T) {
			storage := NewMemoryStorage()
			storage.Set(KeyCurrentUserID, "u-7")
			storage.Set(KeyCurrentUserName, "ada")
			cache := NewIdentityCache(storage, nil)

			ch, cancel := cache.Subscribe()
			defer cancel()

			select {
			case got := <-ch:
				if got.ID != "u-7" {
					t.Errorf("expected first emission to carry the seed, got %+v", got)
				}
			case <-time.After(time.Second):
				t.Fatal("expected immediate replay of the seeded identity")
			}
		})
	})

	t.Run("SetCurrentUser", func(t *testing.T) {
		t.Run("Persists Both Fields", func(t *testing.T) {
			storage := NewMemoryStorage()
			cache := NewIdentityCache(storage, nil)

			cache.SetCurrentUser("u-1", "ada")

			if id, _ := storage.Get(KeyCurrentUserID); id != "u-1" {
				t.Errorf("expected stored id 'u-1', got %s", id)
			}
			if name, _ := storage.Get(KeyCurrentUserName); name != "ada" {
				t.Errorf("expected stored name 'ada', got %s", name)
			}
		})

		t.Run("Publishes The Pair Together", func(t *testing.T) {
			cache := NewIdentityCache(NewMemoryStorage(), nil)
			ch, cancel := cache.Subscribe()
			defer cancel()
			<-ch // empty seed

			cache.SetCurrentUser("u-1", "ada")

			select {
			case got := <-ch:
				if got.ID != "u-1" || got.DisplayName != "ada" {
					t.Errorf("expected complete identity, got %+v", got)
				}
			case <-time.After(time.Second):
				t.Fatal("timed out waiting for identity emission")
			}
		})
	})

	t.Run("ClearUser", func(t *testing.T) {
		t.Run("Removes Entries And Publishes Empty", func(t *testing.T) {
			storage := NewMemoryStorage()
			cache := NewIdentityCache(storage, nil)
			cache.SetCurrentUser("u-1", "ada")

			cache.ClearUser()

			if !cache.Current().Empty() {
				t.Errorf("expected empty identity after clear, got %+v", cache.Current())
			}
			if _, ok := storage.Get(KeyCurrentUserID); ok {
				t.Error("expected user id entry to be removed")
			}
			if _, ok := storage.Get(KeyCurrentUserName); ok {
				t.Error("expected user name entry to be removed")
			}
		})

		t.Run("Next Construction Seeds Empty", func(t *testing.T) {
			storage := NewMemoryStorage()
			cache := NewIdentityCache(storage, nil)
			cache.SetCurrentUser("u-1", "ada")
			cache.ClearUser()

			fresh := NewIdentityCache(storage, nil)
			if !fresh.Current().Empty() {
				t.Errorf("expected empty seed after clear, got %+v", fresh.Current())
			}
		})
	})
}
