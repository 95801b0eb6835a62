package session

import (
	"github.com/charmbracelet/log"
	"github.com/filmplane/filmplane/internal/shared"
)

// Identity is the cached id and display name of the signed-in user.
//
// The zero value means "no identity". ID and DisplayName are always written
// together; no state ever has one without the other except the zero default.
type Identity struct {
	ID          string
	DisplayName string
}

// Empty reports whether the identity is the signed-out default.
func (i Identity) Empty() bool {
	return i.ID == "" && i.DisplayName == ""
}

// IdentityCache holds the current user's identity and broadcasts it to
// subscribers (header, profile and playlist views).
//
// The cache seeds itself from durable storage synchronously at construction,
// so the very first emission reflects the last known identity before any
// network round trip resolves. It is logically downstream of a successful
// authentication but fetched independently: the credential may be committed
// while the identity is still empty.
type IdentityCache struct {
	storage Storage
	signal  *Signal[Identity]
	logger  *log.Logger
}

// NewIdentityCache creates the cache seeded from storage.
func NewIdentityCache(storage Storage, logger *log.Logger) *IdentityCache {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	c := &IdentityCache{
		storage: storage,
		logger:  shared.WithLogger(logger, "component", "identity"),
	}

	var seed Identity
	if id, ok := storage.Get(KeyCurrentUserID); ok {
		name, _ := storage.Get(KeyCurrentUserName)
		seed = Identity{ID: id, DisplayName: name}
	}
	c.signal = NewSignal(seed)

	return c
}

// Current returns the latest identity synchronously.
func (c *IdentityCache) Current() Identity {
	return c.signal.Get()
}

// Subscribe returns a replay-last-value subscription to the identity.
func (c *IdentityCache) Subscribe() (<-chan Identity, func()) {
	return c.signal.Subscribe()
}

// SetCurrentUser persists both fields and publishes the updated identity.
// The pair changes together; subscribers never observe a partial write.
func (c *IdentityCache) SetCurrentUser(id, displayName string) {
	c.storage.Set(KeyCurrentUserID, id)
	c.storage.Set(KeyCurrentUserName, displayName)
	c.signal.Set(Identity{ID: id, DisplayName: displayName})
	c.logger.Debug("current user updated", "userid", id)
}

// ClearUser removes the durable entries and publishes the empty identity.
func (c *IdentityCache) ClearUser() {
	c.storage.Remove(KeyCurrentUserID)
	c.storage.Remove(KeyCurrentUserName)
	c.signal.Set(Identity{})
	c.logger.Debug("current user cleared")
}
