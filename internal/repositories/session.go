package repositories

import (
	"database/sql"

	"github.com/charmbracelet/log"
	"github.com/filmplane/filmplane/internal/shared"
)

// SessionRepository implements session.Storage over the session_entries table.
//
// The storage contract has no error surface: local storage is treated as
// always available in the interactive client, so faults are logged and reads
// degrade to "absent" rather than propagating.
type SessionRepository struct {
	db     *sql.DB
	logger *log.Logger
}

// NewSessionRepository creates a repository over an open database.
func NewSessionRepository(db *sql.DB, logger *log.Logger) *SessionRepository {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &SessionRepository{
		db:     db,
		logger: shared.WithLogger(logger, "component", "sessionrepo"),
	}
}

// Get returns the value stored under key, or false if absent.
func (r *SessionRepository) Get(key string) (string, bool) {
	var value string
	err := r.db.QueryRow("SELECT value FROM session_entries WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		r.logger.Warn("failed to read session entry", "key", key, "err", err)
		return "", false
	}
	return value, true
}

// Set persists value under key, replacing any previous entry.
func (r *SessionRepository) Set(key, value string) {
	query := `
		INSERT INTO session_entries (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.Exec(query, key, value); err != nil {
		r.logger.Warn("failed to write session entry", "key", key, "err", err)
	}
}

// Remove deletes the entry for key. Removing an absent key is not an error.
func (r *SessionRepository) Remove(key string) {
	if _, err := r.db.Exec("DELETE FROM session_entries WHERE key = ?", key); err != nil {
		r.logger.Warn("failed to remove session entry", "key", key, "err", err)
	}
}
