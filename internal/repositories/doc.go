// Package repositories provides the sqlite persistence layer.
//
// [SessionRepository] backs the session core's durable storage with the
// session_entries key-value table; [FilmCacheRepository] caches film previews
// locally for offline listing.
package repositories
