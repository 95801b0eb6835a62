// Package models defines the wire-format types exchanged with the filmplane API
// and the identity types shared across views.
//
// The package contains three categories of types:
//
// 1. User types: [UserShort] (id, role, status), [UserProfile] (full profile
// including username), [Subscriber], [UpdateProfileRequest]
//
// 2. Film types: [Film] (preview used in lists), [FilmDetails] (full card with
// ratings, persons and episodes), [UserRating] (six-axis personal rating)
//
// 3. Playlist types: [Playlist] (manual or attribute-generated via [GenAttrs]),
// [PlaylistContentItem] (film entry inside a playlist)
//
// All types mirror the JSON shapes of the remote service; the client never
// reinterprets them beyond decoding.
package models
