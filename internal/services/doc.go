// Package services contains HTTP clients for the remote filmplane API.
//
// The remote service is an opaque collaborator reachable through a fixed set
// of request/response operations:
//
//   - [AuthService] : login (opaque token) and registration
//   - [UserService] : current identity, profiles, social graph
//   - [FilmService] : watchlists, film cards, ratings, search
//   - [PlaylistService] : manual and attribute-generated playlists
//
// All clients share [Client], which owns JSON encoding, query parameters and
// status mapping. Authorization is not handled here: protected services are
// constructed with an oauth2-authorized http.Client whose token source is the
// session token store, layered over the session transport that observes
// rejection responses. Nothing in this package retries automatically.
package services
