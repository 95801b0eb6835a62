package session

import (
	"net/http"

	"golang.org/x/oauth2"
)

// AuthorizedClient returns an http.Client that injects the bearer credential
// from the token store into every request, layered over the session
// transport so rejection responses are observed.
//
// The token source is consulted per request: the client picks up a fresh
// credential after login without reconstruction. Requests issued while no
// credential is stored fail before reaching the wire.
func AuthorizedClient(store *TokenStore, transport *Transport) *http.Client {
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: store,
			Base:   transport,
		},
	}
}

// PlainClient returns an http.Client over the session transport without
// credential injection, for the login and registration operations.
func PlainClient(transport *Transport) *http.Client {
	return &http.Client{Transport: transport}
}
