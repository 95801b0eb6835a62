package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/filmplane/filmplane/internal/models"
	"github.com/filmplane/filmplane/internal/shared"
)

// AuthService implements [Authenticator] against the filmplane auth endpoints.
//
// Built on an unauthorized client: login and registration are the only
// operations that run without a credential.
type AuthService struct {
	client *Client
}

// NewAuthService creates the auth service over the given client.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Login exchanges login and password for an opaque token.
// Credentials travel as query parameters per the API contract.
func (s *AuthService) Login(ctx context.Context, login, password string) (*models.Token, error) {
	if login == "" || password == "" {
		return nil, fmt.Errorf("%w: login and password are required", shared.ErrMissingCredentials)
	}

	query := url.Values{}
	query.Set("login", login)
	query.Set("password", password)

	var token models.Token
	if err := s.client.post(ctx, "auth/token", query, struct{}{}, &token); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: empty token in response", shared.ErrAuthFailed)
	}

	return &token, nil
}

// Register creates a new account.
func (s *AuthService) Register(ctx context.Context, login, email, password string) error {
	if login == "" || email == "" || password == "" {
		return fmt.Errorf("%w: login, email and password are required", shared.ErrMissingArgument)
	}

	body := map[string]string{
		"login":    login,
		"email":    email,
		"password": password,
	}

	if err := s.client.do(ctx, http.MethodPost, "auth/register", nil, body, nil); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	return nil
}
