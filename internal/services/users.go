package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/filmplane/filmplane/internal/models"
	"github.com/filmplane/filmplane/internal/shared"
)

// UserService implements [IdentityProvider] and the social graph operations.
type UserService struct {
	client *Client
}

// NewUserService creates the user service over the given client.
func NewUserService(client *Client) *UserService {
	return &UserService{client: client}
}

// Current returns the short identity of the credential's owner.
func (s *UserService) Current(ctx context.Context) (*models.UserShort, error) {
	var user models.UserShort
	if err := s.client.get(ctx, "users/current", nil, &user); err != nil {
		return nil, err
	}
	if user.UserID == "" {
		return nil, fmt.Errorf("%w: current user response missing userid", shared.ErrAPIRequest)
	}
	return &user, nil
}

// ByID returns the full profile for a user.
func (s *UserService) ByID(ctx context.Context, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.client.get(ctx, "users/"+userID, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Subscribers returns the users following userID.
func (s *UserService) Subscribers(ctx context.Context, userID string) ([]models.Subscriber, error) {
	var subs []models.Subscriber
	if err := s.client.get(ctx, "users/"+userID+"/subscribers", nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// Subscriptions returns the users userID follows.
func (s *UserService) Subscriptions(ctx context.Context, userID string) ([]models.Subscriber, error) {
	var subs []models.Subscriber
	if err := s.client.get(ctx, "users/"+userID+"/subscribes", nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// Subscribe follows a user.
func (s *UserService) Subscribe(ctx context.Context, userID string) error {
	return s.client.post(ctx, "users/"+userID+"/subscribe", nil, struct{}{}, nil)
}

// Unsubscribe unfollows a user.
func (s *UserService) Unsubscribe(ctx context.Context, userID string) error {
	return s.client.post(ctx, "users/"+userID+"/unsubscribe", nil, struct{}{}, nil)
}

// Search finds users by username fragment.
func (s *UserService) Search(ctx context.Context, username string) ([]models.Subscriber, error) {
	query := url.Values{}
	query.Set("username", username)

	var users []models.Subscriber
	if err := s.client.get(ctx, "users/search", query, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProfile modifies a user profile. Nil fields in the request are left
// unchanged by the service.
func (s *UserService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userid", shared.ErrMissingArgument)
	}
	return s.client.put(ctx, "users/"+req.UserID, req, nil)
}
