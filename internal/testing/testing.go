// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/filmplane/filmplane/internal/models"
)

// MockAuthenticator is a test double for [services.Authenticator]
type MockAuthenticator struct {
	Token    *models.Token
	LoginErr error
	Logins   int
}

func (m *MockAuthenticator) Login(ctx context.Context, login, password string) (*models.Token, error) {
	m.Logins++
	if m.LoginErr != nil {
		return nil, m.LoginErr
	}
	if m.Token != nil {
		return m.Token, nil
	}
	return &models.Token{AccessToken: "token-" + login, TokenType: "bearer"}, nil
}

func (m *MockAuthenticator) Register(ctx context.Context, login, email, password string) error {
	return m.LoginErr
}

// MockIdentityProvider is a test double for [services.IdentityProvider]
type MockIdentityProvider struct {
	Short      *models.UserShort
	Profile    *models.UserProfile
	CurrentErr error
	ByIDErr    error
}

func (m *MockIdentityProvider) Current(ctx context.Context) (*models.UserShort, error) {
	if m.CurrentErr != nil {
		return nil, m.CurrentErr
	}
	if m.Short != nil {
		return m.Short, nil
	}
	return &models.UserShort{UserID: "u-1"}, nil
}

func (m *MockIdentityProvider) ByID(ctx context.Context, userID string) (*models.UserProfile, error) {
	if m.ByIDErr != nil {
		return nil, m.ByIDErr
	}
	if m.Profile != nil {
		return m.Profile, nil
	}
	return &models.UserProfile{
		UserShort: models.UserShort{UserID: userID},
		Username:  "user-" + userID,
	}, nil
}

// MockPlaylistReader is a test double for [services.PlaylistReader]
type MockPlaylistReader struct {
	Playlists  []models.Playlist
	Contents   map[string][]models.PlaylistContentItem
	ListErr    error
	ContentErr error
}

func (m *MockPlaylistReader) List(ctx context.Context) ([]models.Playlist, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Playlists, nil
}

func (m *MockPlaylistReader) Content(ctx context.Context, playlistID string) ([]models.PlaylistContentItem, error) {
	if m.ContentErr != nil {
		return nil, m.ContentErr
	}
	return m.Contents[playlistID], nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
