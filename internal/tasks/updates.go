package tasks

import (
	"fmt"

	"github.com/filmplane/filmplane/internal/models"
	"github.com/filmplane/filmplane/internal/session"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	Authenticate Phase = iota
	StoreToken
	FetchIdentity
	FetchProfile
	PersistIdentity
	Navigate
	FetchPlaylists
	ExportPlaylist
)

func (p Phase) String() string {
	switch p {
	case Authenticate:
		return "authenticate"
	case StoreToken:
		return "store_token"
	case FetchIdentity:
		return "fetch_identity"
	case FetchProfile:
		return "fetch_profile"
	case PersistIdentity:
		return "persist_identity"
	case Navigate:
		return "navigate"
	case FetchPlaylists:
		return "fetch_playlists"
	case ExportPlaylist:
		return "export_playlist"
	default:
		return ""
	}
}

func authenticatingUpdate(login string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Authenticate,
		Step:    1,
		Total:   loginPipelineSteps,
		Message: fmt.Sprintf("Signing in as %s...", login),
	}
}

func tokenStoredUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   StoreToken,
		Step:    2,
		Total:   loginPipelineSteps,
		Message: "Credential stored",
	}
}

func fetchIdentityUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchIdentity,
		Step:    3,
		Total:   loginPipelineSteps,
		Message: "Resolving account...",
	}
}

func fetchProfileUpdate(userID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchProfile,
		Step:    4,
		Total:   loginPipelineSteps,
		Message: fmt.Sprintf("Fetching profile for %s...", userID),
	}
}

func persistIdentityUpdate(identity session.Identity) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PersistIdentity,
		Step:    5,
		Total:   loginPipelineSteps,
		Message: fmt.Sprintf("Signed in as %s", identity.DisplayName),
		Data:    identity,
	}
}

func navigateUpdate(route session.Route) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Navigate,
		Step:    6,
		Total:   loginPipelineSteps,
		Message: fmt.Sprintf("Opening %s", route),
		Data:    route,
	}
}

func fetchPlaylistsUpdate(count int) ProgressUpdate {
	if count < 0 {
		return ProgressUpdate{
			Phase:   FetchPlaylists,
			Step:    1,
			Total:   1,
			Message: "Fetching playlists...",
		}
	}
	return ProgressUpdate{
		Phase:   FetchPlaylists,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Found %d playlists", count),
	}
}

func exportingPlaylistUpdate(step, total int, pl models.Playlist) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportPlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Exporting: %s...", step, total, pl.Name),
	}
}

func exportCompletedUpdate(step, total int, name string, filesCount int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportPlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s (%d files)", step, total, name, filesCount),
	}
}

func exportFailedUpdate(step, total int, name string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportPlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, name, err),
	}
}
