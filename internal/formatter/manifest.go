package formatter

import (
	"fmt"
	"os"

	"github.com/filmplane/filmplane/internal/shared"
)

// ExportManifest is the summary document written at the root of a bulk
// export output directory.
type ExportManifest struct {
	GeneratedAt       string          `json:"generated_at"`
	Format            string          `json:"format"`
	OutputDirectory   string          `json:"output_directory"`
	TotalPlaylists    int             `json:"total_playlists"`
	SuccessfulExports int             `json:"successful_exports"`
	FailedExports     int             `json:"failed_exports"`
	Entries           []ManifestEntry `json:"entries"`
}

// ManifestEntry records the per-playlist outcome inside the manifest.
type ManifestEntry struct {
	PlaylistID string   `json:"playlistid"`
	Name       string   `json:"name"`
	Success    bool     `json:"success"`
	Files      []string `json:"files,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// WriteManifest writes the manifest as pretty-printed JSON to path.
func WriteManifest(manifest *ExportManifest, path string) error {
	data, err := shared.MarshalJSON(manifest, true)
	if err != nil {
		return fmt.Errorf("failed to generate manifest JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest file: %w", err)
	}

	return nil
}
