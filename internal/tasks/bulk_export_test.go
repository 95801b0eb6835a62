package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/filmplane/filmplane/internal/formatter"
	"github.com/filmplane/filmplane/internal/models"
	"github.com/filmplane/filmplane/internal/shared"
	tu "github.com/filmplane/filmplane/internal/testing"
)

func testPlaylists() ([]models.Playlist, map[string][]models.PlaylistContentItem) {
	playlists := []models.Playlist{
		{PlaylistID: "p-1", Name: "Favorites", UserID: "u-1"},
		{PlaylistID: "p-2", Name: "Watch Later", UserID: "u-1"},
	}
	contents := map[string][]models.PlaylistContentItem{
		"p-1": {
			{Preview: models.FilmPreview{FilmID: "42", Name: "Solaris", ReleaseYear: 1972}},
		},
		"p-2": {
			{Preview: models.FilmPreview{FilmID: "7", Name: "Stalker", ReleaseYear: 1979}},
		},
	}
	return playlists, contents
}

func TestSessionEngine_BulkExport(t *testing.T) {
	ctx := context.Background()

	t.Run("Exports All Playlists As JSON By Default", func(t *testing.T) {
		playlists, contents := testPlaylists()
		reader := &tu.MockPlaylistReader{Playlists: playlists, Contents: contents}
		f := newEngineFixture(t, &tu.MockAuthenticator{}, &tu.MockIdentityProvider{}, reader)

		outputDir := t.TempDir()
		result, err := f.engine.BulkExport(ctx, nil, nil, BulkExportOpts{OutputDir: outputDir})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if result.TotalPlaylists != 2 {
			t.Errorf("expected 2 playlists, got %d", result.TotalPlaylists)
		}
		if result.SuccessfulExports != 2 || result.FailedExports != 0 {
			t.Errorf("expected 2 successes and no failures, got %d/%d", result.SuccessfulExports, result.FailedExports)
		}

		tu.AssertFileExists(t, filepath.Join(outputDir, "p-1.json"))
		tu.AssertFileExists(t, filepath.Join(outputDir, "p-2.json"))
		tu.AssertFileExists(t, result.ManifestPath)
	})

	t.Run("Export File Contains Playlist And Films", func(t *testing.T) {
		playlists, contents := testPlaylists()
		reader := &tu.MockPlaylistReader{Playlists: playlists, Contents: contents}
		f := newEngineFixture(t, &tu.MockAuthenticator{}, &tu.MockIdentityProvider{}, reader)

		outputDir := t.TempDir()
		if _, err := f.engine.BulkExport(ctx, nil, []string{"p-1"}, BulkExportOpts{Format: "json", OutputDir: outputDir}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var export models.PlaylistExport
		raw := tu.MustReadFile(t, filepath.Join(outputDir, "p-1.json"))
		if err := json.Unmarshal([]byte(raw), &export); err != nil {
			t.Fatalf("failed to decode export: %v", err)
		}
		if export.Playlist.Name != "Favorites" {
			t.Errorf("expected playlist 'Favorites', got %s", export.Playlist.Name)
		}
		if len(export.Films) != 1 || export.Films[0].Preview.Name != "Solaris" {
			t.Errorf("unexpected films: %+v", export.Films)
		}
	})

	t.Run("CSV Format Writes Films And Metadata Files", func(t *testing.T) {
		playlists, contents := testPlaylists()
		reader := &tu.MockPlaylistReader{Playlists: playlists, Contents: contents}
		f := newEngineFixture(t, &tu.MockAuthenticator{}, &tu.MockIdentityProvider{}, reader)

		outputDir := t.TempDir()
		result, err := f.engine.BulkExport(ctx, nil, []string{"p-1"}, BulkExportOpts{Format: "csv", OutputDir: outputDir})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.SuccessfulExports != 1 {
			t.Fatalf("expected one success, got %d", result.SuccessfulExports)
		}

		tu.AssertFileExists(t, filepath.Join(outputDir, "p-1_films.csv"))
		tu.AssertFileExists(t, filepath.Join(outputDir, "p-1_metadata.json"))

		csv := tu.MustReadFile(t, filepath.Join(outputDir, "p-1_films.csv"))
		if !strings.Contains(csv, "Solaris") {
			t.Errorf("expected film row in CSV, got:\n%s", csv)
		}
	})

	t.Run("Text Format", func(t *testing.T) {
		playlists, contents := testPlaylists()
		reader := &tu.MockPlaylistReader{Playlists: playlists, Contents: contents}
		f := newEngineFixture(t, &tu.MockAuthenticator{}, &tu.MockIdentityProvider{}, reader)

		outputDir := t.TempDir()
		if _, err := f.engine.BulkExport(ctx, nil, []string{"p-2"}, BulkExportOpts{Format: "txt", OutputDir: outputDir}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		tu.AssertFileExists(t, filepath.Join(outputDir, "p-2_films.txt"))
	})

	t.Run("Unknown Playlist ID", func(t *testing.T) {
		playlists, contents := testPlaylists()
		reader := &tu.MockPlaylistReader{Playlists: playlists, Contents: contents}
		f := newEngineFixture(t, &tu.MockAuthenticator{}, &tu.MockIdentityProvider{}, reader)

		_, err := f.engine.BulkExport(ctx, nil, []string{"nope"}, BulkExportOpts{OutputDir: t.TempDir()})
		if !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("List Failure Aborts The Run", func(t *testing.T) {
		reader := &tu.MockPlaylistReader{ListErr: errors.New("service down")}
		f := newEngineFixture(t, &tu.MockAuthenticator{}, &tu.MockIdentityProvider{}, reader)

		if _, err := f.engine.BulkExport(ctx, nil, nil, BulkExportOpts{OutputDir: t.TempDir()}); err == nil {
			t.Error("expected error when the playlist listing fails")
		}
	})

	t.Run("Content Failure Is Recorded Per Playlist", func(t *testing.T) {
		playlists, _ := testPlaylists()
		reader := &tu.MockPlaylistReader{Playlists: playlists, ContentErr: errors.New("fetch failed")}
		f := newEngineFixture(t, &tu.MockAuthenticator{}, &tu.MockIdentityProvider{}, reader)

		outputDir := t.TempDir()
		result, err := f.engine.BulkExport(ctx, nil, nil, BulkExportOpts{OutputDir: outputDir})
		if err != nil {
			t.Fatalf("expected the run to complete, got %v", err)
		}

		if result.SuccessfulExports != 0 {
			t.Errorf("expected no successes, got %d", result.SuccessfulExports)
		}
		if result.FailedExports != 2 {
			t.Errorf("expected 2 failures, got %d", result.FailedExports)
		}
		for _, res := range result.Results {
			if res.Success || res.Error == nil {
				t.Errorf("expected recorded failure, got %+v", res)
			}
		}
	})

	t.Run("Manifest Summarizes The Run", func(t *testing.T) {
		playlists, contents := testPlaylists()
		reader := &tu.MockPlaylistReader{Playlists: playlists, Contents: contents}
		f := newEngineFixture(t, &tu.MockAuthenticator{}, &tu.MockIdentityProvider{}, reader)

		outputDir := t.TempDir()
		result, err := f.engine.BulkExport(ctx, nil, nil, BulkExportOpts{Format: "json", OutputDir: outputDir})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var manifest formatter.ExportManifest
		raw := tu.MustReadFile(t, result.ManifestPath)
		if err := json.Unmarshal([]byte(raw), &manifest); err != nil {
			t.Fatalf("failed to decode manifest: %v", err)
		}

		if manifest.TotalPlaylists != 2 || manifest.SuccessfulExports != 2 {
			t.Errorf("unexpected manifest counts: %+v", manifest)
		}
		if manifest.Format != "json" {
			t.Errorf("expected format 'json', got %s", manifest.Format)
		}
		if len(manifest.Entries) != 2 {
			t.Errorf("expected 2 manifest entries, got %d", len(manifest.Entries))
		}
	})

	t.Run("Reports Export Progress", func(t *testing.T) {
		playlists, contents := testPlaylists()
		reader := &tu.MockPlaylistReader{Playlists: playlists, Contents: contents}
		f := newEngineFixture(t, &tu.MockAuthenticator{}, &tu.MockIdentityProvider{}, reader)

		progress := make(chan ProgressUpdate, 64)
		if _, err := f.engine.BulkExport(ctx, progress, nil, BulkExportOpts{OutputDir: t.TempDir()}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var phases []Phase
		for _, update := range drain(progress) {
			phases = append(phases, update.Phase)
		}

		if phases[0] != FetchPlaylists {
			t.Errorf("expected the run to start with playlist discovery, got %s", phases[0])
		}
		var exports int
		for _, phase := range phases {
			if phase == ExportPlaylist {
				exports++
			}
		}
		if exports < 2 {
			t.Errorf("expected export phase updates for each playlist, got %d", exports)
		}
	})

	t.Run("Worker Count Is Clamped", func(t *testing.T) {
		playlists, contents := testPlaylists()
		reader := &tu.MockPlaylistReader{Playlists: playlists, Contents: contents}
		f := newEngineFixture(t, &tu.MockAuthenticator{}, &tu.MockIdentityProvider{}, reader)

		result, err := f.engine.BulkExport(ctx, nil, nil, BulkExportOpts{
			OutputDir:  t.TempDir(),
			NumWorkers: 50,
			RateLimit:  100,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.SuccessfulExports != 2 {
			t.Errorf("expected 2 successes, got %d", result.SuccessfulExports)
		}
	})

	t.Run("Uninitialized Playlist Service", func(t *testing.T) {
		engine := NewSessionEngine(nil, nil, nil, nil, nil, nil)

		_, err := engine.BulkExport(ctx, nil, nil, BulkExportOpts{OutputDir: t.TempDir()})
		if !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected ErrServiceUnavailable, got %v", err)
		}
	})
}
