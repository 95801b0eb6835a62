package formatter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/filmplane/filmplane/internal/models"
	tu "github.com/filmplane/filmplane/internal/testing"
)

func sampleExport() *models.PlaylistExport {
	return &models.PlaylistExport{
		Playlist: models.Playlist{
			PlaylistID:  "p-1",
			Name:        "Favorites",
			Description: "slow cinema",
			IsPublic:    true,
		},
		Films: []models.PlaylistContentItem{
			{
				Preview: models.FilmPreview{
					FilmID:      "42",
					Name:        "Solaris",
					ReleaseYear: 1972,
					Director:    "Andrei Tarkovsky",
					Genres:      []string{"sci-fi", "drama"},
					TimeMinutes: 167,
					IsWatched:   true,
				},
			},
			{
				Preview: models.FilmPreview{
					FilmID: "7",
					Name:   "Stalker",
				},
			},
		},
	}
}

func TestExportToCSV(t *testing.T) {
	t.Run("Writes Header And One Row Per Film", func(t *testing.T) {
		data, err := ExportToCSV(sampleExport())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
		}
		if lines[0] != "ID,Name,Year,Director,Genres,Runtime,Watched" {
			t.Errorf("unexpected header: %s", lines[0])
		}
		if !strings.Contains(lines[1], "Solaris") || !strings.Contains(lines[1], "sci-fi; drama") {
			t.Errorf("unexpected first row: %s", lines[1])
		}
		if !strings.Contains(lines[1], "true") {
			t.Errorf("expected watched flag in row: %s", lines[1])
		}
	})

	t.Run("Empty Playlist Yields Header Only", func(t *testing.T) {
		export := &models.PlaylistExport{Playlist: models.Playlist{PlaylistID: "p-0"}}
		data, err := ExportToCSV(export)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 1 {
			t.Errorf("expected header only, got %d lines", len(lines))
		}
	})
}

func TestExportToMarkdown(t *testing.T) {
	t.Run("Renders Title, Metadata And Numbered Films", func(t *testing.T) {
		data, err := ExportToMarkdown(sampleExport(), "")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		md := string(data)

		if !strings.Contains(md, "# Favorites") {
			t.Error("expected playlist title heading")
		}
		if !strings.Contains(md, "**Description**: slow cinema") {
			t.Error("expected description line")
		}
		if !strings.Contains(md, "**Visibility**: Public") {
			t.Error("expected visibility line")
		}
		if !strings.Contains(md, "1. Solaris (1972) [2h 47m]") {
			t.Errorf("expected formatted film entry, got:\n%s", md)
		}
		if !strings.Contains(md, "2. Stalker [?]") {
			t.Errorf("expected entry without year or runtime, got:\n%s", md)
		}
	})

	t.Run("Includes Poster Reference When Given", func(t *testing.T) {
		data, err := ExportToMarkdown(sampleExport(), "poster.jpg")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(string(data), "![Poster](poster.jpg)") {
			t.Error("expected poster image reference")
		}
	})
}

func TestExportToText(t *testing.T) {
	data, err := ExportToText(sampleExport())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	text := string(data)

	if !strings.Contains(text, "Playlist: Favorites") {
		t.Error("expected playlist name line")
	}
	if !strings.Contains(text, "1. Solaris (1972)") {
		t.Error("expected numbered film with year")
	}
	if !strings.Contains(text, "2. Stalker\n") {
		t.Error("expected film without year to omit parentheses")
	}
}

func TestDownloadImage(t *testing.T) {
	t.Run("Downloads Image Bytes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("imagedata"))
		}))
		defer server.Close()

		data, err := DownloadImage(server.URL)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(data) != "imagedata" {
			t.Errorf("unexpected image data: %s", string(data))
		}
	})

	t.Run("Empty URL", func(t *testing.T) {
		if _, err := DownloadImage(""); err == nil {
			t.Error("expected error for empty URL")
		}
	})

	t.Run("Non-200 Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		if _, err := DownloadImage(server.URL); err == nil {
			t.Error("expected error for 404 response")
		}
	})
}

func TestWriteCSVExport(t *testing.T) {
	t.Run("Creates Films And Metadata Files", func(t *testing.T) {
		dir := t.TempDir()
		base := filepath.Join(dir, "p-1")

		result, err := WriteCSVExport(sampleExport(), base)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		tu.AssertFileExists(t, result.FilmsFile)
		tu.AssertFileExists(t, result.MetadataFile)

		var meta models.Playlist
		raw := tu.MustReadFile(t, result.MetadataFile)
		if err := json.Unmarshal([]byte(raw), &meta); err != nil {
			t.Fatalf("failed to decode metadata: %v", err)
		}
		if meta.Name != "Favorites" {
			t.Errorf("expected metadata name 'Favorites', got %s", meta.Name)
		}
	})
}

func TestWriteMarkdownExport(t *testing.T) {
	t.Run("Creates README In A Dedicated Directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "p-1")

		result, err := WriteMarkdownExport(sampleExport(), dir, "")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		tu.AssertDirExists(t, result.Directory)
		tu.AssertFileExists(t, filepath.Join(dir, "README.md"))
		if result.PosterImage != "" {
			t.Errorf("expected no poster without an image URL, got %s", result.PosterImage)
		}
	})

	t.Run("Downloads And Saves The Poster", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("jpegdata"))
		}))
		defer server.Close()

		dir := filepath.Join(t.TempDir(), "p-1")
		result, err := WriteMarkdownExport(sampleExport(), dir, server.URL)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		tu.AssertFileExists(t, result.PosterImage)
		md := tu.MustReadFile(t, filepath.Join(dir, "README.md"))
		if !strings.Contains(md, "![Poster](poster.jpg)") {
			t.Error("expected README to reference the saved poster")
		}
	})

	t.Run("Unreachable Poster Degrades To Markdown Only", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		dir := filepath.Join(t.TempDir(), "p-1")
		result, err := WriteMarkdownExport(sampleExport(), dir, server.URL)
		if err != nil {
			t.Fatalf("expected the export to proceed without the poster, got %v", err)
		}
		if result.PosterImage != "" {
			t.Error("expected no poster file for a failed download")
		}
	})
}

func TestWriteTextExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p-1_films.txt")

	written, err := WriteTextExport(sampleExport(), path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if written != path {
		t.Errorf("expected returned path %s, got %s", path, written)
	}
	tu.AssertFileExists(t, path)
}

func TestWriteJSONExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p-1.json")

	written, err := WriteJSONExport(sampleExport(), path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	tu.AssertFileExists(t, written)

	var export models.PlaylistExport
	raw := tu.MustReadFile(t, written)
	if err := json.Unmarshal([]byte(raw), &export); err != nil {
		t.Fatalf("failed to decode export: %v", err)
	}
	if len(export.Films) != 2 {
		t.Errorf("expected 2 films, got %d", len(export.Films))
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export_manifest.json")

	manifest := &ExportManifest{
		GeneratedAt:       "2026-01-01T00:00:00Z",
		Format:            "json",
		OutputDirectory:   dir,
		TotalPlaylists:    2,
		SuccessfulExports: 1,
		FailedExports:     1,
		Entries: []ManifestEntry{
			{PlaylistID: "p-1", Name: "Favorites", Success: true, Files: []string{"p-1.json"}},
			{PlaylistID: "p-2", Name: "Watch Later", Success: false, Error: "fetch failed"},
		},
	}

	if err := WriteManifest(manifest, path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var decoded ExportManifest
	raw := tu.MustReadFile(t, path)
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("failed to decode manifest: %v", err)
	}
	if decoded.TotalPlaylists != 2 || len(decoded.Entries) != 2 {
		t.Errorf("unexpected manifest: %+v", decoded)
	}
	if decoded.Entries[1].Error != "fetch failed" {
		t.Errorf("expected recorded error, got %s", decoded.Entries[1].Error)
	}
}
