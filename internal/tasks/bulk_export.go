package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/filmplane/filmplane/internal/formatter"
	"github.com/filmplane/filmplane/internal/models"
	"github.com/filmplane/filmplane/internal/shared"
	"golang.org/x/time/rate"
)

// BulkExportOpts contains configuration for bulk playlist exports.
type BulkExportOpts struct {
	Format         string                                               // Export format: json, csv, markdown, txt
	OutputDir      string                                               // Base output directory (default: filmplane_export_{epoch})
	NumWorkers     int                                                  // Concurrent workers (default: 5)
	RateLimit      float64                                              // Requests per second (default: 5)
	GetPosterImage func(ctx context.Context, id string) (string, error) // Fetcher function
}

// PlaylistExportJob is a unit of work handed to an export worker.
type PlaylistExportJob struct {
	PlaylistID string
	Export     *models.PlaylistExport
}

// PlaylistExportResult records the outcome of exporting a single playlist.
type PlaylistExportResult struct {
	PlaylistID   string
	PlaylistName string
	Success      bool
	Files        []string
	Error        error
}

// BulkExportResult summarizes a bulk export run.
type BulkExportResult struct {
	TotalPlaylists    int
	SuccessfulExports int
	FailedExports     int
	OutputDirectory   string
	ManifestPath      string
	Results           []PlaylistExportResult
}

// BulkExport exports multiple playlists concurrently with rate limiting and progress tracking.
//
// Passing no ids exports every playlist of the signed-in user. The method
// implements a worker pool: content fetches run sequentially under the rate
// limiter while file writing is spread across workers. Partial failures are
// recorded per playlist, and a manifest file summarizes the run.
func (e *SessionEngine) BulkExport(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	ids []string,
	opts BulkExportOpts,
) (*BulkExportResult, error) {
	if e.playlists == nil {
		return nil, fmt.Errorf("%w: playlist service not initialized", shared.ErrServiceUnavailable)
	}

	playlists, err := e.resolvePlaylists(ctx, prog, ids)
	if err != nil {
		return nil, err
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("filmplane_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkExportResult{
		TotalPlaylists:  len(playlists),
		OutputDirectory: opts.OutputDir,
		Results:         make([]PlaylistExportResult, 0, len(playlists)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan PlaylistExportJob, len(playlists))
	results := make(chan PlaylistExportResult, len(playlists))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, jobs, results, opts)
	}

	go func() {
		for i, pl := range playlists {
			select {
			case <-ctx.Done():
				close(jobs)
				return
			default:
			}

			if err := limiter.Wait(ctx); err != nil {
				close(jobs)
				return
			}

			e.sendProgress(prog, exportingPlaylistUpdate(i+1, len(playlists), pl))

			films, err := e.playlists.Content(ctx, pl.PlaylistID)
			if err != nil {
				results <- PlaylistExportResult{
					PlaylistID:   pl.PlaylistID,
					PlaylistName: pl.Name,
					Success:      false,
					Error:        fmt.Errorf("failed to fetch playlist content: %w", err),
				}
				continue
			}

			jobs <- PlaylistExportJob{
				PlaylistID: pl.PlaylistID,
				Export: &models.PlaylistExport{
					Playlist: pl,
					Films:    films,
				},
			}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			e.sendProgress(prog, exportCompletedUpdate(
				completed,
				len(playlists),
				res.PlaylistName,
				len(res.Files),
			))
		} else {
			result.FailedExports++
			e.sendProgress(prog, exportFailedUpdate(
				completed,
				len(playlists),
				res.PlaylistName,
				res.Error,
			))
		}
	}

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	if err := formatter.WriteManifest(e.buildManifest(result, opts.Format), manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	return result, nil
}

// resolvePlaylists expands the requested ids into playlist metadata,
// defaulting to the signed-in user's full library when no ids are given.
func (e *SessionEngine) resolvePlaylists(ctx context.Context, prog chan<- ProgressUpdate, ids []string) ([]models.Playlist, error) {
	e.sendProgress(prog, fetchPlaylistsUpdate(-1))

	all, err := e.playlists.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}

	if len(ids) == 0 {
		e.sendProgress(prog, fetchPlaylistsUpdate(len(all)))
		return all, nil
	}

	byID := make(map[string]models.Playlist, len(all))
	for _, pl := range all {
		byID[pl.PlaylistID] = pl
	}

	selected := make([]models.Playlist, 0, len(ids))
	for _, id := range ids {
		pl, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
		}
		selected = append(selected, pl)
	}

	e.sendProgress(prog, fetchPlaylistsUpdate(len(selected)))
	return selected, nil
}

// buildManifest converts a run summary into the manifest document.
func (e *SessionEngine) buildManifest(result *BulkExportResult, format string) *formatter.ExportManifest {
	manifest := &formatter.ExportManifest{
		GeneratedAt:       time.Now().UTC().Format(time.RFC3339),
		Format:            format,
		OutputDirectory:   result.OutputDirectory,
		TotalPlaylists:    result.TotalPlaylists,
		SuccessfulExports: result.SuccessfulExports,
		FailedExports:     result.FailedExports,
	}
	for _, res := range result.Results {
		entry := formatter.ManifestEntry{
			PlaylistID: res.PlaylistID,
			Name:       res.PlaylistName,
			Success:    res.Success,
			Files:      res.Files,
		}
		if res.Error != nil {
			entry.Error = res.Error.Error()
		}
		manifest.Entries = append(manifest.Entries, entry)
	}
	return manifest
}

// exportWorker is a worker goroutine that exports playlists from the jobs channel.
func (e *SessionEngine) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan PlaylistExportJob,
	results chan<- PlaylistExportResult,
	opts BulkExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res := e.exportSinglePlaylist(ctx, job, opts)
		results <- res
	}
}

// exportSinglePlaylist exports a single playlist to the appropriate format.
func (e *SessionEngine) exportSinglePlaylist(
	ctx context.Context,
	j PlaylistExportJob,
	opts BulkExportOpts,
) PlaylistExportResult {
	result := PlaylistExportResult{
		PlaylistID:   j.PlaylistID,
		PlaylistName: j.Export.Playlist.Name,
		Success:      false,
		Files:        []string{},
	}

	switch opts.Format {
	case "csv":
		baseFilepath := filepath.Join(opts.OutputDir, j.Export.Playlist.PlaylistID)
		csvRes, err := formatter.WriteCSVExport(j.Export, baseFilepath)
		if err != nil {
			result.Error = fmt.Errorf("CSV export failed: %w", err)
			return result
		}
		result.Files = []string{csvRes.FilmsFile, csvRes.MetadataFile}
		result.Success = true

	case "markdown":
		outputDir := filepath.Join(opts.OutputDir, j.Export.Playlist.PlaylistID)

		var imageURL string
		if opts.GetPosterImage != nil {
			if url, err := opts.GetPosterImage(ctx, j.PlaylistID); err == nil {
				imageURL = url
			}
		}

		mdRes, err := formatter.WriteMarkdownExport(j.Export, outputDir, imageURL)
		if err != nil {
			result.Error = fmt.Errorf("markdown export failed: %w", err)
			return result
		}
		result.Files = mdRes.Files
		result.Success = true

	case "txt":
		txtPath := filepath.Join(opts.OutputDir, fmt.Sprintf("%s_films.txt", j.Export.Playlist.PlaylistID))
		filepath, err := formatter.WriteTextExport(j.Export, txtPath)
		if err != nil {
			result.Error = fmt.Errorf("text export failed: %w", err)
			return result
		}
		result.Files = []string{filepath}
		result.Success = true

	case "json":
		fallthrough
	default:
		jsonPath := filepath.Join(opts.OutputDir, fmt.Sprintf("%s.json", j.Export.Playlist.PlaylistID))
		written, err := formatter.WriteJSONExport(j.Export, jsonPath)
		if err != nil {
			result.Error = fmt.Errorf("JSON export failed: %w", err)
			return result
		}
		result.Files = []string{written}
		result.Success = true
	}
	return result
}
