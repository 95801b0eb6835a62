package main

import (
	"context"

	"github.com/filmplane/filmplane/internal/tasks"
	"github.com/urfave/cli/v3"
)

// ExportRun exports playlists to disk with live progress output.
func (r *Runner) ExportRun(ctx context.Context, cmd *cli.Command) error {
	opts := tasks.BulkExportOpts{
		Format:     cmd.String("format"),
		OutputDir:  cmd.String("output"),
		NumWorkers: int(cmd.Int("workers")),
		RateLimit:  cmd.Float("rate"),
	}

	progress := make(chan tasks.ProgressUpdate, 100)
	done := make(chan struct{})
	go func() {
		for update := range progress {
			r.writePlain("%s\n", update.Message)
		}
		close(done)
	}()

	result, err := r.engine.BulkExport(ctx, progress, cmd.StringSlice("id"), opts)
	close(progress)
	<-done

	if err != nil {
		return err
	}

	r.writePlainHeader("Export complete")
	r.writePlain("Playlists: %d\n", result.TotalPlaylists)
	r.writePlain("Succeeded: %d\n", result.SuccessfulExports)
	if result.FailedExports > 0 {
		r.writePlain("Failed:    %d\n", result.FailedExports)
	}
	r.writePlain("Output:    %s\n", result.OutputDirectory)
	r.writePlain("Manifest:  %s\n", result.ManifestPath)
	return nil
}
