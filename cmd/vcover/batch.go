package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/katalvlaran/vertexcover/cover"
	"github.com/katalvlaran/vertexcover/internal/api"
	"github.com/katalvlaran/vertexcover/internal/logging"
	"github.com/katalvlaran/vertexcover/internal/puzzle"
)

// batchLine is one line of `vcover batch` output.
type batchLine struct {
	File         string         `json:"file"`
	Outcome      *cover.Outcome `json:"outcome,omitempty"`
	SelectedSize int            `json:"selectedSize"`
	OptimalSize  *int           `json:"optimalSize"`
	Message      string         `json:"message,omitempty"`
	Error        string         `json:"error,omitempty"`
}

func newBatchCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch files...",
		Short: "Evaluate many puzzle documents concurrently, one JSON line per file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			if cmd.Flags().Changed("workers") {
				a.cfg.BatchWorkers = workers
			}
			if a.cfg.BatchWorkers < 1 {
				return fmt.Errorf("--workers must be >= 1, got %d", a.cfg.BatchWorkers)
			}
			rec, closeRec, err := a.openHistory()
			if err != nil {
				return err
			}
			defer closeRec()

			lines := make([]batchLine, len(files))
			var g errgroup.Group
			g.SetLimit(a.cfg.BatchWorkers)
			for i, file := range files {
				g.Go(func() error {
					lines[i] = a.evaluateFile(cmd, file, rec)
					return nil
				})
			}
			_ = g.Wait()

			enc := json.NewEncoder(cmd.OutOrStdout())
			failed := 0
			for _, line := range lines {
				if line.Error != "" {
					failed++
				}
				if err := enc.Encode(line); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("batch: %d of %d files failed", failed, len(files))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 4, "concurrent evaluations (VCOVER_BATCH_WORKERS)")
	return cmd
}

func (a *app) evaluateFile(cmd *cobra.Command, file string, rec api.Recorder) batchLine {
	line := batchLine{File: file}
	logger := logging.FromContext(cmd.Context(), a.logger).WithField("file", file)
	doc, err := puzzle.Load(file)
	if err != nil {
		line.Error = err.Error()
		return line
	}
	resp, err := a.evaluate(logging.WithLogger(cmd.Context(), logger), doc, language.English, rec)
	if err != nil {
		logger.WithError(err).Debug("rejected")
		line.Error = err.Error()
		return line
	}
	line.Outcome = &resp.Outcome
	line.SelectedSize = resp.SelectedSize
	line.OptimalSize = resp.OptimalSize
	line.Message = resp.Message
	return line
}
