package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/katalvlaran/vertexcover/cover"
	"github.com/katalvlaran/vertexcover/internal/api"
	"github.com/katalvlaran/vertexcover/internal/history"
	"github.com/katalvlaran/vertexcover/internal/logging"
	"github.com/katalvlaran/vertexcover/internal/puzzle"
)

func newEvaluateCmd(a *app) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "evaluate [file|-]",
		Short: "Evaluate the placement in a puzzle document (YAML or JSON)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			doc, err := readDocument(cmd.InOrStdin(), src)
			if err != nil {
				return err
			}
			tag, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("--lang %q: %w", lang, err)
			}

			rec, closeRec, err := a.openHistory()
			if err != nil {
				return err
			}
			defer closeRec()

			resp, err := a.evaluate(cmd.Context(), doc, tag, rec)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "message language (en, es)")
	return cmd
}

func readDocument(stdin io.Reader, src string) (puzzle.Document, error) {
	if src == "-" {
		return puzzle.Decode(stdin)
	}
	return puzzle.Load(src)
}

// openHistory opens the configured history store. rec is nil when history is
// disabled; closeFn is always safe to call.
func (a *app) openHistory() (rec api.Recorder, closeFn func(), err error) {
	if a.cfg.HistoryPath == "" {
		return nil, func() {}, nil
	}
	store, err := history.Open(a.cfg.HistoryPath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}

// evaluate converts doc with the configured strictness, evaluates it and
// records the attempt when rec is non-nil.
func (a *app) evaluate(ctx context.Context, doc puzzle.Document, tag language.Tag, rec api.Recorder) (api.EvaluateResponse, error) {
	g, err := doc.ToGraph(a.cfg.StrictGraph)
	if err != nil {
		return api.EvaluateResponse{}, err
	}
	res := cover.Evaluate(g, doc.Placement(), cover.WithSearchLimit(a.cfg.SearchLimit))
	id := uuid.NewString()
	logger := logging.FromContext(ctx, a.logger).WithField("id", id)
	if res.Outcome == cover.AnomalousBetterThanOptimum {
		logger.Error("valid placement smaller than computed minimum")
	}

	if rec != nil {
		attempt := history.NewAttempt(g, res)
		attempt.ID = id
		if _, err := rec.Record(ctx, attempt); err != nil {
			logger.WithError(err).Warn("record attempt")
		}
	}
	logger.WithField("outcome", res.Outcome.String()).Debug("evaluated")

	// Printers keep formatting state, so each evaluation gets its own.
	return api.NewEvaluateResponse(res, api.Printer(tag), id), nil
}
