package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vertexcover/internal/config"
	"github.com/katalvlaran/vertexcover/internal/logging"
)

// app is the state shared by subcommands once flags and env are resolved.
type app struct {
	cfg    config.Config
	logger *logrus.Logger

	// flag values; applied over cfg only when set on the command line
	searchLimit int
	strict      bool
	logLevel    string
	logFormat   string
	historyPath string
}

func newRootCmd(version string) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "vcover",
		Short:        "Evaluate vertex-cover placements against the true minimum cover",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.IntVar(&a.searchLimit, "search-limit", 20, "largest graph order solved exhaustively (VCOVER_SEARCH_LIMIT)")
	pf.BoolVar(&a.strict, "strict", true, "reject edges with endpoints outside [0, n) (VCOVER_STRICT_GRAPH)")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level (VCOVER_LOG_LEVEL)")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json (VCOVER_LOG_FORMAT)")
	pf.StringVar(&a.historyPath, "history", "", "sqlite file recording attempts (VCOVER_HISTORY_PATH)")

	root.AddCommand(
		newServeCmd(a),
		newEvaluateCmd(a),
		newBatchCmd(a),
		newGenerateCmd(a),
		newPuzzlesCmd(a),
	)
	return root
}

// init resolves env config, overlays explicitly set flags and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("search-limit") {
		cfg.SearchLimit = a.searchLimit
	}
	if flags.Changed("strict") {
		cfg.StrictGraph = a.strict
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if flags.Changed("history") {
		cfg.HistoryPath = a.historyPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewWithOutput(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	return nil
}
