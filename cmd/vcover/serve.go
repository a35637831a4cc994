package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vertexcover/internal/api"
	"github.com/katalvlaran/vertexcover/internal/history"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the evaluation API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Addr = addr
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (VCOVER_ADDR)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	gin.SetMode(a.cfg.GinMode)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	opts := []api.Option{
		api.WithSearchLimit(a.cfg.SearchLimit),
		api.WithStrictGraph(a.cfg.StrictGraph),
		api.WithLogger(a.logger),
		api.WithRegistry(reg),
	}
	if a.cfg.HistoryPath != "" {
		store, err := history.Open(a.cfg.HistoryPath)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, api.WithRecorder(store))
	}

	srv := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           api.New(opts...).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.WithField("addr", a.cfg.Addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
