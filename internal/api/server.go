// Package api serves vertex-cover evaluation over HTTP.
//
// Routes:
//
//	POST /api/evaluate        evaluate a placement
//	GET  /api/puzzles         list built-in puzzles
//	GET  /api/puzzles/:name   fetch one built-in puzzle graph
//	GET  /api/history         recent attempts (when a Recorder is configured)
//	GET  /healthz             liveness
//	GET  /metrics             Prometheus exposition
package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/vertexcover/cover"
	"github.com/katalvlaran/vertexcover/internal/history"
	"github.com/katalvlaran/vertexcover/internal/logging"
)

const tracerName = "github.com/katalvlaran/vertexcover/internal/api"

// Recorder persists evaluated attempts. *history.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, a history.Attempt) (history.Attempt, error)
	Recent(ctx context.Context, limit int) ([]history.Attempt, error)
}

// Server evaluates placements for HTTP clients.
type Server struct {
	searchLimit int
	strict      bool
	logger      logrus.FieldLogger
	recorder    Recorder
	registry    *prometheus.Registry
	metrics     *Metrics
	tracer      trace.Tracer
}

// Option configures a Server.
type Option func(*Server)

// WithSearchLimit sets the largest graph order solved exhaustively.
func WithSearchLimit(limit int) Option {
	return func(s *Server) { s.searchLimit = limit }
}

// WithStrictGraph toggles rejection of out-of-range edges.
func WithStrictGraph(strict bool) Option {
	return func(s *Server) { s.strict = strict }
}

// WithLogger sets the logger; nil discards.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Server) { s.logger = logging.OrDiscard(logger) }
}

// WithRecorder enables attempt history.
func WithRecorder(r Recorder) Option {
	return func(s *Server) { s.recorder = r }
}

// WithRegistry registers metrics with reg and serves reg on /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithTracerProvider overrides the global otel tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) {
		if tp != nil {
			s.tracer = tp.Tracer(tracerName)
		}
	}
}

// New returns a Server with strict graphs, the default search limit, a
// private metrics registry and no history.
func New(opts ...Option) *Server {
	s := &Server{
		searchLimit: cover.DefaultSearchLimit,
		strict:      true,
		logger:      logging.Discard(),
		tracer:      otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.logger = s.logger.WithField("module", "api")
	s.metrics = NewMetrics(s.registry)

	return s
}

// Router builds the gin engine serving every route.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	api.POST("/evaluate", s.handleEvaluate)
	api.GET("/puzzles", s.handleListPuzzles)
	api.GET("/puzzles/:name", s.handleGetPuzzle)
	api.GET("/history", s.handleHistory)

	return r
}

// Evaluate runs one traced, measured evaluation. Log lines go to the logger
// carried by ctx, falling back to the server's own.
func (s *Server) Evaluate(ctx context.Context, g cover.Graph, chosen cover.VertexSet) cover.EvaluationResult {
	_, span := s.tracer.Start(ctx, "cover.Evaluate", trace.WithAttributes(
		attribute.Int("graph.vertices", g.N),
		attribute.Int("graph.edges", len(g.Edges)),
		attribute.Int("placement.size", chosen.Len()),
		attribute.Int("search.limit", s.searchLimit),
	))
	defer span.End()
	logger := logging.FromContext(ctx, s.logger)

	start := time.Now()
	res := cover.Evaluate(g, chosen, cover.WithSearchLimit(s.searchLimit))
	s.metrics.observe(res, time.Since(start))

	span.SetAttributes(attribute.String("cover.outcome", res.Outcome.String()))
	if size, ok := res.OptimalSize(); ok {
		span.SetAttributes(
			attribute.Int("cover.optimal_size", size),
			attribute.Int("search.space", cover.SearchBound(g.N, size)),
		)
	}
	if res.Outcome == cover.AnomalousBetterThanOptimum {
		span.SetStatus(codes.Error, "placement smaller than computed minimum")
		logger.WithFields(logrus.Fields{
			"vertices": g.N,
			"edges":    len(g.Edges),
			"selected": chosen.Sorted(),
			"optimum":  res.Optimum.Cover,
		}).Error("valid placement smaller than computed minimum")
	}
	logger.WithFields(logrus.Fields{
		"outcome":  res.Outcome.String(),
		"selected": res.SelectedSize,
	}).Info("evaluated placement")

	return res
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Debug("request")
	}
}
