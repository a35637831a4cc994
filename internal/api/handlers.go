package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/message"

	"github.com/katalvlaran/vertexcover/cover"
	"github.com/katalvlaran/vertexcover/internal/history"
	"github.com/katalvlaran/vertexcover/internal/logging"
	"github.com/katalvlaran/vertexcover/internal/puzzle"
)

// RequestIDHeader carries the per-evaluation request id.
const RequestIDHeader = "X-Request-ID"

// defaultHistoryLimit is used when /api/history has no limit parameter.
const defaultHistoryLimit = 20

// EvaluateResponse is the body of a successful POST /api/evaluate.
//
// List fields that are always defined serialize as [] when empty. The two
// optimum fields are null together when the optimum is unknown, so null
// always means "not computed" and [] means "computed and empty".
type EvaluateResponse struct {
	IsValidCover   bool          `json:"isValidCover"`
	UncoveredEdges []cover.Edge  `json:"uncoveredEdges"`
	SelectedSize   int           `json:"selectedSize"`
	OptimalSize    *int          `json:"optimalSize"`
	Message        string        `json:"message"`
	Outcome        cover.Outcome `json:"outcome"`
	OptimalCover   []int         `json:"optimalCover"`
	Redundant      []int         `json:"redundant"`
	RequestID      string        `json:"requestId"`
}

// NewEvaluateResponse renders res for the wire, with the message printed by p.
func NewEvaluateResponse(res cover.EvaluationResult, p *message.Printer, requestID string) EvaluateResponse {
	resp := EvaluateResponse{
		IsValidCover:   res.Check.IsValid,
		UncoveredEdges: res.Check.Uncovered,
		SelectedSize:   res.SelectedSize,
		Message:        Message(p, res),
		Outcome:        res.Outcome,
		Redundant:      res.Redundant,
		RequestID:      requestID,
	}
	if res.Optimum != nil {
		size := res.Optimum.Size
		resp.OptimalSize = &size
		resp.OptimalCover = res.Optimum.Cover
		if resp.OptimalCover == nil {
			resp.OptimalCover = []int{}
		}
	}
	if resp.UncoveredEdges == nil {
		resp.UncoveredEdges = []cover.Edge{}
	}
	if resp.Redundant == nil {
		resp.Redundant = []int{}
	}
	return resp
}

// ErrorResponse is the body of every 4xx/5xx reply.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// PuzzleResponse is the body of GET /api/puzzles/:name.
type PuzzleResponse struct {
	Name  string           `json:"name"`
	Graph *puzzle.GraphDoc `json:"graph"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleEvaluate(c *gin.Context) {
	requestID := uuid.NewString()
	c.Header(RequestIDHeader, requestID)
	logger := s.logger.WithField("request_id", requestID)

	var doc puzzle.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		s.rejectInvalid(c, logger, reasonMalformed, err)
		return
	}
	g, err := doc.ToGraph(s.strict)
	if err != nil {
		reason := reasonMalformed
		if errors.Is(err, puzzle.ErrOutOfRange) {
			reason = reasonOutOfRange
		}
		s.rejectInvalid(c, logger, reason, err)
		return
	}

	ctx := logging.WithLogger(c.Request.Context(), logger)
	res := s.Evaluate(ctx, g, doc.Placement())
	resp := NewEvaluateResponse(res, Printer(ResolveTag(c.Request)), requestID)

	if s.recorder != nil {
		a := history.NewAttempt(g, res)
		a.ID = requestID
		if _, err := s.recorder.Record(ctx, a); err != nil {
			logger.WithError(err).Warn("record attempt")
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) rejectInvalid(c *gin.Context, logger logrus.FieldLogger, reason string, err error) {
	s.metrics.reject(reason)
	logger.WithError(err).WithField("reason", reason).Info("rejected evaluation request")
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid graph", Detail: rejectionDetail(err)})
}

// rejectionDetail reduces a bind or conversion error to a short field-level
// reason, e.g. "graph.n: is required".
func rejectionDetail(err error) string {
	var (
		inv       *puzzle.InvalidError
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.As(err, &inv):
		return inv.Detail()
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return "body: expected a JSON object"
		}
		return fmt.Sprintf("%s: expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("body: malformed JSON at offset %d", syntaxErr.Offset)
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return "body: empty or truncated"
	default:
		return "body: not a puzzle document"
	}
}

func (s *Server) handleListPuzzles(c *gin.Context) {
	entries, err := puzzle.Catalog()
	if err != nil {
		s.logger.WithError(err).Error("build puzzle catalog")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) handleGetPuzzle(c *gin.Context) {
	name := c.Param("name")
	g, err := puzzle.Lookup(name)
	if err != nil {
		if errors.Is(err, puzzle.ErrUnknownPuzzle) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown puzzle", Detail: name})
			return
		}
		s.logger.WithError(err).WithField("puzzle", name).Error("build puzzle")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "puzzle unavailable"})
		return
	}
	c.JSON(http.StatusOK, PuzzleResponse{Name: name, Graph: puzzle.FromGraph(g, nil).Graph})
}

func (s *Server) handleHistory(c *gin.Context) {
	if s.recorder == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "history disabled"})
		return
	}
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit", Detail: raw})
			return
		}
		limit = v
	}
	attempts, err := s.recorder.Recent(c.Request.Context(), limit)
	if err != nil {
		s.logger.WithError(err).Error("read history")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "history unavailable"})
		return
	}
	c.JSON(http.StatusOK, attempts)
}
