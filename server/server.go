// Package server exposes the descent search over HTTP with gin.
//
// Routes:
//
//	POST /api/solve   {"rows": [[...]], "top": k, "startColumns": [...]}
//	GET  /healthz
//
// Each request builds its own grid and runs its own synchronous search.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/driller/grid"
	"github.com/katalvlaran/driller/search"
)

// SolveRequest is the body of POST /api/solve.
type SolveRequest struct {
	Rows         [][]int `json:"rows" binding:"required"`
	Top          int     `json:"top"`
	StartColumns []int   `json:"startColumns"`
}

// SolveResponse is returned on success. Ranked is present only when Top > 0.
type SolveResponse struct {
	Result      *search.Result `json:"result"`
	Ranked      []search.Path  `json:"ranked,omitempty"`
	TimeTakenMs float64        `json:"timeTakenMs"`
}

// ErrorResponse carries a failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server wires the gin engine to the search.
type Server struct {
	engine  *gin.Engine
	logger  *slog.Logger
	maxSize int
}

// New builds a Server that rejects grids larger than maxSize×maxSize.
func New(logger *slog.Logger, maxSize int) *Server {
	s := &Server{
		engine:  gin.New(),
		logger:  logger,
		maxSize: maxSize,
	}
	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.engine.GET("/healthz", s.health)
	s.engine.POST("/api/solve", s.solve)

	return s
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("HTTP server listening.", "addr", addr)

	return s.engine.Run(addr)
}

// requestLogger logs one line per request through slog.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("Request handled.",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) solve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if len(req.Rows) > s.maxSize {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "grid too large"})
		return
	}

	g, err := grid.New(req.Rows)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var opts []search.Option
	if req.StartColumns != nil {
		opts = append(opts, search.WithStartColumns(req.StartColumns...))
	}

	start := time.Now()
	var resp SolveResponse
	if req.Top > 0 {
		resp.Result, resp.Ranked, err = search.SolveRanked(g, req.Top, opts...)
	} else {
		resp.Result, err = search.Solve(g, opts...)
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	resp.TimeTakenMs = float64(time.Since(start).Microseconds()) / 1000.0

	s.logger.Debug("Solved grid.", "size", g.Size(), "total", resp.Result.Path.Total, "candidates", resp.Result.Candidates)
	c.JSON(http.StatusOK, resp)
}

// fail maps search errors onto status codes.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, search.ErrOptionViolation) || errors.Is(err, grid.ErrEmptyGrid) {
		status = http.StatusBadRequest
	} else {
		s.logger.Error("Search failed.", "error", err)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}
