// Package app wires configuration, logging, the search and its outputs
// into the driller command.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/driller/config"
	"github.com/katalvlaran/driller/internal/ctxlog"
	"github.com/katalvlaran/driller/render"
	"github.com/katalvlaran/driller/search"
	"github.com/katalvlaran/driller/server"
)

// App holds the resolved configuration and its own logger.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *config.Config
	top    int
}

// New builds an App writing reports to outW and logs to logW.
// top > 0 appends a ranking of the best top paths to the report.
func New(outW, logW io.Writer, cfg *config.Config, top int) *App {
	return &App{
		outW:   outW,
		logger: newLogger(cfg.Log.Level, cfg.Log.Format, logW),
		cfg:    cfg,
		top:    top,
	}
}

// Context returns ctx carrying the App's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Solve loads the configured grid, runs the search and writes the report.
func (a *App) Solve(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	g, err := a.cfg.Grid()
	if err != nil {
		return fmt.Errorf("load grid: %w", err)
	}
	logger.Debug("Grid loaded.", "size", g.Size(), "path", a.cfg.Input.Path)

	onGoal := search.WithOnGoal(func(col, total int) error {
		logger.Debug("Goal recorded.", "column", col, "total", total)
		return nil
	})
	var (
		res   *search.Result
		paths []search.Path
	)
	if a.top > 0 {
		res, paths, err = search.SolveRanked(g, a.top, onGoal)
	} else {
		res, err = search.Solve(g, onGoal)
	}
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	logger.Info("Search finished.",
		"total", res.Path.Total,
		"start_column", res.StartColumn,
		"candidates", res.Candidates,
		"expanded", res.Expanded,
	)

	opts := render.Options{
		ShowGrid:  a.cfg.Output.ShowGrid,
		Narrative: a.cfg.Output.Narrative,
		Map:       a.cfg.Output.Map,
	}
	if err = render.Report(a.outW, g, res, opts); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if a.top > 0 {
		if err = render.Ranking(a.outW, paths); err != nil {
			return fmt.Errorf("write ranking: %w", err)
		}
	}

	return nil
}

// Serve runs the HTTP API on the configured address until it fails.
func (a *App) Serve(ctx context.Context) error {
	if a.cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := server.New(ctxlog.FromContext(ctx), a.cfg.Server.MaxSize)

	return srv.Run(a.cfg.Server.Addr)
}
