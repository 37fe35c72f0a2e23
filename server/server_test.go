package server_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/driller/config"
	"github.com/katalvlaran/driller/grid"
	"github.com/katalvlaran/driller/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return server.New(logger, 10).Handler()
}

// do sends body to path and returns the recorded response.
func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newServer(t), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// TestSolve_Scenario returns the 3×3 sample's best path with named moves.
func TestSolve_Scenario(t *testing.T) {
	rec := do(t, newServer(t), http.MethodPost, "/api/solve", `{"rows":[[3,0,0],[1,5,0],[2,6,8]],"top":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var raw struct {
		Result struct {
			Path struct {
				Steps []struct {
					Cell  grid.Cell `json:"cell"`
					Move  string    `json:"move"`
					Value int       `json:"value"`
				} `json:"steps"`
				Total int `json:"total"`
			} `json:"path"`
			Candidates     int   `json:"candidates"`
			GoalsPerColumn []int `json:"goalsPerColumn"`
		} `json:"result"`
		Ranked []struct {
			Total int `json:"total"`
		} `json:"ranked"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))

	assert.Equal(t, 16, raw.Result.Path.Total)
	assert.Equal(t, 6, raw.Result.Candidates)
	assert.Equal(t, []int{2, 2, 2}, raw.Result.GoalsPerColumn)
	require.Len(t, raw.Result.Path.Steps, 3)
	assert.Equal(t, "start", raw.Result.Path.Steps[0].Move)
	assert.Equal(t, "down-right", raw.Result.Path.Steps[1].Move)
	assert.Equal(t, grid.Cell{Row: 2, Col: 2}, raw.Result.Path.Steps[2].Cell)
	require.Len(t, raw.Ranked, 2)
	assert.Equal(t, 13, raw.Ranked[1].Total)
}

// zeroRows returns a JSON body with an n×n grid of zeros.
func zeroRows(n int) string {
	row := "[" + strings.TrimSuffix(strings.Repeat("0,", n), ",") + "]"

	return `{"rows":[` + strings.TrimSuffix(strings.Repeat(row+",", n), ",") + `],"top":1}`
}

// TestSolve_DefaultMaxSize accepts grids up to the default cap and rejects
// the next size before searching.
func TestSolve_DefaultMaxSize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := server.New(slog.New(slog.NewTextHandler(io.Discard, nil)), config.DefaultMaxSize).Handler()

	rec := do(t, h, http.MethodPost, "/api/solve", zeroRows(config.DefaultMaxSize))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/solve", zeroRows(config.DefaultMaxSize+1))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

// TestSolve_StartColumns passes the column restriction through.
func TestSolve_StartColumns(t *testing.T) {
	rec := do(t, newServer(t), http.MethodPost, "/api/solve", `{"rows":[[3,0,0],[1,5,0],[2,6,8]],"startColumns":[1]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":7`)
	assert.NotContains(t, rec.Body.String(), `"ranked"`)
}

// TestSolve_Errors maps bad input to client errors.
func TestSolve_Errors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"NotJSON", `rows`, http.StatusBadRequest},
		{"MissingRows", `{}`, http.StatusBadRequest},
		{"EmptyRows", `{"rows":[]}`, http.StatusBadRequest},
		{"Ragged", `{"rows":[[1,2],[3]]}`, http.StatusBadRequest},
		{"BadColumn", `{"rows":[[1,2],[3,4]],"startColumns":[5]}`, http.StatusBadRequest},
		{"EmptyColumns", `{"rows":[[1,2],[3,4]],"startColumns":[]}`, http.StatusBadRequest},
		{"TooLarge", `{"rows":[[0],[0],[0],[0],[0],[0],[0],[0],[0],[0],[0]]}`, http.StatusRequestEntityTooLarge},
	}
	h := newServer(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/solve", tc.body)
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}
