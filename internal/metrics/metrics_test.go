package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-ricrob/pegsolver/board"
	"github.com/go-ricrob/pegsolver/solver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)

	c.Terminal(1, true)
	c.Terminal(3, false)
	c.Terminal(2, false)
	c.Finished(&solver.Result{Solutions: make([][]board.Jump, 7), Elapsed: time.Second})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.terminalStates.WithLabelValues("win")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.terminalStates.WithLabelValues("dead_end")))
	assert.Equal(t, 7.0, testutil.ToFloat64(c.solutions))
	assert.Equal(t, 1, testutil.CollectAndCount(c.terminalPegs))
}

func TestCollectorWithSolver(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	initial, err := board.New(4, board.MustPosition(2, 1))
	require.NoError(t, err)
	result, err := solver.New(initial, solver.WithObserver(c), solver.WithWorkers(2)).Run()
	require.NoError(t, err)

	assert.Equal(t, float64(result.NumSolutions()), testutil.ToFloat64(c.terminalStates.WithLabelValues("win")))
	assert.Equal(t, float64(result.DeadEnds), testutil.ToFloat64(c.terminalStates.WithLabelValues("dead_end")))
	assert.Equal(t, 14.0, testutil.ToFloat64(c.solutions))

	// registering twice on the same registry fails
	_, err = New(reg)
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	c.Terminal(1, true)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `pegsolver_terminal_states_total{outcome="win"} 1`)
}
