package solver

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubeview"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *HTTPSolver {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTP(srv.URL, zerolog.Nop())
}

func TestSolveRoundTrip(t *testing.T) {
	scrambled := cubeview.ApplyMoves(cubeview.Solved(), cubeview.TPerm)

	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/solve", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), scrambled.String())
		// Undoing the scramble is a valid solution for this state.
		w.Write([]byte(`{"solution": "` + cubeview.FormatMoves(cubeview.InverseMoves(cubeview.TPerm)) + `"}`))
	})

	moves, err := s.Solve(context.Background(), scrambled.String())
	require.NoError(t, err)

	solved := cubeview.ApplyMoves(scrambled, moves)
	assert.True(t, solved.IsSolved(), "applying the returned solution should solve the cube")
}

func TestSolveUnsolvable(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error": "state is in an unsolvable coset"}`))
	})

	_, err := s.Solve(context.Background(), cubeview.Solved().String())
	assert.ErrorIs(t, err, ErrUnsolvable)
}

func TestSolveRejectsShortCubestring(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("service should not be called for a bad cubestring")
	})

	_, err := s.Solve(context.Background(), "UUU")
	assert.ErrorIs(t, err, cubeview.ErrSequenceLength)
}

func TestSolveRejectsBadNotationFromService(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"solution": "R U Qx"}`))
	})

	_, err := s.Solve(context.Background(), cubeview.Solved().String())
	assert.ErrorIs(t, err, cubeview.ErrInvalidNotation)
}

func TestSolveServiceError(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "boom"}`))
	})

	_, err := s.Solve(context.Background(), cubeview.Solved().String())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsolvable)
}
