// Package solver talks to the external two-phase solver service. The
// solving algorithm itself is a black box behind an HTTP boundary: this
// package ships a cubestring out and brings a parsed move sequence back.
package solver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/cubeview"
)

// ErrUnsolvable is returned when the solver rejects a configuration as a
// member of an unsolvable coset. The state engine cannot detect this
// itself; structural validity says nothing about group membership.
var ErrUnsolvable = errors.New("solver: configuration is not solvable")

// Solver produces a move sequence that solves a cubestring.
type Solver interface {
	Solve(ctx context.Context, cubestring string) ([]cubeview.Move, error)
}

// HTTPSolver forwards solve requests to a two-phase solver service.
type HTTPSolver struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewHTTP creates a solver client for the service at baseURL.
func NewHTTP(baseURL string, log zerolog.Logger) *HTTPSolver {
	return &HTTPSolver{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log.With().Str("module", "solver").Logger(),
	}
}

type solveRequest struct {
	Cube string `json:"cube"`
}

type solveResponse struct {
	Solution string `json:"solution"`
	Error    string `json:"error,omitempty"`
}

// Solve sends the cubestring to the service and parses the returned
// whitespace-separated notation into moves. A 422 from the service means
// the configuration is unsolvable.
func (s *HTTPSolver) Solve(ctx context.Context, cubestring string) ([]cubeview.Move, error) {
	if _, err := cubeview.ParseSequence(cubestring); err != nil {
		return nil, err
	}

	body, err := sonic.Marshal(solveRequest{Cube: cubestring})
	if err != nil {
		return nil, fmt.Errorf("solver: encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/solve", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("solver: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("solver: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("solver: reading response: %w", err)
	}

	var parsed solveResponse
	if err := sonic.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("solver: decoding response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", ErrUnsolvable, parsed.Error)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("solver: service returned %d: %s", resp.StatusCode, parsed.Error)
	}

	moves, err := cubeview.ParseMoves(parsed.Solution)
	if err != nil {
		return nil, fmt.Errorf("solver: service returned bad notation: %w", err)
	}

	s.log.Debug().
		Int("moves", len(moves)).
		Dur("elapsed", time.Since(start)).
		Msg("solve completed")

	return moves, nil
}
