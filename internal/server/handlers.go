package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/SeamusWaldron/cubeview"
	"github.com/SeamusWaldron/cubeview/internal/detect"
	"github.com/SeamusWaldron/cubeview/internal/solver"
	"github.com/SeamusWaldron/cubeview/internal/storage"
)

// stateResponse is the wire form of the authoritative state. Cube is the
// canonical 54-character cubestring in fixed face order.
type stateResponse struct {
	Cube       string   `json:"cube"`
	Solved     bool     `json:"solved"`
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"encoding response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func readJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}
	if err := sonic.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding body: %w", err)
	}
	return nil
}

// stateResponseLocked builds a state response; callers hold s.mu.
func (s *Server) stateResponseLocked() stateResponse {
	snap := s.state.Snapshot()
	violations := cubeview.ValidateStructure([]byte(snap.String()))
	resp := stateResponse{
		Cube:   snap.String(),
		Solved: snap.IsSolved(),
		Valid:  len(violations) == 0,
	}
	for _, v := range violations {
		resp.Violations = append(resp.Violations, v.String())
	}
	return resp
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := s.stateResponseLocked()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLoadState(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cube string `json:"cube"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.state.Load([]byte(req.Cube)); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp := s.stateResponseLocked()
	s.recordSnapshot(resp.Cube, storage.SourceAPI, resp.Valid)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.state.Reset()
	resp := s.stateResponseLocked()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetFace(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Face     string `json:"face"`
		Stickers string `json:"stickers"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Face) != 1 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("face must be a single letter, got %q", req.Face))
		return
	}
	face, err := cubeview.ParseFace(req.Face[0])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Stickers) != 9 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("stickers must be 9 symbols, got %d", len(req.Stickers)))
		return
	}

	var stickers [9]byte
	copy(stickers[:], req.Stickers)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.state.SetFace(face, stickers); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.stateResponseLocked())
}

func (s *Server) handleSetSticker(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Face   string `json:"face"`
		Row    int    `json:"row"`
		Col    int    `json:"col"`
		Symbol string `json:"symbol"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Face) != 1 || len(req.Symbol) != 1 {
		writeError(w, http.StatusBadRequest, errors.New("face and symbol must be single letters"))
		return
	}
	face, err := cubeview.ParseFace(req.Face[0])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.state.SetSticker(face, req.Row, req.Col, req.Symbol[0]); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.stateResponseLocked())
}

func (s *Server) handleApplyMoves(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Moves string `json:"moves"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	moves, err := cubeview.ParseMoves(req.Moves)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	s.state.ApplyMoves(moves)
	resp := s.stateResponseLocked()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, struct {
		stateResponse
		Applied int `json:"applied"`
	}{resp, len(moves)})
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Length int `json:"length"`
	}
	// An empty body means the default length.
	if r.ContentLength > 0 {
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	n := s.scrambleLen
	if req.Length > 0 {
		n = req.Length
	}

	s.mu.Lock()
	moves := cubeview.Scramble(n, s.rng)
	s.state.Reset()
	s.state.ApplyMoves(moves)
	resp := s.stateResponseLocked()
	s.recordSnapshot(resp.Cube, storage.SourceScramble, true)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, struct {
		stateResponse
		Scramble string `json:"scramble"`
	}{resp, cubeview.FormatMoves(moves)})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if s.solver == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("solver service not configured"))
		return
	}

	s.mu.Lock()
	snap := s.state.Snapshot()
	s.mu.Unlock()

	// The solver gets only structurally valid states; anything else would
	// fail remotely with a less useful message.
	if violations := cubeview.ValidateStructure([]byte(snap.String())); len(violations) > 0 {
		msgs := make([]string, len(violations))
		for i, v := range violations {
			msgs[i] = v.String()
		}
		writeJSON(w, http.StatusBadRequest, struct {
			Error      string   `json:"error"`
			Violations []string `json:"violations"`
		}{"state is structurally invalid", msgs})
		return
	}

	moves, err := s.solver.Solve(r.Context(), snap.String())
	if err != nil {
		if errors.Is(err, solver.ErrUnsolvable) {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		writeError(w, http.StatusBadGateway, err)
		return
	}

	solution := cubeview.FormatMoves(moves)
	if s.solves != nil {
		if _, err := s.solves.Create(snap.String(), solution, len(moves)); err != nil {
			s.log.Warn().Err(err).Msg("failed to store solve result")
		}
	}

	writeJSON(w, http.StatusOK, struct {
		Cube      string `json:"cube"`
		Solution  string `json:"solution"`
		MoveCount int    `json:"move_count"`
	}{snap.String(), solution, len(moves)})
}

func (s *Server) handleDetectColors(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Face    string        `json:"face"`
		Samples [9]detect.RGB `json:"samples"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	names, letters := detect.ClassifyFace(req.Samples)
	colors := make([]string, len(names))
	for i, n := range names {
		colors[i] = string(n)
	}

	writeJSON(w, http.StatusOK, struct {
		Face     string   `json:"face"`
		Colors   []string `json:"colors"`
		Notation string   `json:"cube_notation"`
	}{req.Face, colors, string(letters[:])})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, errors.New("streaming not supported"))
		return
	}

	ch := s.events.Subscribe()
	defer s.events.Unsubscribe(ch)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", event)
			flusher.Flush()
		}
	}
}

// recordSnapshot persists a committed state when a store is wired;
// callers hold s.mu.
func (s *Server) recordSnapshot(cubestring, source string, valid bool) {
	if s.snapshots == nil {
		return
	}
	if _, err := s.snapshots.Create(cubestring, source, valid); err != nil {
		s.log.Warn().Err(err).Str("source", source).Msg("failed to store snapshot")
	}
}
