package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SolveRecord stores one solver result: the state that was solved and the
// solution the service returned.
type SolveRecord struct {
	SolveID    string
	Cubestring string
	Solution   string
	MoveCount  int
	CreatedAt  time.Time
}

// SolveRepository provides CRUD operations for solver results.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create stores a solve result and returns its ID.
func (r *SolveRepository) Create(cubestring, solution string, moveCount int) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, cubestring, solution_text, move_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, cubestring, solution, moveCount, createdAt.Format(time.RFC3339))

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID.
func (r *SolveRepository) Get(solveID string) (*SolveRecord, error) {
	var s SolveRecord
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT solve_id, cubestring, solution_text, move_count, created_at
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(&s.SolveID, &s.Cubestring, &s.Solution, &s.MoveCount, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &s, nil
}

// List retrieves recent solves.
func (r *SolveRepository) List(limit int) ([]SolveRecord, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, cubestring, solution_text, move_count, created_at
		FROM solves
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []SolveRecord
	for rows.Next() {
		var s SolveRecord
		var createdAtStr string

		if err := rows.Scan(&s.SolveID, &s.Cubestring, &s.Solution, &s.MoveCount, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}

		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		solves = append(solves, s)
	}

	return solves, nil
}

// Delete deletes a solve.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}
