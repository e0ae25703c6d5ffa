package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Snapshot sources.
const (
	SourceCamera   = "camera"
	SourceManual   = "manual"
	SourceScramble = "scramble"
	SourceAPI      = "api"
)

// Snapshot is one committed cube state.
type Snapshot struct {
	SnapshotID string
	Cubestring string
	Source     string
	IsValid    bool
	CreatedAt  time.Time
}

// SnapshotRepository provides CRUD operations for cube state snapshots.
type SnapshotRepository struct {
	db *DB
}

// NewSnapshotRepository creates a new snapshot repository.
func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Create stores a cube state and returns its ID.
func (r *SnapshotRepository) Create(cubestring, source string, isValid bool) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO snapshots (snapshot_id, cubestring, source, is_valid, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, cubestring, source, isValid, createdAt.Format(time.RFC3339))

	if err != nil {
		return "", fmt.Errorf("failed to create snapshot: %w", err)
	}

	return id, nil
}

// Get retrieves a snapshot by ID.
func (r *SnapshotRepository) Get(snapshotID string) (*Snapshot, error) {
	var s Snapshot
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT snapshot_id, cubestring, source, is_valid, created_at
		FROM snapshots
		WHERE snapshot_id = ?
	`, snapshotID).Scan(&s.SnapshotID, &s.Cubestring, &s.Source, &s.IsValid, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &s, nil
}

// GetLast retrieves the most recent snapshot.
func (r *SnapshotRepository) GetLast() (*Snapshot, error) {
	var snapshotID string
	err := r.db.QueryRow(`
		SELECT snapshot_id FROM snapshots
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`).Scan(&snapshotID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last snapshot: %w", err)
	}

	return r.Get(snapshotID)
}

// List retrieves recent snapshots.
func (r *SnapshotRepository) List(limit int) ([]Snapshot, error) {
	rows, err := r.db.Query(`
		SELECT snapshot_id, cubestring, source, is_valid, created_at
		FROM snapshots
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		var createdAtStr string

		if err := rows.Scan(&s.SnapshotID, &s.Cubestring, &s.Source, &s.IsValid, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}

		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		snapshots = append(snapshots, s)
	}

	return snapshots, nil
}

// Delete deletes a snapshot.
func (r *SnapshotRepository) Delete(snapshotID string) error {
	_, err := r.db.Exec("DELETE FROM snapshots WHERE snapshot_id = ?", snapshotID)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
