package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Position is a named cube state stored in the database. Stickers is
// the 54-letter snapshot encoding.
type Position struct {
	PositionID string
	Name       string
	Stickers   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PositionRepository handles position persistence.
type PositionRepository struct {
	db *DB
}

// NewPositionRepository creates a new position repository.
func NewPositionRepository(db *DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// Save stores a position under a name, replacing whatever was saved
// under that name before. Returns the position ID.
func (r *PositionRepository) Save(name, stickers string) (string, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	var id string
	err := r.db.Transaction(func(tx *sql.Tx) error {
		var existingID string
		err := tx.QueryRow("SELECT position_id FROM positions WHERE name = ?", name).Scan(&existingID)

		switch {
		case err == sql.ErrNoRows:
			id = uuid.New().String()
			_, err := tx.Exec(`
				INSERT INTO positions (position_id, name, stickers, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?)
			`, id, name, stickers, now, now)
			if err != nil {
				return fmt.Errorf("failed to insert position: %w", err)
			}
			return nil

		case err != nil:
			return fmt.Errorf("failed to look up position: %w", err)

		default:
			id = existingID
			_, err := tx.Exec(`
				UPDATE positions
				SET stickers = ?, updated_at = ?
				WHERE position_id = ?
			`, stickers, now, existingID)
			if err != nil {
				return fmt.Errorf("failed to update position: %w", err)
			}
			return nil
		}
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// Get retrieves a position by name. Returns nil if it does not exist.
func (r *PositionRepository) Get(name string) (*Position, error) {
	var p Position
	var createdAt, updatedAt string

	err := r.db.QueryRow(`
		SELECT position_id, name, stickers, created_at, updated_at
		FROM positions
		WHERE name = ?
	`, name).Scan(&p.PositionID, &p.Name, &p.Stickers, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get position: %w", err)
	}

	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &p, nil
}

// List retrieves all positions ordered by name.
func (r *PositionRepository) List() ([]Position, error) {
	rows, err := r.db.Query(`
		SELECT position_id, name, stickers, created_at, updated_at
		FROM positions
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []Position
	for rows.Next() {
		var p Position
		var createdAt, updatedAt string

		if err := rows.Scan(&p.PositionID, &p.Name, &p.Stickers, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}

		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

		positions = append(positions, p)
	}

	return positions, rows.Err()
}

// Delete removes a position by name. Reports whether it existed.
func (r *PositionRepository) Delete(name string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM positions WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("failed to delete position: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete position: %w", err)
	}

	return affected > 0, nil
}
