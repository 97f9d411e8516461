package progress

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new snapshot and returns it with ID and timestamp set.
func (r *PGRepo) Create(ctx context.Context, p Progress) (Progress, error) {
	dataJSON, err := json.Marshal(p.SurveyData)
	if err != nil {
		return Progress{}, fmt.Errorf("marshal survey data: %w", err)
	}

	const query = `
INSERT INTO progress (email, survey_data)
VALUES ($1, $2)
RETURNING id, created_at`
	row := r.DB.QueryRowContext(ctx, query, p.Email, dataJSON)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return Progress{}, fmt.Errorf("insert progress: %w", err)
	}
	return p, nil
}

// Get returns the snapshot with the given ID.
func (r *PGRepo) Get(ctx context.Context, id int) (Progress, error) {
	const query = `
SELECT id, email, survey_data, created_at
FROM progress
WHERE id = $1`

	var (
		p        Progress
		dataJSON []byte
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Email, &dataJSON, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Progress{}, ErrNotFound
	}
	if err != nil {
		return Progress{}, fmt.Errorf("scan progress: %w", err)
	}
	if err := json.Unmarshal(dataJSON, &p.SurveyData); err != nil {
		return Progress{}, fmt.Errorf("unmarshal survey data: %w", err)
	}
	return p, nil
}
