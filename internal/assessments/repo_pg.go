package assessments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"assessment-backend/internal/assessments/insights"
)

// PGRepo implements Repo using Postgres. IDs come from a bigserial column,
// which keeps them monotonic and never reused.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new assessment and returns it with ID and timestamp set.
func (r *PGRepo) Create(ctx context.Context, a Assessment) (Assessment, error) {
	answersJSON, err := json.Marshal(a.Answers)
	if err != nil {
		return Assessment{}, fmt.Errorf("marshal answers: %w", err)
	}

	const query = `
INSERT INTO assessments (answers, website_url, company_profile_url, company_profile_filename)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`
	row := r.DB.QueryRowContext(ctx, query, answersJSON, a.Answers.WebsiteURL, a.CompanyProfileURL, a.CompanyProfileFilename)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return Assessment{}, fmt.Errorf("insert assessment: %w", err)
	}
	return a, nil
}

// Get returns the assessment with the given ID.
func (r *PGRepo) Get(ctx context.Context, id int) (Assessment, error) {
	const query = `
SELECT id, answers, company_profile_url, company_profile_filename, analysis, created_at
FROM assessments
WHERE id = $1`
	return scanAssessment(r.DB.QueryRowContext(ctx, query, id))
}

// AttachAnalysis sets the analysis for an existing assessment.
func (r *PGRepo) AttachAnalysis(ctx context.Context, id int, analysis Analysis) (Assessment, error) {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return Assessment{}, fmt.Errorf("marshal analysis: %w", err)
	}

	const query = `
UPDATE assessments
SET analysis = $2
WHERE id = $1
RETURNING id, answers, company_profile_url, company_profile_filename, analysis, created_at`
	return scanAssessment(r.DB.QueryRowContext(ctx, query, id, analysisJSON))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (Assessment, error) {
	var (
		a            Assessment
		answersJSON  []byte
		analysisJSON sql.Null[[]byte]
	)
	err := row.Scan(&a.ID, &answersJSON, &a.CompanyProfileURL, &a.CompanyProfileFilename, &analysisJSON, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Assessment{}, ErrNotFound
	}
	if err != nil {
		return Assessment{}, fmt.Errorf("scan assessment: %w", err)
	}

	var answers insights.Answers
	if err := json.Unmarshal(answersJSON, &answers); err != nil {
		return Assessment{}, fmt.Errorf("unmarshal answers: %w", err)
	}
	a.Answers = answers

	if analysisJSON.Valid && len(analysisJSON.V) > 0 {
		var analysis Analysis
		if err := json.Unmarshal(analysisJSON.V, &analysis); err != nil {
			return Assessment{}, fmt.Errorf("unmarshal analysis: %w", err)
		}
		a.Analysis = &analysis
	}
	return a, nil
}
