package progress

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"assessment-backend/internal/shared/metrics"
)

// ErrInvalidEmail is returned before any record is created, so a rejected
// save never advances the ID counter.
var ErrInvalidEmail = errors.New("invalid email address")

// Service contains business logic for progress snapshots.
type Service struct {
	Repo Repo
}

// Save validates the email and creates a new snapshot.
func (s *Service) Save(ctx context.Context, email string, surveyData map[string]any) (Progress, error) {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return Progress{}, ErrInvalidEmail
	}
	if surveyData == nil {
		surveyData = map[string]any{}
	}

	p, err := s.Repo.Create(ctx, Progress{Email: email, SurveyData: surveyData})
	if err != nil {
		return Progress{}, fmt.Errorf("save progress: %w", err)
	}
	metrics.IncProgressSaved()
	return p, nil
}

// Get returns the snapshot with the given ID.
func (s *Service) Get(ctx context.Context, id int) (Progress, error) {
	return s.Repo.Get(ctx, id)
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Reject display-name forms; the survey field is a bare address.
	return addr.Address == email
}
