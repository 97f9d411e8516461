package progress

import (
	"context"
	"errors"
	"testing"
)

func TestSaveValidEmail(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	p, err := svc.Save(ctx, "user@example.com", map[string]any{"dailyTasks": "invoicing"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("id = %d, want 1", p.ID)
	}
	if p.Email != "user@example.com" {
		t.Fatalf("email = %q", p.Email)
	}

	got, err := svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SurveyData["dailyTasks"] != "invoicing" {
		t.Fatalf("survey data not persisted: %+v", got.SurveyData)
	}
}

func TestSaveRejectsInvalidEmail(t *testing.T) {
	cases := []string{
		"",
		"not-an-email",
		"missing@domain@example.com",
		"Display Name <user@example.com>",
	}

	svc := &Service{Repo: NewMemoryRepo()}
	for _, email := range cases {
		if _, err := svc.Save(context.Background(), email, nil); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("email %q: expected ErrInvalidEmail, got %v", email, err)
		}
	}

	// Rejected saves never touch the repo, so the next valid save gets ID 1.
	p, err := svc.Save(context.Background(), "user@example.com", nil)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("id = %d, want 1", p.ID)
	}
}

func TestSaveTrimsEmailWhitespace(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	p, err := svc.Save(context.Background(), "  user@example.com  ", nil)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if p.Email != "user@example.com" {
		t.Fatalf("email = %q", p.Email)
	}
}

func TestSaveNilSurveyData(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	p, err := svc.Save(context.Background(), "user@example.com", nil)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if p.SurveyData == nil {
		t.Fatal("expected empty map, got nil survey data")
	}
}

func TestGetUnknownID(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	if _, err := svc.Get(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
