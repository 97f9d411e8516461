package assessments

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"assessment-backend/internal/assessments/insights"
	"assessment-backend/internal/enrich"
	"assessment-backend/internal/extract"
	"assessment-backend/internal/shared/metrics"
	"assessment-backend/internal/shared/storage/object"
	"assessment-backend/internal/shared/telemetry"
)

// MaxProfileSize caps company profile uploads at 10MB.
const MaxProfileSize = 10 << 20

// ErrInvalidProfile is returned for uploads that are not acceptable PDFs.
var ErrInvalidProfile = errors.New("company profile must be a PDF up to 10MB")

// UploadedProfile is an optional company profile attached to a submission.
type UploadedProfile struct {
	FileName string
	Data     []byte
}

// Service contains business logic for assessments.
type Service struct {
	Repo     Repo
	Store    object.ObjectStore
	Enricher *enrich.Enricher
}

// Submit persists a validated answer set and computes its analysis. The
// assessment is saved before analysis runs, so a failing analysis step never
// loses the submission.
func (s *Service) Submit(ctx context.Context, answers insights.Answers, profile *UploadedProfile) (Assessment, error) {
	a := Assessment{Answers: answers}

	var profileText string
	if profile != nil {
		key, text, err := s.storeProfile(ctx, profile)
		if err != nil {
			return Assessment{}, err
		}
		a.CompanyProfileURL = "/uploads/" + key
		a.CompanyProfileFilename = profile.FileName
		profileText = text
	}

	created, err := s.Repo.Create(ctx, a)
	if err != nil {
		return Assessment{}, fmt.Errorf("create assessment: %w", err)
	}
	metrics.IncSubmissions()

	analysis := s.buildAnalysis(ctx, created.Answers, profileText)
	attached, err := s.Repo.AttachAnalysis(ctx, created.ID, analysis)
	if err != nil {
		// The assessment itself is already persisted; report the attach
		// failure and let the analysis endpoint recompute lazily.
		telemetry.Error("assessment.attach_analysis", map[string]any{
			"assessment_id": created.ID,
			"error":         err.Error(),
		})
		created.Analysis = &analysis
		return created, nil
	}
	return attached, nil
}

// Analysis returns the analysis for an assessment, computing and caching it
// on first fetch. Repeat fetches return the stored result unchanged.
func (s *Service) Analysis(ctx context.Context, id int) (Analysis, error) {
	a, err := s.Repo.Get(ctx, id)
	if err != nil {
		return Analysis{}, err
	}
	if a.Analysis != nil {
		return *a.Analysis, nil
	}

	analysis := s.buildAnalysis(ctx, a.Answers, "")
	if _, err := s.Repo.AttachAnalysis(ctx, id, analysis); err != nil {
		return Analysis{}, fmt.Errorf("attach analysis: %w", err)
	}
	return analysis, nil
}

// Recommendations derives suggestions from a partially completed answer
// set, with a trimmed industry insight block when an industry is detected.
func (s *Service) Recommendations(ctx context.Context, answers insights.Answers) RecommendationSet {
	set := RecommendationSet{Suggestions: insights.Suggest(answers)}

	industry := enrich.DetectIndustry(answers)
	if answers.WebsiteURL != "" {
		if fromSite, ok := enrich.IndustryFromWebsite(answers.WebsiteURL); ok {
			industry = fromSite
		}
	}
	if industry == enrich.GeneralBusiness {
		return set
	}

	partial := s.Enricher.PartialInsights(ctx, answers, industry)
	set.IndustryInsights = &partial
	return set
}

func (s *Service) storeProfile(ctx context.Context, profile *UploadedProfile) (string, string, error) {
	if len(profile.Data) == 0 || len(profile.Data) > MaxProfileSize {
		return "", "", ErrInvalidProfile
	}

	text, err := extract.TextFromPDF(profile.Data)
	if err != nil {
		if errors.Is(err, extract.ErrNotPDF) {
			return "", "", ErrInvalidProfile
		}
		// Stored anyway; extraction is an enrichment hint, not a gate.
		telemetry.Error("profile.extract", map[string]any{"error": err.Error()})
	}

	key, _, _, err := s.Store.Save(ctx, profile.FileName, bytes.NewReader(profile.Data))
	if err != nil {
		return "", "", fmt.Errorf("store profile: %w", err)
	}
	return key, text, nil
}

func (s *Service) buildAnalysis(ctx context.Context, answers insights.Answers, profileText string) Analysis {
	start := time.Now()

	analysis := Analysis{Result: insights.Analyze(answers)}

	industry := enrich.DetectIndustry(answers)
	if answers.WebsiteURL != "" {
		if fromSite, ok := enrich.IndustryFromWebsite(answers.WebsiteURL); ok {
			industry = fromSite
		}
	} else if profileText != "" {
		if fromProfile, ok := enrich.IndustryFromProfile(profileText); ok {
			industry = fromProfile
		}
	}

	industryInsights, tools := s.Enricher.Enrich(ctx, answers, industry)
	analysis.IndustryInsights = &industryInsights
	analysis.RecommendedTools = tools

	metrics.IncAnalysesComputed()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return analysis
}
