package assessments

import (
	"time"

	"assessment-backend/internal/assessments/insights"
	"assessment-backend/internal/enrich"
)

// Assessment is one completed survey submission. IDs are assigned by the
// repo from a monotonic counter starting at 1 and never reused; CreatedAt is
// immutable; Analysis is either nil or fully populated.
type Assessment struct {
	ID                     int              `json:"id"`
	Answers                insights.Answers `json:"answers"`
	CompanyProfileURL      string           `json:"companyProfileUrl,omitempty"`
	CompanyProfileFilename string           `json:"companyProfileFilename,omitempty"`
	Analysis               *Analysis        `json:"analysis,omitempty"`
	CreatedAt              time.Time        `json:"createdAt"`
}

// Analysis is the derived result attached to an assessment: the
// deterministic insight engine output plus best-effort enrichment data.
type Analysis struct {
	insights.Result
	IndustryInsights *enrich.IndustryInsights `json:"industryInsights,omitempty"`
	RecommendedTools []enrich.RecommendedTool `json:"recommendedTools,omitempty"`
}

// RecommendationSet is returned for partially completed answer sets.
type RecommendationSet struct {
	insights.Suggestions
	IndustryInsights *enrich.PartialIndustryInsights `json:"industryInsights,omitempty"`
}
