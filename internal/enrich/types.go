package enrich

// IndustryInsights describes automation trends for one industry. Immutable
// once produced, whether by the client or the static fallback.
type IndustryInsights struct {
	IndustryName          string             `json:"industryName"`
	TrendingTools         []string           `json:"trendingTools"`
	Benchmarks            map[string]float64 `json:"benchmarks"`
	CaseStudies           []string           `json:"caseStudies"`
	AutomationLevel       int                `json:"automationLevel"`
	TopAutomatedProcesses []string           `json:"topAutomatedProcesses"`
	ROI                   ROI                `json:"roi"`
}

// ROI summarizes the typical return on automation investment.
type ROI struct {
	Timeframe     string `json:"timeframe"`
	AverageReturn string `json:"averageReturn"`
}

// RecommendedTool is a single tool recommendation.
type RecommendedTool struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	UseCases     []string `json:"useCases"`
	PricingModel string   `json:"pricingModel"`
}

// PartialIndustryInsights is the trimmed insight block returned alongside
// partial-data recommendations.
type PartialIndustryInsights struct {
	IndustryName           string             `json:"industryName"`
	Benchmarks             map[string]float64 `json:"benchmarks"`
	AverageAutomationLevel int                `json:"averageAutomationLevel"`
}
