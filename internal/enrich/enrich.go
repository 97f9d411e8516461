package enrich

import (
	"context"
	"strings"
	"time"

	"assessment-backend/internal/assessments/insights"
	"assessment-backend/internal/shared/metrics"
	"assessment-backend/internal/shared/telemetry"
)

// Client generates industry insights and tool recommendations from an
// external text-generation service. Implementations may fail; callers go
// through Enricher, which never does.
type Client interface {
	IndustryInsights(ctx context.Context, industry, summary string) (IndustryInsights, error)
	RecommendedTools(ctx context.Context, industry, summary string) ([]RecommendedTool, error)
}

// Enricher wraps a Client with the always-degrade policy: every call
// returns a schema-valid result, substituting static fallback data on any
// client error. A nil Client falls back immediately.
type Enricher struct {
	Client  Client
	Timeout time.Duration
}

const defaultTimeout = 20 * time.Second

// Enrich obtains insights and tool recommendations for the given industry.
func (e *Enricher) Enrich(ctx context.Context, a insights.Answers, industry string) (IndustryInsights, []RecommendedTool) {
	if e == nil || e.Client == nil {
		return FallbackInsights(industry), FallbackTools()
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	summary := Summary(a)

	industryInsights, err := e.Client.IndustryInsights(ctx, industry, summary)
	if err != nil {
		e.logFallback("industry_insights", industry, err)
		industryInsights = FallbackInsights(industry)
	}

	tools, err := e.Client.RecommendedTools(ctx, industry, summary)
	if err != nil || len(tools) == 0 {
		if err != nil {
			e.logFallback("recommended_tools", industry, err)
		}
		tools = FallbackTools()
	}

	return industryInsights, tools
}

// PartialInsights fetches the trimmed insight block used by the
// partial-data recommendations endpoint, with the same fallback policy.
func (e *Enricher) PartialInsights(ctx context.Context, a insights.Answers, industry string) PartialIndustryInsights {
	full, _ := e.Enrich(ctx, a, industry)
	return PartialIndustryInsights{
		IndustryName:           full.IndustryName,
		Benchmarks:             full.Benchmarks,
		AverageAutomationLevel: full.AutomationLevel,
	}
}

func (e *Enricher) logFallback(step, industry string, err error) {
	metrics.IncEnrichmentFallback()
	telemetry.Error("enrich.fallback", map[string]any{
		"step":     step,
		"industry": industry,
		"error":    err.Error(),
	})
}

// Summary condenses an answer set into prompt-friendly lines.
func Summary(a insights.Answers) string {
	var lines []string
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, label+": "+value)
		}
	}

	add("Website", a.WebsiteURL)
	add("Time-consuming tasks", a.DailyTasks)
	add("Software used", a.SoftwareTools)
	add("Communication tools", a.CommunicationApps)
	add("Data transfer process", a.DataTransferProcess)
	add("Repetitive tasks frequency", a.RepetitiveTasks)
	add("Manual errors frequency", a.ManualErrors)
	add("Multiple disconnected systems", a.MultipleSystems)
	add("Manual data transfer frequency", a.ManualTransfer)
	add("Business growth rate", a.BusinessGrowth)
	add("Process documentation level", a.DocumentedProcesses)
	add("Technology infrastructure", a.TechnologyInfrastructure)

	return strings.Join(lines, "\n")
}
