package enrich

import "strings"

// Static per-industry fallback data, used whenever the external generator is
// unavailable or returns something unusable.
var mockInsights = map[string]IndustryInsights{
	"healthcare": {
		IndustryName:  "Healthcare",
		TrendingTools: []string{"Patient Intake Automation", "Claims Processing System", "Clinical Documentation Assistant"},
		Benchmarks: map[string]float64{
			"implementationTime":    9,
			"bottlenecks":           62,
			"successRatePercentage": 71,
		},
		CaseStudies: []string{
			"A regional clinic network cut patient intake time by 40% after automating registration and insurance verification.",
		},
		AutomationLevel:       52,
		TopAutomatedProcesses: []string{"Appointment Scheduling", "Claims Processing", "Patient Communications"},
		ROI:                   ROI{Timeframe: "9-14 months", AverageReturn: "120-180%"},
	},
	"finance": {
		IndustryName:  "Finance",
		TrendingTools: []string{"Reconciliation Automation", "KYC Verification Platform", "Report Generation Suite"},
		Benchmarks: map[string]float64{
			"implementationTime":    7,
			"bottlenecks":           58,
			"successRatePercentage": 78,
		},
		CaseStudies: []string{
			"A mid-size lender reduced loan processing time by 55% with automated document collection and verification.",
		},
		AutomationLevel:       67,
		TopAutomatedProcesses: []string{"Reconciliation", "Compliance Reporting", "Client Onboarding"},
		ROI:                   ROI{Timeframe: "5-9 months", AverageReturn: "170-230%"},
	},
	"retail": {
		IndustryName:  "Retail",
		TrendingTools: []string{"Inventory Sync Platform", "Order Fulfillment Automation", "Customer Service Chatbot"},
		Benchmarks: map[string]float64{
			"implementationTime":    5,
			"bottlenecks":           48,
			"successRatePercentage": 80,
		},
		CaseStudies: []string{
			"An omnichannel retailer eliminated overselling by syncing inventory across storefronts in real time.",
		},
		AutomationLevel:       61,
		TopAutomatedProcesses: []string{"Inventory Management", "Order Processing", "Customer Notifications"},
		ROI:                   ROI{Timeframe: "4-8 months", AverageReturn: "140-200%"},
	},
	"manufacturing": {
		IndustryName:  "Manufacturing",
		TrendingTools: []string{"Production Scheduling System", "Quality Inspection Automation", "Supply Chain Integration Hub"},
		Benchmarks: map[string]float64{
			"implementationTime":    10,
			"bottlenecks":           65,
			"successRatePercentage": 73,
		},
		CaseStudies: []string{
			"A parts manufacturer cut unplanned downtime by 30% after automating maintenance scheduling and alerts.",
		},
		AutomationLevel:       70,
		TopAutomatedProcesses: []string{"Production Scheduling", "Quality Control", "Procurement"},
		ROI:                   ROI{Timeframe: "8-14 months", AverageReturn: "130-190%"},
	},
	"education": {
		IndustryName:  "Education",
		TrendingTools: []string{"Enrollment Workflow Automation", "Grading Assistant", "Student Communication Platform"},
		Benchmarks: map[string]float64{
			"implementationTime":    6,
			"bottlenecks":           52,
			"successRatePercentage": 76,
		},
		CaseStudies: []string{
			"A private college halved enrollment processing time with automated application routing and status updates.",
		},
		AutomationLevel:       46,
		TopAutomatedProcesses: []string{"Enrollment", "Scheduling", "Student Communications"},
		ROI:                   ROI{Timeframe: "6-12 months", AverageReturn: "110-160%"},
	},
	"technology": {
		IndustryName:  "Technology",
		TrendingTools: []string{"CI/CD Pipeline Orchestrator", "Ticket Triage Automation", "Revenue Operations Platform"},
		Benchmarks: map[string]float64{
			"implementationTime":    4,
			"bottlenecks":           42,
			"successRatePercentage": 84,
		},
		CaseStudies: []string{
			"A SaaS vendor automated support triage and cut first-response time from hours to minutes.",
		},
		AutomationLevel:       78,
		TopAutomatedProcesses: []string{"Deployment", "Support Triage", "Billing"},
		ROI:                   ROI{Timeframe: "3-6 months", AverageReturn: "180-250%"},
	},
}

// FallbackInsights returns the static insight block for an industry,
// synthesizing a generic one for unknown industries.
func FallbackInsights(industry string) IndustryInsights {
	if insights, ok := mockInsights[strings.ToLower(strings.TrimSpace(industry))]; ok {
		return insights
	}
	return IndustryInsights{
		IndustryName:  capitalizeFirst(industry),
		TrendingTools: []string{"Workflow Automation Platform", "Document Processing System", "Integration Tool"},
		Benchmarks: map[string]float64{
			"implementationTime":    6,
			"bottlenecks":           55,
			"successRatePercentage": 75,
		},
		CaseStudies: []string{
			"A company in the " + capitalizeFirst(industry) + " industry improved efficiency by 35% after implementing workflow automation.",
		},
		AutomationLevel:       58,
		TopAutomatedProcesses: []string{"Document Processing", "Data Entry", "Communication Workflows"},
		ROI:                   ROI{Timeframe: "6-10 months", AverageReturn: "150-200%"},
	}
}

// FallbackTools returns the static tool recommendations.
func FallbackTools() []RecommendedTool {
	return []RecommendedTool{
		{
			Name:         "WorkflowPro",
			Description:  "Comprehensive workflow automation platform with low-code capabilities",
			UseCases:     []string{"Document processing", "Approval workflows", "Data integration"},
			PricingModel: "Subscription-based, starting at $49/month per user",
		},
		{
			Name:         "AutoTask",
			Description:  "Task automation tool with AI-powered suggestions",
			UseCases:     []string{"Task routing", "Email automation", "Meeting scheduling"},
			PricingModel: "Freemium, with paid plans starting at $25/month",
		},
		{
			Name:         "DataConnect",
			Description:  "Integration platform for connecting software systems",
			UseCases:     []string{"CRM integration", "Automated reporting", "Cross-platform data sync"},
			PricingModel: "Usage-based pricing, starting at $99/month",
		},
	}
}

func capitalizeFirst(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
