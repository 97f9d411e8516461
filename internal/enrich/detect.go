package enrich

import (
	"net/url"
	"strings"

	"assessment-backend/internal/assessments/insights"
)

// GeneralBusiness is the industry used when no specific signal is found.
const GeneralBusiness = "general business"

type industrySignal struct {
	toolsWord string
	tasksWord string
	industry  string
}

// Checked in order; first match wins.
var industrySignals = []industrySignal{
	{"healthcare", "patient", "healthcare"},
	{"finance", "banking", "finance"},
	{"retail", "inventory", "retail"},
	{"manufacturing", "production", "manufacturing"},
}

// DetectIndustry guesses the respondent's industry from the software-tools
// and daily-tasks answers. Falls back to GeneralBusiness.
func DetectIndustry(a insights.Answers) string {
	for _, sig := range industrySignals {
		if strings.Contains(a.SoftwareTools, sig.toolsWord) || strings.Contains(a.DailyTasks, sig.tasksWord) {
			return sig.industry
		}
	}
	return GeneralBusiness
}

type domainSignal struct {
	keywords []string
	industry string
}

var domainSignals = []domainSignal{
	{[]string{"hospital", "clinic", "health", "med"}, "Healthcare"},
	{[]string{"bank", "finance", "invest", "capital"}, "Finance"},
	{[]string{"shop", "store", "retail", "mart"}, "Retail"},
	{[]string{"factory", "manufacturing", "industrial"}, "Manufacturing"},
	{[]string{"edu", "school", "university", "college"}, "Education"},
	{[]string{"tech", "software", "app", "digital"}, "Technology"},
	{[]string{"law", "legal", "attorney"}, "Legal"},
}

// IndustryFromWebsite guesses an industry from substrings of the website's
// domain name. No content is fetched.
func IndustryFromWebsite(rawURL string) (string, bool) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", false
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return "", false
	}
	for _, sig := range domainSignals {
		for _, kw := range sig.keywords {
			if strings.Contains(host, kw) {
				return sig.industry, true
			}
		}
	}
	return "", false
}

var profileSignals = []domainSignal{
	{[]string{"patient", "clinic", "hospital"}, "Healthcare"},
	{[]string{"banking", "investment", "lending"}, "Finance"},
	{[]string{"inventory", "storefront", "merchandising"}, "Retail"},
	{[]string{"manufacturing", "production line", "assembly"}, "Manufacturing"},
	{[]string{"students", "curriculum", "campus"}, "Education"},
	{[]string{"software", "saas", "platform engineering"}, "Technology"},
	{[]string{"attorney", "litigation", "legal services"}, "Legal"},
}

// IndustryFromProfile scans free text extracted from an uploaded company
// profile for distinctive industry words.
func IndustryFromProfile(text string) (string, bool) {
	lowered := strings.ToLower(text)
	if strings.TrimSpace(lowered) == "" {
		return "", false
	}
	for _, sig := range profileSignals {
		for _, kw := range sig.keywords {
			if strings.Contains(lowered, kw) {
				return sig.industry, true
			}
		}
	}
	return "", false
}
