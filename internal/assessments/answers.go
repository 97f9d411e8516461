package assessments

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"assessment-backend/internal/assessments/insights"
)

// FieldError describes one malformed answer field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const multiValueDelimiter = ", "

var answerSetters = map[string]func(*insights.Answers, string){
	"repetitiveTasks":          func(a *insights.Answers, v string) { a.RepetitiveTasks = v },
	"employeeTasks":            func(a *insights.Answers, v string) { a.EmployeeTasks = v },
	"manualErrors":             func(a *insights.Answers, v string) { a.ManualErrors = v },
	"multipleSystems":          func(a *insights.Answers, v string) { a.MultipleSystems = v },
	"manualTransfer":           func(a *insights.Answers, v string) { a.ManualTransfer = v },
	"realTimeUpdates":          func(a *insights.Answers, v string) { a.RealTimeUpdates = v },
	"businessGrowth":           func(a *insights.Answers, v string) { a.BusinessGrowth = v },
	"scaleOperations":          func(a *insights.Answers, v string) { a.ScaleOperations = v },
	"strategicActivities":      func(a *insights.Answers, v string) { a.StrategicActivities = v },
	"documentedProcesses":      func(a *insights.Answers, v string) { a.DocumentedProcesses = v },
	"technologyInfrastructure": func(a *insights.Answers, v string) { a.TechnologyInfrastructure = v },
	"trainingReadiness":        func(a *insights.Answers, v string) { a.TrainingReadiness = v },
	"timeSavings":              func(a *insights.Answers, v string) { a.TimeSavings = v },
	"aiAnalytics":              func(a *insights.Answers, v string) { a.AIAnalytics = v },
	"investmentReadiness":      func(a *insights.Answers, v string) { a.InvestmentReadiness = v },
	"dailyTasks":               func(a *insights.Answers, v string) { a.DailyTasks = v },
	"softwareTools":            func(a *insights.Answers, v string) { a.SoftwareTools = v },
	"communicationApps":        func(a *insights.Answers, v string) { a.CommunicationApps = v },
	"dataTransferProcess":      func(a *insights.Answers, v string) { a.DataTransferProcess = v },
	"websiteUrl":               func(a *insights.Answers, v string) { a.WebsiteURL = v },
}

// ParseAnswers normalizes a raw submitted form into an answer set. Every
// field accepts a string or a list of strings; lists are joined with a
// comma delimiter before storage. Unrecognized fields are passed through
// into Extra (open schema). All offending fields are reported together;
// the returned answers hold the valid fields regardless, so tolerant
// callers may keep them.
func ParseAnswers(raw map[string]any) (insights.Answers, []FieldError) {
	var answers insights.Answers
	var fieldErrors []FieldError

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	// Deterministic error ordering for stable responses.
	sort.Strings(keys)

	for _, key := range keys {
		value, ok := normalizeValue(raw[key])
		if !ok {
			fieldErrors = append(fieldErrors, FieldError{
				Field:   key,
				Message: "must be a string or a list of strings",
			})
			continue
		}
		if setter, recognized := answerSetters[key]; recognized {
			setter(&answers, value)
			continue
		}
		if answers.Extra == nil {
			answers.Extra = make(map[string]string)
		}
		answers.Extra[key] = value
	}

	if answers.WebsiteURL != "" {
		if err := validateWebsiteURL(answers.WebsiteURL); err != nil {
			fieldErrors = append(fieldErrors, FieldError{Field: "websiteUrl", Message: err.Error()})
		}
	}

	return answers, fieldErrors
}

func normalizeValue(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case []string:
		return strings.Join(val, multiValueDelimiter), true
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return "", false
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, multiValueDelimiter), true
	default:
		return "", false
	}
}

func validateWebsiteURL(raw string) error {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("must be a valid URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("must be an http or https URL")
	}
	if parsed.Hostname() == "" {
		return fmt.Errorf("must include a host")
	}
	return nil
}
