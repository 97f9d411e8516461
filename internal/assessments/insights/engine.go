package insights

import "fmt"

const baselineScore = 50

type readinessLevel struct {
	threshold   int
	level       string
	description string
}

// Ordered ascending; classification scans from the highest threshold down so
// a score equal to a boundary maps to that tier, not the one below.
var readinessLevels = []readinessLevel{
	{0, "Early Stage", "Basic preparation for automation adoption"},
	{40, "Emerging", "Some systems in place for basic automation"},
	{60, "Advancing", "Good foundation with room for growth"},
	{80, "Optimized", "Well-prepared for advanced automation solutions"},
	{90, "Transformational", "Ready for cutting-edge AI automation"},
}

// Analyze computes the deterministic analysis for a validated answer set.
func Analyze(a Answers) Result {
	score := Score(a)
	return Result{
		AutomationScore: score,
		ReadinessLevel:  ReadinessLevel(score),
		KeyChallenges:   Challenges(a),
		Opportunities:   Opportunities(a),
		NextSteps:       NextSteps(a, score),
	}
}

// Score maps an answer set to a 0-100 automation readiness score. Adjustments
// are independent and additive; an answer set that matches none of them
// yields exactly the baseline of 50.
func Score(a Answers) int {
	score := baselineScore

	switch a.DataTransferProcess {
	case "fully-integrated":
		score += 15
	case "some-integrations":
		score += 10
	case "api-zapier":
		score += 8
	}

	if a.RepetitiveTasks == "frequently" {
		score -= 10
	}
	if a.ManualErrors == "regularly" {
		score -= 10
	}

	switch a.MultipleSystems {
	case "yes":
		score -= 5
	case "somewhat":
		score -= 2
	}

	if a.ManualTransfer == "frequently" {
		score -= 10
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ReadinessLevel renders the tier label for a score as "Level (Description)".
func ReadinessLevel(score int) string {
	for i := len(readinessLevels) - 1; i >= 0; i-- {
		if score >= readinessLevels[i].threshold {
			return fmt.Sprintf("%s (%s)", readinessLevels[i].level, readinessLevels[i].description)
		}
	}
	return readinessLevels[0].level
}
