package insights

import "strings"

// Challenges lists the key pain points signalled by the answer set. The
// returned list is never empty.
func Challenges(a Answers) []string {
	var challenges []string

	if a.MultipleSystems == "yes" {
		challenges = append(challenges, "Disconnected systems leading to data silos")
	}
	if a.ManualTransfer == "frequently" {
		challenges = append(challenges, "Heavy reliance on manual data transfer between systems")
	}
	if a.ManualErrors == "regularly" {
		challenges = append(challenges, "Frequent errors from manual data handling")
	}
	if a.RepetitiveTasks == "frequently" {
		challenges = append(challenges, "Significant time spent on repetitive tasks")
	}
	if a.EmployeeTasks == "constantly" {
		challenges = append(challenges, "Team members spending excessive time on tasks that could be automated")
	}

	if len(challenges) == 0 {
		challenges = append(challenges, "Identifying the right processes to automate")
	}
	return challenges
}

// Opportunities lists automation opportunities signalled by the answer set.
// The returned list is never empty.
func Opportunities(a Answers) []string {
	var opportunities []string

	if strings.Contains(a.DailyTasks, "data-entry") {
		opportunities = append(opportunities, "Automate data entry processes with AI-powered document processing")
	}
	if strings.Contains(a.DailyTasks, "administrative") {
		opportunities = append(opportunities, "Implement email and calendar automation to reduce administrative burden")
	}
	if strings.Contains(a.DailyTasks, "document-creation") {
		opportunities = append(opportunities, "Use document generation and management tools to streamline workflows")
	}
	if strings.Contains(a.SoftwareTools, "crm") {
		opportunities = append(opportunities, "Connect CRM with other business systems for seamless data flow")
	}
	if strings.Contains(a.CommunicationApps, "email") || strings.Contains(a.CommunicationApps, "messaging") {
		opportunities = append(opportunities, "Implement AI-powered communication assistants to handle routine inquiries")
	}

	if len(opportunities) == 0 {
		opportunities = append(opportunities, "Implement workflow automation to connect your existing tools")
	}
	return opportunities
}

// NextSteps returns recommended next steps for the answer set and its score.
// The score bands pick two baseline steps; specific pain points append more.
func NextSteps(a Answers, score int) []string {
	var steps []string

	switch {
	case score < 40:
		steps = append(steps,
			"Conduct a detailed process mapping exercise to identify automation candidates",
			"Start with simple automation tools that don't require extensive integration")
	case score < 70:
		steps = append(steps,
			"Implement integration platforms to connect your most-used applications",
			"Prioritize automating the most time-consuming repetitive tasks first")
	default:
		steps = append(steps,
			"Consider advanced AI solutions to further optimize your existing workflows",
			"Focus on end-to-end process automation rather than isolated tasks")
	}

	if a.ManualErrors == "regularly" {
		steps = append(steps, "Implement validation rules and error checking in your automated workflows")
	}

	return steps
}
