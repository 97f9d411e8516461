package insights

import "strings"

// Suggest derives tool, workflow and follow-up-question suggestions from a
// partially completed answer set. Every list carries at least one entry.
func Suggest(a Answers) Suggestions {
	return Suggestions{
		SuggestedTools:     SuggestTools(a),
		PotentialWorkflows: PotentialWorkflows(a),
		TailoredQuestions:  TailoredQuestions(a),
	}
}

// SuggestTools proposes tools relevant to the answers given so far.
func SuggestTools(a Answers) []string {
	var tools []string

	if a.DataTransferProcess == "manual-entry" || a.DataTransferProcess == "import-export" {
		tools = append(tools, "Zapier or Make (formerly Integromat) for no-code integrations")
	}
	if strings.Contains(a.DailyTasks, "document-creation") {
		tools = append(tools, "Document automation platforms like DocuSign or PandaDoc")
	}
	if strings.Contains(a.DailyTasks, "data-entry") {
		tools = append(tools, "Data extraction tools like Docparser or Rossum")
	}
	if strings.Contains(a.DailyTasks, "administrative") {
		tools = append(tools, "Email automation platforms like Mailchimp or HubSpot")
	}

	if len(tools) == 0 {
		tools = append(tools, "Microsoft Power Automate or n8n for general workflow automation")
	}
	return tools
}

// PotentialWorkflows proposes concrete workflows that could be automated.
func PotentialWorkflows(a Answers) []string {
	var workflows []string

	if strings.Contains(a.DailyTasks, "data-entry") {
		workflows = append(workflows, "Automated data extraction from documents to your database or CRM")
	}
	if strings.Contains(a.DailyTasks, "administrative") {
		workflows = append(workflows, "Email categorization and routing based on content and priority")
	}
	if strings.Contains(a.SoftwareTools, "crm") && strings.Contains(a.DailyTasks, "customer-service") {
		workflows = append(workflows, "Customer support ticket generation and routing from incoming emails")
	}
	if strings.Contains(a.CommunicationApps, "email") && a.RepetitiveTasks == "frequently" {
		workflows = append(workflows, "Automated follow-up emails based on customer actions")
	}

	if len(workflows) == 0 {
		workflows = append(workflows, "Data synchronization between your most used applications")
	}
	return workflows
}

// TailoredQuestions proposes follow-up questions given the answers so far.
func TailoredQuestions(a Answers) []string {
	var questions []string

	if strings.Contains(a.DailyTasks, "data-entry") {
		questions = append(questions, "What specific types of data are you frequently entering manually?")
	}
	if a.MultipleSystems == "yes" {
		questions = append(questions, "Which systems do you most need to connect for better data flow?")
	}
	if a.RepetitiveTasks == "frequently" {
		questions = append(questions, "How much time does your team spend weekly on these repetitive tasks?")
	}
	if a.ManualErrors == "regularly" {
		questions = append(questions, "What are the consequences of these errors for your business?")
	}

	if len(questions) == 0 {
		questions = append(questions, "What's the most time-consuming part of your current workflow?")
	}
	return questions
}
