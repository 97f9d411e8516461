package insights

// Answers is a validated, normalized survey answer set. Multi-select
// questions arrive joined into a single comma-separated string.
type Answers struct {
	RepetitiveTasks          string `json:"repetitiveTasks,omitempty"`
	EmployeeTasks            string `json:"employeeTasks,omitempty"`
	ManualErrors             string `json:"manualErrors,omitempty"`
	MultipleSystems          string `json:"multipleSystems,omitempty"`
	ManualTransfer           string `json:"manualTransfer,omitempty"`
	RealTimeUpdates          string `json:"realTimeUpdates,omitempty"`
	BusinessGrowth           string `json:"businessGrowth,omitempty"`
	ScaleOperations          string `json:"scaleOperations,omitempty"`
	StrategicActivities      string `json:"strategicActivities,omitempty"`
	DocumentedProcesses      string `json:"documentedProcesses,omitempty"`
	TechnologyInfrastructure string `json:"technologyInfrastructure,omitempty"`
	TrainingReadiness        string `json:"trainingReadiness,omitempty"`
	TimeSavings              string `json:"timeSavings,omitempty"`
	AIAnalytics              string `json:"aiAnalytics,omitempty"`
	InvestmentReadiness      string `json:"investmentReadiness,omitempty"`
	DailyTasks               string `json:"dailyTasks,omitempty"`
	SoftwareTools            string `json:"softwareTools,omitempty"`
	CommunicationApps        string `json:"communicationApps,omitempty"`
	DataTransferProcess      string `json:"dataTransferProcess,omitempty"`
	WebsiteURL               string `json:"websiteUrl,omitempty"`

	// Extra carries unrecognized fields untouched (open schema).
	Extra map[string]string `json:"extra,omitempty"`
}

// Result is the deterministic part of an assessment analysis.
type Result struct {
	AutomationScore int      `json:"automationScore"`
	ReadinessLevel  string   `json:"readinessLevel"`
	KeyChallenges   []string `json:"keyChallenges"`
	Opportunities   []string `json:"opportunities"`
	NextSteps       []string `json:"nextSteps"`
}

// Suggestions is the recommendation set derived from a partial answer set.
type Suggestions struct {
	SuggestedTools     []string `json:"suggestedTools"`
	PotentialWorkflows []string `json:"potentialWorkflows"`
	TailoredQuestions  []string `json:"tailoredQuestions"`
}
