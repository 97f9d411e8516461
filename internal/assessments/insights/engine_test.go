package insights

import (
	"reflect"
	"strings"
	"testing"
)

func TestScoreBaseline(t *testing.T) {
	if got := Score(Answers{}); got != 50 {
		t.Fatalf("empty answers score = %d, want baseline 50", got)
	}
	// Non-matching values leave the baseline untouched.
	a := Answers{
		DataTransferProcess: "manual-entry",
		RepetitiveTasks:     "rarely",
		ManualErrors:        "never",
		MultipleSystems:     "no",
		ManualTransfer:      "occasionally",
	}
	if got := Score(a); got != 50 {
		t.Fatalf("non-matching answers score = %d, want 50", got)
	}
}

func TestScoreAdjustments(t *testing.T) {
	cases := []struct {
		name    string
		answers Answers
		want    int
	}{
		{"fully_integrated", Answers{DataTransferProcess: "fully-integrated"}, 65},
		{"some_integrations", Answers{DataTransferProcess: "some-integrations"}, 60},
		{"api_zapier", Answers{DataTransferProcess: "api-zapier"}, 58},
		{"repetitive_frequently", Answers{RepetitiveTasks: "frequently"}, 40},
		{"manual_errors_regularly", Answers{ManualErrors: "regularly"}, 40},
		{"multiple_systems_yes", Answers{MultipleSystems: "yes"}, 45},
		{"multiple_systems_somewhat", Answers{MultipleSystems: "somewhat"}, 48},
		{"manual_transfer_frequently", Answers{ManualTransfer: "frequently"}, 40},
		{
			// Adjustments are additive: 50 + 15 - 10 = 55.
			"integrated_but_repetitive",
			Answers{DataTransferProcess: "fully-integrated", RepetitiveTasks: "frequently"},
			55,
		},
		{
			"all_penalties",
			Answers{
				RepetitiveTasks: "frequently",
				ManualErrors:    "regularly",
				MultipleSystems: "yes",
				ManualTransfer:  "frequently",
			},
			15,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.answers); got != tc.want {
				t.Fatalf("score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScoreStaysInRange(t *testing.T) {
	// No combination of rules can currently leave [0,100], but the clamp is
	// part of the contract; exercise the extremes anyway.
	worst := Answers{
		RepetitiveTasks: "frequently",
		ManualErrors:    "regularly",
		MultipleSystems: "yes",
		ManualTransfer:  "frequently",
	}
	best := Answers{DataTransferProcess: "fully-integrated"}
	for _, a := range []Answers{worst, best, {}} {
		got := Score(a)
		if got < 0 || got > 100 {
			t.Fatalf("score %d out of range for %+v", got, a)
		}
	}
}

func TestReadinessLevelBoundaries(t *testing.T) {
	cases := []struct {
		score int
		level string
	}{
		{0, "Early Stage"},
		{39, "Early Stage"},
		{40, "Emerging"},
		{55, "Emerging"},
		{59, "Emerging"},
		{60, "Advancing"},
		{79, "Advancing"},
		{80, "Optimized"},
		{89, "Optimized"},
		{90, "Transformational"},
		{100, "Transformational"},
	}
	for _, tc := range cases {
		got := ReadinessLevel(tc.score)
		if !strings.HasPrefix(got, tc.level+" (") {
			t.Fatalf("ReadinessLevel(%d) = %q, want %q tier", tc.score, got, tc.level)
		}
	}
}

func TestAnalyzeConcreteScenario(t *testing.T) {
	a := Answers{DataTransferProcess: "fully-integrated", RepetitiveTasks: "frequently"}
	result := Analyze(a)

	if result.AutomationScore != 55 {
		t.Fatalf("score = %d, want 55", result.AutomationScore)
	}
	if !strings.HasPrefix(result.ReadinessLevel, "Emerging (") {
		t.Fatalf("readiness = %q, want Emerging tier", result.ReadinessLevel)
	}
	if len(result.KeyChallenges) == 0 || len(result.Opportunities) == 0 || len(result.NextSteps) == 0 {
		t.Fatal("analysis lists must be non-empty")
	}
}

func TestAnalyzeDeterminism(t *testing.T) {
	a := Answers{
		DataTransferProcess: "some-integrations",
		DailyTasks:          "data-entry, administrative",
		SoftwareTools:       "crm, spreadsheets",
		ManualErrors:        "regularly",
	}
	first := Analyze(a)
	second := Analyze(a)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical analysis for identical answers")
	}
}
