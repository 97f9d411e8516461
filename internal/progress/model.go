package progress

import "time"

// Progress is a partially completed survey snapshot saved under an email.
// Every save creates a new record; there is no deduplication by email.
type Progress struct {
	ID         int            `json:"id"`
	Email      string         `json:"email"`
	SurveyData map[string]any `json:"surveyData"`
	CreatedAt  time.Time      `json:"createdAt"`
}
