package schema

import "time"

// Document represents a dated unit of text with optional metadata and score.
// It mirrors the minimal shape used across this repository.
type Document struct {
	ID       string                 `json:"id"`
	Text     string                 `json:"text"`
	Date     time.Time              `json:"date"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Score is optional and populated by scorers.
	Score float64 `json:"score,omitempty"`
}
