// Package types provides type definitions for structured data used throughout the resumai system.
package types

import "fmt"

// CareerAdvice represents the structured advice record recovered from a model
// response. Field names follow the wire contract the model is instructed to emit.
type CareerAdvice struct {
	RecommendedPositions []string `json:"recommendedPositions"`
	RecommendedCompanies []string `json:"recommendedCompanies"`
	SalarySuggestion     string   `json:"salarySuggestion"`
	LocationSuggestion   []string `json:"locationSuggestion"`
	SkillsToImprove      []string `json:"skillsToImprove"`
	AdditionalAdvice     string   `json:"additionalAdvice"`
	ThoughtProcess       string   `json:"thoughtProcess,omitempty"`
}

// Normalize replaces nil list fields with empty slices. Callers always observe
// present (possibly empty) lists, whether the record came from a decode or a
// fallback.
func (a *CareerAdvice) Normalize() {
	if a.RecommendedPositions == nil {
		a.RecommendedPositions = []string{}
	}
	if a.RecommendedCompanies == nil {
		a.RecommendedCompanies = []string{}
	}
	if a.LocationSuggestion == nil {
		a.LocationSuggestion = []string{}
	}
	if a.SkillsToImprove == nil {
		a.SkillsToImprove = []string{}
	}
}

// Mode selects the model response contract: a bare structured payload, or a
// reasoning trace followed by the structured payload.
type Mode string

const (
	// ModeStandard expects a single JSON object in the response text.
	ModeStandard Mode = "standard"
	// ModeThinking expects an analysis section followed by a labeled JSON result.
	ModeThinking Mode = "thinking"
)

// ParseMode converts a wire string into a Mode. An empty string maps to
// ModeStandard.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", string(ModeStandard):
		return ModeStandard, nil
	case string(ModeThinking):
		return ModeThinking, nil
	default:
		return "", fmt.Errorf("unknown response mode %q", s)
	}
}

// Valid reports whether the mode is one of the known variants.
func (m Mode) Valid() bool {
	return m == ModeStandard || m == ModeThinking
}
