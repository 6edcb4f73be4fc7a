package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"", ModeStandard, false},
		{"standard", ModeStandard, false},
		{"thinking", ModeThinking, false},
		{"deep", "", true},
		{"Standard", "", true},
	}
	for _, tc := range tests {
		t.Run("input="+tc.input, func(t *testing.T) {
			got, err := ParseMode(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	var record CareerAdvice
	record.Normalize()

	assert.NotNil(t, record.RecommendedPositions)
	assert.NotNil(t, record.RecommendedCompanies)
	assert.NotNil(t, record.LocationSuggestion)
	assert.NotNil(t, record.SkillsToImprove)

	// Populated fields are left alone.
	record = CareerAdvice{SkillsToImprove: []string{"Go"}}
	record.Normalize()
	assert.Equal(t, []string{"Go"}, record.SkillsToImprove)
}

func TestRequestValidation(t *testing.T) {
	assert.Error(t, (&AdviceRequest{}).Validate())
	assert.NoError(t, (&AdviceRequest{Text: "hi"}).Validate())
	assert.Error(t, (&AdviceRequest{Text: "hi", Mode: "fancy"}).Validate())

	assert.Error(t, (&ChatRequest{Text: "hi"}).Validate())
	assert.NoError(t, (&ChatRequest{ConversationID: DraftConversationID, Text: "hi"}).Validate())

	assert.Error(t, (&SaveConversationRequest{}).Validate())
	assert.Error(t, (&AppendMessageRequest{Role: "system", Content: "x"}).Validate())
	assert.NoError(t, (&AppendMessageRequest{Role: "assistant", Content: "x"}).Validate())
}
