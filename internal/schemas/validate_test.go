package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validAdvice = `{
	"recommendedPositions": ["Frontend Engineer"],
	"recommendedCompanies": ["Tech startups"],
	"salarySuggestion": "100-140k",
	"locationSuggestion": ["Remote"],
	"skillsToImprove": ["TypeScript"],
	"additionalAdvice": "Contribute to open source."
}`

func TestValidateAdvice(t *testing.T) {
	tests := []struct {
		name     string
		jsonText string
		wantErr  bool
		field    string
	}{
		{
			name:     "valid payload",
			jsonText: validAdvice,
		},
		{
			name: "valid with thought process",
			jsonText: `{
				"recommendedPositions": [], "recommendedCompanies": [],
				"salarySuggestion": "", "locationSuggestion": [],
				"skillsToImprove": [], "additionalAdvice": "",
				"thoughtProcess": "reasoning"
			}`,
		},
		{
			name:     "missing required field",
			jsonText: `{"recommendedPositions": []}`,
			wantErr:  true,
			field:    "(root)",
		},
		{
			name: "list field is not an array",
			jsonText: `{
				"recommendedPositions": "Frontend Engineer",
				"recommendedCompanies": [], "salarySuggestion": "",
				"locationSuggestion": [], "skillsToImprove": [],
				"additionalAdvice": ""
			}`,
			wantErr: true,
			field:   "recommendedPositions",
		},
		{
			name: "list element is not a string",
			jsonText: `{
				"recommendedPositions": [1, 2],
				"recommendedCompanies": [], "salarySuggestion": "",
				"locationSuggestion": [], "skillsToImprove": [],
				"additionalAdvice": ""
			}`,
			wantErr: true,
		},
		{
			name: "scalar field is not a string",
			jsonText: `{
				"recommendedPositions": [], "recommendedCompanies": [],
				"salarySuggestion": 120000, "locationSuggestion": [],
				"skillsToImprove": [], "additionalAdvice": ""
			}`,
			wantErr: true,
			field:   "salarySuggestion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdvice(tt.jsonText)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			if tt.field != "" {
				found := false
				for _, fe := range ve.Errors {
					if fe.Field == tt.field {
						found = true
					}
				}
				assert.True(t, found, "expected an error on field %s, got %v", tt.field, ve.Errors)
			}
		})
	}
}

func TestValidateAdvice_NotJSON(t *testing.T) {
	err := ValidateAdvice(`{invalid json}`)
	require.Error(t, err)
	var ve *ValidationError
	assert.False(t, errors.As(err, &ve), "malformed JSON should not be a field-level validation error")
}
