package advice

import (
	"testing"

	"github.com/Nanford/resumai/internal/i18n"
	"github.com/Nanford/resumai/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestFormatMarkdown(t *testing.T) {
	record := types.CareerAdvice{
		RecommendedPositions: []string{"Frontend Engineer", "UI Engineer"},
		RecommendedCompanies: []string{"Tech startups"},
		SalarySuggestion:     "120-180k per year",
		LocationSuggestion:   []string{"Remote"},
		SkillsToImprove:      []string{"TypeScript", "Design systems"},
		AdditionalAdvice:     "Contribute to open source.",
		ThoughtProcess:       "should not appear in the reply body",
	}

	out := FormatMarkdown(record, i18n.MustLoad("en"))

	assert.Contains(t, out, "## Recommended Positions\nFrontend Engineer, UI Engineer")
	assert.Contains(t, out, "## Salary Suggestion\n120-180k per year")
	assert.Contains(t, out, "- TypeScript\n- Design systems")
	assert.Contains(t, out, "## Additional Advice\nContribute to open source.")
	assert.NotContains(t, out, "should not appear")
}

func TestFormatMarkdown_ChineseHeadings(t *testing.T) {
	record := GenerateMock("react", types.ModeStandard, "")
	out := FormatMarkdown(record, i18n.MustLoad("zh"))
	assert.Contains(t, out, "## 推荐职位")
	assert.Contains(t, out, "## 薪资建议")
}

func TestTranslatorFor(t *testing.T) {
	en := i18n.MustLoad("en")
	zh := i18n.MustLoad("zh")

	tests := []struct {
		name       string
		userText   string
		configured i18n.Translator
		wantLang   string
	}{
		{name: "default english", userText: "tell me about my career", configured: en, wantLang: "en"},
		{name: "explicit chinese marker", userText: "please answer in Chinese", configured: en, wantLang: "zh"},
		{name: "chinese characters marker", userText: "请用中文回答", configured: en, wantLang: "zh"},
		{name: "configured chinese wins", userText: "anything", configured: zh, wantLang: "zh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLang, TranslatorFor(tt.userText, tt.configured).Lang())
		})
	}
}
