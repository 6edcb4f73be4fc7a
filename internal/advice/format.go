package advice

import (
	"fmt"
	"strings"

	"github.com/Nanford/resumai/internal/i18n"
	"github.com/Nanford/resumai/internal/types"
)

// chineseMarkers force a Chinese reply regardless of the configured language.
var chineseMarkers = []string{"中文", "用中文", "使用中文", "Chinese", "in Chinese"}

// TranslatorFor picks the catalog for a reply: an explicit request for Chinese
// in the user's text wins, otherwise the configured translator is used.
func TranslatorFor(userText string, configured i18n.Translator) i18n.Translator {
	if configured.Lang() == "zh" {
		return configured
	}
	for _, marker := range chineseMarkers {
		if strings.Contains(userText, marker) {
			return i18n.MustLoad("zh")
		}
	}
	return configured
}

// FormatMarkdown renders a CareerAdvice record as the sectioned markdown reply
// shown in the chat, with localized headings. The thought process is not part
// of the reply body; it travels on the message separately.
func FormatMarkdown(record types.CareerAdvice, tr i18n.Translator) string {
	var sb strings.Builder

	section := func(key, body string) {
		sb.WriteString(fmt.Sprintf("## %s\n%s\n\n", tr.T(key), body))
	}

	section("career.positions", strings.Join(record.RecommendedPositions, ", "))
	section("career.companies", strings.Join(record.RecommendedCompanies, ", "))
	section("career.salary", record.SalarySuggestion)
	section("career.locations", strings.Join(record.LocationSuggestion, ", "))

	skills := ""
	if len(record.SkillsToImprove) > 0 {
		skills = "- " + strings.Join(record.SkillsToImprove, "\n- ")
	}
	section("career.skills", skills)
	section("career.advice", record.AdditionalAdvice)

	return strings.TrimSpace(sb.String())
}
