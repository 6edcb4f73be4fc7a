package advice

import (
	"fmt"
	"strings"

	"github.com/Nanford/resumai/internal/types"
)

// Category is the coarse background classification the mock generator uses
// when the real model is unreachable or unparsable.
type Category string

// Mock advice categories, in detection priority order.
const (
	CategoryTechnical  Category = "technical"
	CategoryDesign     Category = "design"
	CategoryManagerial Category = "managerial"
	CategoryGeneralist Category = "generalist"
)

var (
	technicalKeywords  = []string{"javascript", "react", "developer", "programming", "开发", "程序"}
	designKeywords     = []string{"design", "ui", "ux", "设计"}
	managerialKeywords = []string{"management", "manager", "leader", "管理", "项目经理"}
)

// Classify maps free-form user text to a Category by case-insensitive keyword
// membership. Technical keywords win over design, design over managerial;
// unmatched text is generalist.
func Classify(userText string) Category {
	lower := strings.ToLower(userText)

	contains := func(keywords []string) bool {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}

	switch {
	case contains(technicalKeywords):
		return CategoryTechnical
	case contains(designKeywords):
		return CategoryDesign
	case contains(managerialKeywords):
		return CategoryManagerial
	default:
		return CategoryGeneralist
	}
}

// GenerateMock produces deterministic canned advice for the user's text. It is
// a pure function of its inputs: no network, no randomness. In thinking mode a
// supplied thoughtProcess (partial recovery from a failed interpret) is used
// verbatim; otherwise a templated explanation naming the detected category is
// synthesized.
func GenerateMock(userText string, mode types.Mode, thoughtProcess string) types.CareerAdvice {
	category := Classify(userText)
	record := cannedAdvice(category)

	if mode == types.ModeThinking {
		if thoughtProcess != "" {
			record.ThoughtProcess = thoughtProcess
		} else {
			record.ThoughtProcess = mockThoughtProcess(category)
		}
	}

	record.Normalize()
	return record
}

// cannedAdvice builds a fresh record per call so callers can never alias the
// canned slices.
func cannedAdvice(category Category) types.CareerAdvice {
	switch category {
	case CategoryTechnical:
		return types.CareerAdvice{
			RecommendedPositions: []string{"Frontend Engineer", "Full-Stack Engineer", "UI Engineer"},
			RecommendedCompanies: []string{"Tech startups", "Major internet companies", "Fintech companies"},
			SalarySuggestion:     "120-180k per year, depending on experience and skill level",
			LocationSuggestion:   []string{"Beijing", "Shanghai", "Shenzhen", "Hangzhou", "Remote"},
			SkillsToImprove:      []string{"Advanced React patterns", "TypeScript", "Design systems", "Micro-frontend architecture"},
			AdditionalAdvice:     "Contribute to open source projects and keep a technical blog to build a personal brand. Attend industry conferences and community events to grow your network.",
		}
	case CategoryDesign:
		return types.CareerAdvice{
			RecommendedPositions: []string{"UI Designer", "UX Designer", "Product Designer"},
			RecommendedCompanies: []string{"Design studios", "Internet companies", "Creative agencies"},
			SalarySuggestion:     "90-160k per year, depending on portfolio quality and experience",
			LocationSuggestion:   []string{"Shanghai", "Beijing", "Shenzhen", "Hangzhou"},
			SkillsToImprove:      []string{"Figma", "Adobe XD", "User research methods", "Interaction design principles"},
			AdditionalAdvice:     "Build a polished portfolio, enter design competitions, follow current design trends, and take an active part in design community discussions.",
		}
	case CategoryManagerial:
		return types.CareerAdvice{
			RecommendedPositions: []string{"Project Manager", "Product Manager", "Engineering Lead"},
			RecommendedCompanies: []string{"Large enterprises", "Tech companies", "Consulting firms"},
			SalarySuggestion:     "160-260k per year, depending on management experience and industry background",
			LocationSuggestion:   []string{"Beijing", "Shanghai", "Guangzhou", "Shenzhen"},
			SkillsToImprove:      []string{"Agile project management", "Team leadership", "Business strategy", "Data analysis"},
			AdditionalAdvice:     "Pursue a management certification such as PMP, strengthen cross-team communication, build an industry network, and invest in leadership training.",
		}
	default:
		return types.CareerAdvice{
			RecommendedPositions: []string{"Content Operations", "Marketing Specialist", "Customer Success Specialist"},
			RecommendedCompanies: []string{"Internet companies", "Startups", "New-media teams at traditional firms"},
			SalarySuggestion:     "60-110k per year, depending on experience and professional background",
			LocationSuggestion:   []string{"Major cities nationwide", "Remote"},
			SkillsToImprove:      []string{"Content creation", "Social media marketing", "Data analysis", "Consumer psychology"},
			AdditionalAdvice:     "Build a personal brand, learn digital marketing skills, follow industry trends, and keep improving your communication and presentation skills.",
		}
	}
}

func mockThoughtProcess(category Category) string {
	var background, market, focus string
	switch category {
	case CategoryTechnical:
		background = "you have a technical background, particularly in programming"
		market = "demand for engineering talent keeps growing, especially for developers with frontend and full-stack experience"
		focus = "frontend and full-stack roles, especially positions built around modern frameworks such as React"
	case CategoryDesign:
		background = "your design skills stand out"
		market = "strong designers can find excellent opportunities in product design and user experience"
		focus = "UI/UX design roles, in particular product designer positions"
	case CategoryManagerial:
		background = "you have management experience and leadership ability"
		market = "experienced managers are in demand at both large tech companies and startups"
		focus = "project or engineering management roles, where your leadership skills will be fully used"
	default:
		background = "your background is varied and suits several career paths"
		market = "content creation and digital marketing offer plenty of opportunities"
		focus = "content and marketing positions, where your mixed background is an advantage"
	}

	return fmt.Sprintf(
		"I analyzed the information you provided and noticed the following:\n\n"+
			"1. %s\n\n"+
			"2. In the current job market, %s\n\n"+
			"3. Given your skill set and market trends, I recommend focusing on %s",
		background, market, focus)
}
