// Package advice implements the core of the career advisor: recovering a
// structured CareerAdvice record from free-form model output, a deterministic
// mock fallback, and the service facade that ties them to an LLM client.
package advice

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Nanford/resumai/internal/schemas"
	"github.com/Nanford/resumai/internal/types"
)

// LabelGrammar configures the phrasings the interpreter accepts for the
// numbered section labels of a thinking-mode response. The upstream model's
// wording is not contractually guaranteed, so the word lists are configuration
// rather than a hard-coded pattern.
type LabelGrammar struct {
	// ResultWords introduce the structured result section.
	ResultWords []string
	// AnalysisWords introduce the reasoning section.
	AnalysisWords []string
}

// DefaultLabelGrammar covers the phrasings observed from the upstream models,
// in English and Chinese, with ASCII or full-width colons.
func DefaultLabelGrammar() LabelGrammar {
	return LabelGrammar{
		ResultWords: []string{
			"Suggested Result", "Final Answer", "JSON Result", "Recommendation Result",
			"建议结果", "最终建议", "JSON结果",
		},
		AnalysisWords: []string{
			"Thought Process", "Analysis",
			"思考过程", "分析",
		},
	}
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

// Interpreter recovers CareerAdvice records from raw model text. Any failure
// degrades to the mock generator; Interpret never fails.
type Interpreter struct {
	resultRe   *regexp.Regexp
	analysisRe *regexp.Regexp
	logger     *slog.Logger
}

// NewInterpreter builds an interpreter with the given label grammar.
func NewInterpreter(grammar LabelGrammar, logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interpreter{
		resultRe:   regexp.MustCompile(`(?i)\n*\d+\.\s*(?:` + alternation(grammar.ResultWords) + `)[：:]\s*`),
		analysisRe: regexp.MustCompile(`(?i)^\n*\d+\.\s*(?:` + alternation(grammar.AnalysisWords) + `)[：:]\s*`),
		logger:     logger,
	}
}

// Interpret extracts a CareerAdvice record from rawText according to mode.
// userText seeds the mock fallback; thought-process text isolated before a
// failure is preserved through the fallback so the user still sees a
// reasoning trace.
func (it *Interpreter) Interpret(rawText, userText string, mode types.Mode) types.CareerAdvice {
	if mode == types.ModeThinking {
		return it.interpretThinking(rawText, userText)
	}
	return it.interpretStandard(rawText, userText)
}

func (it *Interpreter) interpretStandard(rawText, userText string) types.CareerAdvice {
	span, _, ok := extractJSONSpan(rawText)
	if !ok {
		it.logger.Warn("no structured payload in response, falling back to mock")
		return GenerateMock(userText, types.ModeStandard, "")
	}

	record, err := decodeAdvice(span)
	if err != nil {
		it.logger.Warn("failed to decode structured payload, falling back to mock", "error", err)
		return GenerateMock(userText, types.ModeStandard, "")
	}

	record.ThoughtProcess = ""
	return record
}

func (it *Interpreter) interpretThinking(rawText, userText string) types.CareerAdvice {
	parts := it.resultRe.Split(rawText, 2)
	if len(parts) >= 2 {
		thought := strings.TrimSpace(it.analysisRe.ReplaceAllString(parts[0], ""))

		span, _, ok := extractJSONSpan(parts[1])
		if !ok {
			it.logger.Warn("no structured payload after result label, falling back to mock")
			return GenerateMock(userText, types.ModeThinking, thought)
		}

		record, err := decodeAdvice(span)
		if err != nil {
			it.logger.Warn("failed to decode labeled payload, falling back to mock", "error", err)
			return GenerateMock(userText, types.ModeThinking, thought)
		}

		record.ThoughtProcess = thought
		return record
	}

	// The model did not use the expected label. Recover by taking the first
	// balanced span anywhere; everything before it is the reasoning trace.
	span, startIdx, ok := extractJSONSpan(rawText)
	if !ok {
		it.logger.Warn("no structured payload in unlabeled response, falling back to mock")
		return GenerateMock(userText, types.ModeThinking, "")
	}

	thought := strings.TrimSpace(rawText[:startIdx])
	record, err := decodeAdvice(span)
	if err != nil {
		it.logger.Warn("failed to decode unlabeled payload, falling back to mock", "error", err)
		return GenerateMock(userText, types.ModeThinking, thought)
	}

	record.ThoughtProcess = thought
	return record
}

// decodeAdvice performs the strict structural decode of a candidate span:
// schema validation first (required fields, list/scalar types), then the
// typed unmarshal.
func decodeAdvice(span string) (types.CareerAdvice, error) {
	var record types.CareerAdvice

	if err := schemas.ValidateAdvice(span); err != nil {
		return record, &ParseError{Message: "payload rejected by schema", Cause: err}
	}
	if err := json.Unmarshal([]byte(span), &record); err != nil {
		return record, &ParseError{Message: "failed to unmarshal payload", Cause: err}
	}

	record.Normalize()
	return record, nil
}
