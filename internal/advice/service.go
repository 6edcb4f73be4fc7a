package advice

import (
	"context"
	"log/slog"

	"github.com/Nanford/resumai/internal/llm"
	"github.com/Nanford/resumai/internal/prompts"
	"github.com/Nanford/resumai/internal/types"
)

// Default models per response mode (DeepSeek naming; override via config for
// other providers).
const (
	DefaultStandardModel = "deepseek-chat"
	DefaultThinkingModel = "deepseek-reasoner"
)

// Sampling tuning per mode. Thinking mode runs hotter and with a larger
// response budget to leave room for the reasoning trace.
const (
	standardTemperature = 0.7
	standardMaxTokens   = 800
	thinkingTemperature = 0.8
	thinkingMaxTokens   = 1200
)

// ServiceConfig configures the advice service facade.
type ServiceConfig struct {
	Provider      llm.Provider
	APIKey        string
	BaseURL       string
	StandardModel string
	ThinkingModel string
}

// Service is the advice facade: it owns the external model call, mode
// selection, and the error boundary. Callers always receive a usable record;
// transport and parse failures degrade to the mock generator.
type Service struct {
	client        llm.Client // nil when no credential is configured
	interp        *Interpreter
	logger        *slog.Logger
	standardModel string
	thinkingModel string
}

// NewService builds the facade. With an empty API key no client is created and
// every request is served by the mock generator without a network attempt.
func NewService(ctx context.Context, cfg ServiceConfig, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Service{
		interp:        NewInterpreter(DefaultLabelGrammar(), logger),
		logger:        logger,
		standardModel: cfg.StandardModel,
		thinkingModel: cfg.ThinkingModel,
	}
	if s.standardModel == "" {
		s.standardModel = DefaultStandardModel
	}
	if s.thinkingModel == "" {
		s.thinkingModel = DefaultThinkingModel
	}

	if cfg.APIKey == "" {
		logger.Info("no model credential configured, serving mock advice")
		return s, nil
	}

	client, err := llm.NewClient(ctx, llm.Config{
		Provider: cfg.Provider,
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	s.client = client
	return s, nil
}

// NewServiceWithClient builds the facade around an existing client. Used by
// tests and callers that manage the client lifecycle themselves.
func NewServiceWithClient(client llm.Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client:        client,
		interp:        NewInterpreter(DefaultLabelGrammar(), logger),
		logger:        logger,
		standardModel: DefaultStandardModel,
		thinkingModel: DefaultThinkingModel,
	}
}

// GetAdvice returns structured advice for the user's text. It never returns an
// error: transport failures, malformed envelopes, and undecodable payloads all
// fall back to the mock generator. No retry is attempted.
func (s *Service) GetAdvice(ctx context.Context, userText string, mode types.Mode) types.CareerAdvice {
	if !mode.Valid() {
		mode = types.ModeStandard
	}
	if s.client == nil {
		return GenerateMock(userText, mode, "")
	}

	req := llm.CompletionRequest{
		Model:       s.standardModel,
		System:      prompts.System(string(mode)),
		User:        userText,
		Temperature: standardTemperature,
		MaxTokens:   standardMaxTokens,
	}
	if mode == types.ModeThinking {
		req.Model = s.thinkingModel
		req.Temperature = thinkingTemperature
		req.MaxTokens = thinkingMaxTokens
	}

	rawText, err := s.client.Complete(ctx, req)
	if err != nil {
		s.logger.Warn("model call failed, falling back to mock", "mode", mode, "error", err)
		return GenerateMock(userText, mode, "")
	}

	return s.interp.Interpret(rawText, userText, mode)
}

// Close releases the underlying model client, if any.
func (s *Service) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
