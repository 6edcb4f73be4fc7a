package advice

import (
	"context"
	"errors"
	"testing"

	"github.com/Nanford/resumai/internal/llm"
	"github.com/Nanford/resumai/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient records the last request and plays back a scripted response.
type fakeClient struct {
	lastReq  llm.CompletionRequest
	response string
	err      error
	calls    int
}

func (f *fakeClient) Complete(_ context.Context, req llm.CompletionRequest) (string, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) Close() error { return nil }

func TestService_NoCredentialServesMockWithoutNetwork(t *testing.T) {
	svc, err := NewService(context.Background(), ServiceConfig{}, nil)
	require.NoError(t, err)

	record := svc.GetAdvice(context.Background(), "I know React and JavaScript", types.ModeStandard)
	want := GenerateMock("I know React and JavaScript", types.ModeStandard, "")
	assert.Equal(t, want, record)
}

func TestService_DelegatesToInterpreterOnSuccess(t *testing.T) {
	client := &fakeClient{response: advicePayload}
	svc := NewServiceWithClient(client, nil)

	record := svc.GetAdvice(context.Background(), "I know React", types.ModeStandard)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "120-180k per year", record.SalarySuggestion)
}

func TestService_ModeDependentRequestParameters(t *testing.T) {
	client := &fakeClient{response: advicePayload}
	svc := NewServiceWithClient(client, nil)

	svc.GetAdvice(context.Background(), "hi", types.ModeStandard)
	assert.Equal(t, DefaultStandardModel, client.lastReq.Model)
	assert.InDelta(t, standardTemperature, client.lastReq.Temperature, 0.001)
	assert.Equal(t, standardMaxTokens, client.lastReq.MaxTokens)
	standardSystem := client.lastReq.System

	svc.GetAdvice(context.Background(), "hi", types.ModeThinking)
	assert.Equal(t, DefaultThinkingModel, client.lastReq.Model)
	assert.InDelta(t, thinkingTemperature, client.lastReq.Temperature, 0.001)
	assert.Equal(t, thinkingMaxTokens, client.lastReq.MaxTokens)
	assert.NotEqual(t, standardSystem, client.lastReq.System, "system instruction is mode dependent")

	assert.Greater(t, thinkingMaxTokens, standardMaxTokens)
}

func TestService_TransportFailureFallsBackToMock_NoRetry(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	svc := NewServiceWithClient(client, nil)

	record := svc.GetAdvice(context.Background(), "I do UX and UI design", types.ModeThinking)

	assert.Equal(t, 1, client.calls, "no automatic retry")
	want := GenerateMock("I do UX and UI design", types.ModeThinking, "")
	assert.Equal(t, want, record)
}

func TestService_UnparsableResponseFallsBackToMock(t *testing.T) {
	client := &fakeClient{response: "I refuse to emit JSON today."}
	svc := NewServiceWithClient(client, nil)

	record := svc.GetAdvice(context.Background(), "generic text", types.ModeStandard)
	want := GenerateMock("generic text", types.ModeStandard, "")
	assert.Equal(t, want, record)
}

func TestService_InvalidModeTreatedAsStandard(t *testing.T) {
	client := &fakeClient{response: advicePayload}
	svc := NewServiceWithClient(client, nil)

	svc.GetAdvice(context.Background(), "hi", types.Mode("bogus"))
	assert.Equal(t, DefaultStandardModel, client.lastReq.Model)
}
