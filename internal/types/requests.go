package types

import "github.com/go-playground/validator/v10"

// AdviceRequest asks for structured advice without touching any conversation.
type AdviceRequest struct {
	Text string `json:"text" validate:"required,min=1"`
	Mode string `json:"mode" validate:"omitempty,oneof=standard thinking"`
}

// ChatRequest submits a user message to a conversation and asks for an
// assistant reply. ConversationID may be the reserved draft identifier, in
// which case the first message promotes the draft.
type ChatRequest struct {
	ConversationID string `json:"conversationId" validate:"required"`
	Text           string `json:"text" validate:"required,min=1"`
	Mode           string `json:"mode" validate:"omitempty,oneof=standard thinking"`
}

// ChatResponse carries the assistant reply for a chat submission.
type ChatResponse struct {
	ConversationID string       `json:"conversationId"`
	Reply          Message      `json:"reply"`
	Advice         CareerAdvice `json:"advice"`
}

// SaveConversationRequest promotes the draft under the given title.
type SaveConversationRequest struct {
	Title string `json:"title" validate:"required,min=1"`
}

// AppendMessageRequest appends one message to a conversation log.
type AppendMessageRequest struct {
	Role           string `json:"role" validate:"required,oneof=user assistant"`
	Content        string `json:"content" validate:"required"`
	ThoughtProcess string `json:"thoughtProcess,omitempty"`
}

// Validate validates the AdviceRequest using the validator.
func (r *AdviceRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SaveConversationRequest using the validator.
func (r *SaveConversationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AppendMessageRequest using the validator.
func (r *AppendMessageRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
