package server

import (
	"encoding/json"
	"net/http"

	"github.com/Nanford/resumai/internal/advice"
	"github.com/Nanford/resumai/internal/store"
	"github.com/Nanford/resumai/internal/types"
)

// decodeRequest parses and validates a JSON request body. On failure it writes
// the 400 response itself and reports false.
func decodeRequest[T interface{ Validate() error }](s *Server, w http.ResponseWriter, r *http.Request, req T) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleAdvice returns a structured advice record without touching any
// conversation state.
func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	var req types.AdviceRequest
	if !decodeRequest(s, w, r, &req) {
		return
	}

	sess := s.sessions.resolve(w, r)
	if !s.inflight.acquire(sess.id) {
		s.errorResponse(w, http.StatusConflict, "a generation is already in progress for this session")
		return
	}
	defer s.inflight.release(sess.id)

	mode, err := types.ParseMode(req.Mode)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	record := s.svc.GetAdvice(r.Context(), req.Text, mode)
	s.jsonResponse(w, http.StatusOK, record)
}

// handleChat runs the full chat submission flow: the user message is appended
// to the target conversation, a draft target is promoted under a title derived
// from the message, advice is generated, and the formatted assistant reply is
// appended and returned.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if !decodeRequest(s, w, r, &req) {
		return
	}

	mode, err := types.ParseMode(req.Mode)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sess := s.sessions.resolve(w, r)
	if !s.inflight.acquire(sess.id) {
		s.errorResponse(w, http.StatusConflict, "a generation is already in progress for this session")
		return
	}
	defer s.inflight.release(sess.id)

	ctx := r.Context()
	convID := req.ConversationID

	if convID == types.DraftConversationID {
		// A fresh draft lifetime per submission keeps promotion single-shot
		// even when clients resubmit the draft id.
		if _, err := sess.convs.Select(ctx, types.DraftConversationID); err != nil {
			s.errorResponse(w, httpStatus(err), err.Error())
			return
		}
	}

	userMsg := types.Message{Role: types.RoleUser, Content: req.Text}
	if err := sess.convs.Append(ctx, convID, userMsg); err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	if convID == types.DraftConversationID {
		id, err := sess.convs.Promote(ctx, store.TitleFor(req.Text))
		if err != nil {
			s.errorResponse(w, httpStatus(err), err.Error())
			return
		}
		convID = id
	}

	record := s.svc.GetAdvice(ctx, req.Text, mode)

	tr := advice.TranslatorFor(req.Text, s.tr)
	reply := types.Message{
		Role:           types.RoleAssistant,
		Content:        advice.FormatMarkdown(record, tr),
		ThoughtProcess: record.ThoughtProcess,
	}
	if err := sess.convs.Append(ctx, convID, reply); err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ChatResponse{
		ConversationID: convID,
		Reply:          reply,
		Advice:         record,
	})
}

func (s *Server) handleListConversations(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.resolve(w, r)
	list, err := sess.convs.List(r.Context())
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, list)
}

// handleSaveConversation promotes the session's draft under an explicit title.
func (s *Server) handleSaveConversation(w http.ResponseWriter, r *http.Request) {
	var req types.SaveConversationRequest
	if !decodeRequest(s, w, r, &req) {
		return
	}

	sess := s.sessions.resolve(w, r)
	ctx := r.Context()

	// Selecting the draft first makes promotion idempotent from the client's
	// point of view: a repeated save creates a new empty conversation instead
	// of tripping the double-promotion contract.
	if sess.convs.Active() != types.DraftConversationID {
		if _, err := sess.convs.Select(ctx, types.DraftConversationID); err != nil {
			s.errorResponse(w, httpStatus(err), err.Error())
			return
		}
	}

	id, err := sess.convs.Promote(ctx, req.Title)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, types.Conversation{ID: id, Title: req.Title})
}

func (s *Server) handleGetMessages(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.resolve(w, r)
	id := r.PathValue("id")

	log, err := sess.convs.Select(r.Context(), id)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, log)
}

func (s *Server) handleAppendMessage(w http.ResponseWriter, r *http.Request) {
	var req types.AppendMessageRequest
	if !decodeRequest(s, w, r, &req) {
		return
	}

	sess := s.sessions.resolve(w, r)
	msg := types.Message{
		Role:           types.Role(req.Role),
		Content:        req.Content,
		ThoughtProcess: req.ThoughtProcess,
	}
	if err := sess.convs.Append(r.Context(), r.PathValue("id"), msg); err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, msg)
}

func (s *Server) handleDeleteConversation(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.resolve(w, r)
	if err := sess.convs.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
