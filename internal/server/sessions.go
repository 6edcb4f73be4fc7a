package server

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/Nanford/resumai/internal/i18n"
	"github.com/Nanford/resumai/internal/store"
)

// sessionHeader carries the client's session identity. Missing or unknown
// values get a fresh id, echoed back so the client can persist it.
const sessionHeader = "X-Session-ID"

// session pairs a session id with its isolated conversation store.
type session struct {
	id    string
	convs *store.Conversations
}

// sessionManager hands out per-session conversation stores backed by
// disjoint key namespaces over one shared KV backend.
type sessionManager struct {
	backend store.KV
	tr      i18n.Translator
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionManager(backend store.KV, tr i18n.Translator, logger *slog.Logger) *sessionManager {
	return &sessionManager{
		backend:  backend,
		tr:       tr,
		logger:   logger,
		sessions: make(map[string]*session),
	}
}

// resolve returns the session for the request, creating one when the header
// is absent or names a session this process has not seen. The session id is
// always written back to the response.
func (m *sessionManager) resolve(w http.ResponseWriter, r *http.Request) *session {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		id = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		kv := store.Namespaced(m.backend, "sess/"+id)
		sess = &session{
			id:    id,
			convs: store.NewConversations(kv, m.tr, m.logger),
		}
		m.sessions[id] = sess
	}

	w.Header().Set(sessionHeader, id)
	return sess
}
