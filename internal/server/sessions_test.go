package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nanford/resumai/internal/i18n"
	"github.com/Nanford/resumai/internal/store"
)

func TestSessionManagerIssuesIDs(t *testing.T) {
	m := newSessionManager(store.NewMemory(), i18n.MustLoad("en"), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/conversations", nil)
	rec := httptest.NewRecorder()
	sess := m.resolve(rec, req)

	require.NotEmpty(t, sess.id)
	_, err := uuid.Parse(sess.id)
	assert.NoError(t, err, "generated session ids are uuids")
	assert.Equal(t, sess.id, rec.Header().Get(sessionHeader), "issued id is echoed to the client")
}

func TestSessionManagerReusesStores(t *testing.T) {
	m := newSessionManager(store.NewMemory(), i18n.MustLoad("en"), testLogger())

	resolve := func(id string) *session {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(sessionHeader, id)
		return m.resolve(httptest.NewRecorder(), req)
	}

	first := resolve("alpha")
	again := resolve("alpha")
	other := resolve("beta")

	assert.Same(t, first.convs, again.convs, "one store per session id")
	assert.NotSame(t, first.convs, other.convs)
}

func TestRecoverMiddleware(t *testing.T) {
	srv := newTestServer(t, nil)

	panicky := srv.withMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	panicky.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
