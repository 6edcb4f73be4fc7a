package server

import "sync"

// inflightGuard admits at most one advice generation per session at a time.
// A second submission while one is running is rejected rather than queued,
// mirroring the single-submit chat flow.
type inflightGuard struct {
	mu   sync.Mutex
	busy map[string]bool
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{busy: make(map[string]bool)}
}

// acquire reports whether the session may start a generation. The caller must
// release with the same id when it acquired successfully.
func (g *inflightGuard) acquire(sessionID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy[sessionID] {
		return false
	}
	g.busy[sessionID] = true
	return true
}

func (g *inflightGuard) release(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.busy, sessionID)
}
