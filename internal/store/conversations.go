package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Nanford/resumai/internal/i18n"
	"github.com/Nanford/resumai/internal/types"
)

const (
	// listKey is the well-known key holding the persisted conversation list.
	listKey = "conversations"
	// messagesKeyPrefix derives the per-conversation log key from its id.
	messagesKeyPrefix = "messages-"
	// schemaVersion tags persisted envelopes for forward compatibility. No
	// migration exists yet; readers accept any value.
	schemaVersion = 1

	// titleRuneLimit caps a promoted title derived from the first message.
	titleRuneLimit = 30
)

type storedList struct {
	Version       int                  `json:"v"`
	Conversations []types.Conversation `json:"conversations"`
}

type storedLog struct {
	Version  int             `json:"v"`
	Messages []types.Message `json:"messages"`
}

// Conversations manages the conversation list and the per-conversation message
// logs for one session, including the mutable draft slot. Draft messages are
// buffered in memory only and re-keyed on promotion; the reserved draft
// identifier never reaches durable storage.
type Conversations struct {
	kv     KV
	tr     i18n.Translator
	logger *slog.Logger
	now    func() time.Time

	mu            sync.Mutex
	draft         []types.Message
	draftPromoted bool
	active        string
}

// NewConversations creates a state store over the given persistence surface.
func NewConversations(kv KV, tr i18n.Translator, logger *slog.Logger) *Conversations {
	if logger == nil {
		logger = slog.Default()
	}
	return &Conversations{
		kv:     kv,
		tr:     tr,
		logger: logger,
		now:    time.Now,
		active: types.DraftConversationID,
	}
}

// List returns the conversation summaries. The draft slot is always the first
// entry for UI purposes; it is never part of the persisted list.
func (c *Conversations) List(ctx context.Context) ([]types.Conversation, error) {
	persisted, err := c.loadList(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]types.Conversation, 0, len(persisted)+1)
	out = append(out, types.Conversation{
		ID:    types.DraftConversationID,
		Title: c.tr.T("chat.new"),
	})
	return append(out, persisted...), nil
}

// Select makes id the active conversation and returns its message log.
// Selecting the reserved draft identifier starts a fresh draft and yields an
// empty log. A corrupt stored log is reported as empty; the entry is kept for
// inspection rather than auto-deleted.
func (c *Conversations) Select(ctx context.Context, id string) ([]types.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.active = id
	if id == types.DraftConversationID {
		c.draft = nil
		c.draftPromoted = false
		return []types.Message{}, nil
	}

	return c.loadLog(ctx, id)
}

// Promote turns the current draft into a permanent conversation: it allocates
// an identifier from the creation instant, persists the summary under the
// given title, and re-keys the buffered draft messages as the new log.
// Promoting the same draft twice is a caller contract violation and panics.
func (c *Conversations) Promote(ctx context.Context, title string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.draftPromoted {
		panic("store: draft already promoted; select the draft to start a new one")
	}

	id := fmt.Sprintf("conv-%d", c.now().UnixMilli())

	persisted, err := c.loadList(ctx)
	if err != nil {
		return "", err
	}
	updated := append([]types.Conversation{{ID: id, Title: title}}, persisted...)
	if err := c.saveList(ctx, updated); err != nil {
		return "", err
	}

	// An empty buffered draft still gets an empty log: a summary exists in
	// the list if and only if a log exists for its identifier.
	if err := c.saveLog(ctx, id, c.draft); err != nil {
		return "", err
	}

	c.draft = nil
	c.draftPromoted = true
	c.active = id
	return id, nil
}

// Append adds a message to the log for id. Draft messages are held in the
// in-memory buffer until promotion. Appending to an unknown permanent
// conversation is an error.
func (c *Conversations) Append(ctx context.Context, id string, msg types.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id == types.DraftConversationID {
		c.draft = append(c.draft, msg)
		return nil
	}

	persisted, err := c.loadList(ctx)
	if err != nil {
		return err
	}
	if !containsConversation(persisted, id) {
		return &ErrNotFound{ID: id}
	}

	log, err := c.loadLog(ctx, id)
	if err != nil {
		return err
	}
	return c.saveLog(ctx, id, append(log, msg))
}

// Delete removes the conversation summary and its entire message log. Deleting
// the active conversation resets the selection to the draft slot. Deleting the
// reserved draft identifier is a no-op.
func (c *Conversations) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id == types.DraftConversationID {
		return nil
	}

	persisted, err := c.loadList(ctx)
	if err != nil {
		return err
	}
	filtered := persisted[:0:0]
	for _, conv := range persisted {
		if conv.ID != id {
			filtered = append(filtered, conv)
		}
	}
	if err := c.saveList(ctx, filtered); err != nil {
		return err
	}
	if err := c.kv.Delete(ctx, messagesKeyPrefix+id); err != nil {
		return err
	}

	if c.active == id {
		c.active = types.DraftConversationID
		c.draft = nil
		c.draftPromoted = false
	}
	return nil
}

// Active returns the currently selected conversation identifier.
func (c *Conversations) Active() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// TitleFor derives a conversation title from the first user message: a prefix
// of at most 30 runes, with an ellipsis appended when truncated.
func TitleFor(text string) string {
	runes := []rune(text)
	if len(runes) <= titleRuneLimit {
		return text
	}
	return string(runes[:titleRuneLimit]) + "..."
}

func (c *Conversations) loadList(ctx context.Context) ([]types.Conversation, error) {
	data, ok, err := c.kv.Get(ctx, listKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation list: %w", err)
	}
	if !ok {
		return []types.Conversation{}, nil
	}

	var stored storedList
	if err := json.Unmarshal(data, &stored); err != nil {
		c.logger.Warn("corrupt conversation list, treating as empty", "error", err)
		return []types.Conversation{}, nil
	}
	if stored.Conversations == nil {
		return []types.Conversation{}, nil
	}
	return stored.Conversations, nil
}

func (c *Conversations) saveList(ctx context.Context, list []types.Conversation) error {
	data, err := json.Marshal(storedList{Version: schemaVersion, Conversations: list})
	if err != nil {
		return fmt.Errorf("failed to encode conversation list: %w", err)
	}
	return c.kv.Put(ctx, listKey, data)
}

func (c *Conversations) loadLog(ctx context.Context, id string) ([]types.Message, error) {
	data, ok, err := c.kv.Get(ctx, messagesKeyPrefix+id)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages for %s: %w", id, err)
	}
	if !ok {
		return []types.Message{}, nil
	}

	var stored storedLog
	if err := json.Unmarshal(data, &stored); err != nil {
		c.logger.Warn("corrupt message log, treating as empty", "conversation", id, "error", err)
		return []types.Message{}, nil
	}
	if stored.Messages == nil {
		return []types.Message{}, nil
	}
	return stored.Messages, nil
}

func (c *Conversations) saveLog(ctx context.Context, id string, log []types.Message) error {
	if log == nil {
		log = []types.Message{}
	}
	data, err := json.Marshal(storedLog{Version: schemaVersion, Messages: log})
	if err != nil {
		return fmt.Errorf("failed to encode messages for %s: %w", id, err)
	}
	return c.kv.Put(ctx, messagesKeyPrefix+id, data)
}

func containsConversation(list []types.Conversation, id string) bool {
	for _, conv := range list {
		if conv.ID == id {
			return true
		}
	}
	return false
}
