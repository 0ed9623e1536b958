package chat

import (
	"StockPilot-Backend/domain"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

const (
	sessionKeyPrefix = "chat_sessions_"
	titleMaxRunes    = 50
)

// SessionStore keeps one append-only collection of conversation transcripts
// per store id, serialized as JSON in the injected KV capability. Sessions
// never expire; they are only removed by an explicit delete.
type SessionStore struct {
	kv KVStore

	// Overridable in tests.
	now   func() time.Time
	newID func() string
}

func NewSessionStore(kv KVStore) *SessionStore {
	return &SessionStore{
		kv:    kv,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func sessionKey(storeID string) string {
	return sessionKeyPrefix + storeID
}

// Load returns the stored collection for a store. A missing key or malformed
// payload both yield an empty collection; nothing saved yet and corrupted
// state look the same to callers.
func (s *SessionStore) Load(storeID string) []domain.ChatHistory {
	raw, ok := s.kv.Get(sessionKey(storeID))
	if !ok {
		return []domain.ChatHistory{}
	}

	var sessions []domain.ChatHistory
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		log.Printf("[ChatSessions] malformed session data for store %s: %v", storeID, err)
		return []domain.ChatHistory{}
	}
	return sessions
}

// Save persists the active conversation. With no current id it mints a new
// session and prepends it to the collection; with a current id it replaces
// that session's messages in place and refreshes updatedAt. An empty message
// slice is a no-op. Returns the adopted current id and the collection.
func (s *SessionStore) Save(storeID string, messages []domain.ChatMessage, currentID string) (string, []domain.ChatHistory, error) {
	sessions := s.Load(storeID)
	if len(messages) == 0 {
		return currentID, sessions, nil
	}

	if currentID != "" {
		for i := range sessions {
			if sessions[i].ID == currentID {
				sessions[i].Messages = messages
				sessions[i].UpdatedAt = s.now()
				if err := s.persist(storeID, sessions); err != nil {
					return currentID, sessions, err
				}
				return currentID, sessions, nil
			}
		}
		// Stale id: leave the stored collection untouched.
		return currentID, sessions, nil
	}

	now := s.now()
	session := domain.ChatHistory{
		ID:        s.newID(),
		Title:     deriveTitle(messages),
		Messages:  messages,
		CreatedAt: now,
		UpdatedAt: now,
	}
	sessions = append([]domain.ChatHistory{session}, sessions...)
	if err := s.persist(storeID, sessions); err != nil {
		return "", sessions, err
	}
	return session.ID, sessions, nil
}

// Resume returns the messages of the session with the given id. An unknown id
// is an error rather than a silent no-op so callers can tell the user the
// session is gone.
func (s *SessionStore) Resume(storeID string, sessionID string) ([]domain.ChatMessage, error) {
	for _, session := range s.Load(storeID) {
		if session.ID == sessionID {
			return session.Messages, nil
		}
	}
	return nil, domain.ErrChatSessionNotFound
}

// Delete removes a session by id. It returns the current id the caller should
// keep: empty when the deleted session was the current one, meaning the active
// conversation must be cleared too.
func (s *SessionStore) Delete(storeID string, sessionID string, currentID string) (string, []domain.ChatHistory, error) {
	sessions := s.Load(storeID)

	kept := sessions[:0]
	found := false
	for _, session := range sessions {
		if session.ID == sessionID {
			found = true
			continue
		}
		kept = append(kept, session)
	}
	if !found {
		return currentID, sessions, domain.ErrChatSessionNotFound
	}

	if err := s.persist(storeID, kept); err != nil {
		return currentID, kept, err
	}

	if sessionID == currentID {
		return "", kept, nil
	}
	return currentID, kept, nil
}

// persist rewrites the store's key. An empty collection is never written:
// deleting the last session removes the key outright.
func (s *SessionStore) persist(storeID string, sessions []domain.ChatHistory) error {
	if len(sessions) == 0 {
		return s.kv.Delete(sessionKey(storeID))
	}

	raw, err := json.Marshal(sessions)
	if err != nil {
		return err
	}
	return s.kv.Set(sessionKey(storeID), string(raw))
}

// deriveTitle takes the leading 50 runes of the first user message, with an
// ellipsis marker when truncated. A transcript with no user message falls
// back to its first message.
func deriveTitle(messages []domain.ChatMessage) string {
	content := messages[0].Content
	for _, m := range messages {
		if m.Role == domain.ChatRoleUser {
			content = m.Content
			break
		}
	}
	runes := []rune(content)
	if len(runes) <= titleMaxRunes {
		return content
	}
	return string(runes[:titleMaxRunes]) + "..."
}
