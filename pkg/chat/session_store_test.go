package chat

import (
	"StockPilot-Backend/domain"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestStore() (*SessionStore, *MemoryKVStore) {
	kv := NewMemoryKVStore()
	s := NewSessionStore(kv)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	n := 0
	s.newID = func() string {
		n++
		return strings.Repeat("a", 7) + string(rune('0'+n))
	}
	return s, kv
}

func userMsg(content string) domain.ChatMessage {
	return domain.ChatMessage{Role: domain.ChatRoleUser, Content: content}
}

func TestSaveMintsSessionWithTruncatedTitle(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore()
	long := strings.Repeat("A", 60)

	id, sessions, err := s.Save("store-1", []domain.ChatMessage{userMsg(long)}, "")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected a minted session id")
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}

	want := strings.Repeat("A", 50) + "..."
	if sessions[0].Title != want {
		t.Fatalf("unexpected title: %q", sessions[0].Title)
	}
	if !sessions[0].CreatedAt.Equal(sessions[0].UpdatedAt) {
		t.Fatal("expected createdAt == updatedAt on a fresh session")
	}
}

func TestSaveShortTitleIsNotTruncated(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore()
	_, sessions, err := s.Save("store-1", []domain.ChatMessage{userMsg("Hello")}, "")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if sessions[0].Title != "Hello" {
		t.Fatalf("unexpected title: %q", sessions[0].Title)
	}
}

func TestSaveTitleComesFromFirstUserMessage(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore()
	msgs := []domain.ChatMessage{
		{Role: domain.ChatRoleAssistant, Content: "Welcome! How can I help?"},
		userMsg("Which items are low on stock?"),
	}

	_, sessions, err := s.Save("store-1", msgs, "")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if sessions[0].Title != "Which items are low on stock?" {
		t.Fatalf("expected title from the first user message, got %q", sessions[0].Title)
	}
}

func TestSaveTitleFallsBackWithoutUserMessage(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore()
	msgs := []domain.ChatMessage{
		{Role: domain.ChatRoleAssistant, Content: "Daily summary"},
	}

	_, sessions, err := s.Save("store-1", msgs, "")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if sessions[0].Title != "Daily summary" {
		t.Fatalf("unexpected fallback title: %q", sessions[0].Title)
	}
}

func TestSaveWithCurrentIDUpdatesInPlace(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore()
	id, _, err := s.Save("store-1", []domain.ChatMessage{userMsg("first")}, "")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	created := s.Load("store-1")[0].CreatedAt

	msgs := []domain.ChatMessage{
		userMsg("first"),
		{Role: domain.ChatRoleAssistant, Content: "reply"},
	}
	sameID, sessions, err := s.Save("store-1", msgs, id)
	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	if sameID != id {
		t.Fatalf("expected current id to stay %s, got %s", id, sameID)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected collection length to stay 1, got %d", len(sessions))
	}
	if len(sessions[0].Messages) != 2 {
		t.Fatalf("expected messages to be replaced, got %d", len(sessions[0].Messages))
	}
	if !sessions[0].CreatedAt.Equal(created) {
		t.Fatal("createdAt must not change on update")
	}
	if !sessions[0].UpdatedAt.After(created) {
		t.Fatal("updatedAt must be refreshed on update")
	}
}

func TestSaveEmptyConversationIsNoOp(t *testing.T) {
	t.Parallel()

	s, kv := newTestStore()
	id, sessions, err := s.Save("store-1", nil, "")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if id != "" || len(sessions) != 0 {
		t.Fatalf("expected no-op, got id=%q sessions=%d", id, len(sessions))
	}
	if _, ok := kv.Get("chat_sessions_store-1"); ok {
		t.Fatal("an empty collection must never be written")
	}
}

func TestNewSessionsArePrepended(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore()
	first, _, _ := s.Save("store-1", []domain.ChatMessage{userMsg("one")}, "")
	second, sessions, _ := s.Save("store-1", []domain.ChatMessage{userMsg("two")}, "")

	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].ID != second || sessions[1].ID != first {
		t.Fatalf("expected newest-first order, got %s then %s", sessions[0].ID, sessions[1].ID)
	}
}

func TestResumeReturnsSessionMessages(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore()
	id, _, _ := s.Save("store-1", []domain.ChatMessage{userMsg("resume me")}, "")

	msgs, err := s.Resume("store-1", id)
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Content != "resume me" {
		t.Fatalf("unexpected messages: %+v", msgs)
	}
}

func TestResumeUnknownIDReturnsError(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore()
	s.Save("store-1", []domain.ChatMessage{userMsg("hello")}, "")

	before := s.Load("store-1")
	_, err := s.Resume("store-1", "no-such-id")
	if !errors.Is(err, domain.ErrChatSessionNotFound) {
		t.Fatalf("expected ErrChatSessionNotFound, got %v", err)
	}
	after := s.Load("store-1")
	if len(before) != len(after) {
		t.Fatal("resume of an unknown id must not change stored state")
	}
}

func TestDeleteCurrentSessionClearsCurrentID(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore()
	id1, _, _ := s.Save("store-1", []domain.ChatMessage{userMsg("one")}, "")
	id2, _, _ := s.Save("store-1", []domain.ChatMessage{userMsg("two")}, "")

	current, sessions, err := s.Delete("store-1", id2, id2)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if current != "" {
		t.Fatalf("deleting the current session must clear the current id, got %q", current)
	}
	if len(sessions) != 1 || sessions[0].ID != id1 {
		t.Fatalf("unexpected remaining sessions: %+v", sessions)
	}
}

func TestDeleteOtherSessionKeepsCurrentID(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore()
	id1, _, _ := s.Save("store-1", []domain.ChatMessage{userMsg("one")}, "")
	id2, _, _ := s.Save("store-1", []domain.ChatMessage{userMsg("two")}, "")

	current, _, err := s.Delete("store-1", id1, id2)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if current != id2 {
		t.Fatalf("expected current id %s to survive, got %q", id2, current)
	}
}

func TestDeleteLastSessionRemovesStoredKey(t *testing.T) {
	t.Parallel()

	s, kv := newTestStore()
	id, _, _ := s.Save("store-1", []domain.ChatMessage{userMsg("only")}, "")

	if _, _, err := s.Delete("store-1", id, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := kv.Get("chat_sessions_store-1"); ok {
		t.Fatal("expected the stored key to be removed with the last session")
	}
}

func TestSessionsAreIsolatedPerStore(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore()
	s.Save("store-1", []domain.ChatMessage{userMsg("one")}, "")

	if got := s.Load("store-2"); len(got) != 0 {
		t.Fatalf("expected store-2 to have no sessions, got %d", len(got))
	}
}

func TestLoadTimestampsRoundTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore()
	_, saved, _ := s.Save("store-1", []domain.ChatMessage{userMsg("round trip")}, "")

	loaded := s.Load("store-1")
	if len(loaded) != 1 {
		t.Fatalf("expected 1 session after reload, got %d", len(loaded))
	}
	if !loaded[0].CreatedAt.Equal(saved[0].CreatedAt) || !loaded[0].UpdatedAt.Equal(saved[0].UpdatedAt) {
		t.Fatalf("timestamps changed across the round trip: %+v vs %+v", loaded[0], saved[0])
	}
}

func TestLoadMalformedDataFailsClosed(t *testing.T) {
	t.Parallel()

	kv := NewMemoryKVStore()
	kv.Set("chat_sessions_store-1", "{not json")

	s := NewSessionStore(kv)
	if got := s.Load("store-1"); len(got) != 0 {
		t.Fatalf("expected malformed data to load as empty, got %d sessions", len(got))
	}
}
