package sessions

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	sess := &Session{ID: "abc"}
	sess.MarkVoted(7)
	sess.Flash("hello", "info")
	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("get returned nil for a saved session")
	}
	if !got.HasVoted(7) || got.HasVoted(8) {
		t.Errorf("voted set not preserved: %v", got.VotedEvents)
	}
	if len(got.Flashes) != 1 || got.Flashes[0].Message != "hello" {
		t.Errorf("flashes not preserved: %v", got.Flashes)
	}

	// returned sessions are copies; mutating one must not leak into the store
	got.MarkVoted(8)
	again, _ := store.Get(ctx, "abc")
	if again.HasVoted(8) {
		t.Error("store leaked a shared session value")
	}

	if err := store.Delete(ctx, "abc"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gone, _ := store.Get(ctx, "abc"); gone != nil {
		t.Error("session still present after delete")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(-time.Second) // everything is born expired

	_ = store.Save(ctx, &Session{ID: "old"})
	if got, _ := store.Get(ctx, "old"); got != nil {
		t.Error("expired session returned from store")
	}
}

func TestMemoryStoreUnknownID(t *testing.T) {
	got, err := NewMemoryStore(time.Hour).Get(context.Background(), "nope")
	if err != nil || got != nil {
		t.Errorf("unknown id = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestManagerSignVerify(t *testing.T) {
	m := NewManager(NewMemoryStore(time.Hour), "secret", time.Hour)

	sess := m.NewSession()
	if sess.ID == "" {
		t.Fatal("new session has empty id")
	}

	token, err := m.SignID(sess.ID)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	id, err := m.VerifyID(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id != sess.ID {
		t.Errorf("verified id = %q, want %q", id, sess.ID)
	}
}

func TestManagerRejectsForgedTokens(t *testing.T) {
	m := NewManager(NewMemoryStore(time.Hour), "secret", time.Hour)
	other := NewManager(NewMemoryStore(time.Hour), "different-secret", time.Hour)

	token, err := other.SignID("stolen")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := m.VerifyID(token); err == nil {
		t.Error("token signed under another secret was accepted")
	}
	if _, err := m.VerifyID("garbage"); err == nil {
		t.Error("malformed token was accepted")
	}
}

func TestSessionVoteDedup(t *testing.T) {
	sess := &Session{ID: "s"}
	if sess.HasVoted(1) {
		t.Error("fresh session reports a vote")
	}
	sess.MarkVoted(1)
	sess.MarkVoted(1)
	if len(sess.VotedEvents) != 1 {
		t.Errorf("duplicate MarkVoted grew the set: %v", sess.VotedEvents)
	}
}

func TestConsumeFlashesDrains(t *testing.T) {
	sess := &Session{ID: "s"}
	sess.Flash("one", "info")
	sess.Flash("two", "success")

	first := sess.ConsumeFlashes()
	if len(first) != 2 {
		t.Fatalf("got %d flashes, want 2", len(first))
	}
	if second := sess.ConsumeFlashes(); len(second) != 0 {
		t.Errorf("flashes not drained: %v", second)
	}
}
