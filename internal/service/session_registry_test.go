package service

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"english-tutor/internal/plan"
)

func TestSessionRegistry_CreateGetDelete(t *testing.T) {
	reg := NewSessionRegistry(zap.NewNop(), NewResponder(nil), ConversationOptions{}, time.Hour, 0)

	id, conv, err := reg.Create(plan.Resolve("premium"))
	if err != nil || id == "" || conv == nil {
		t.Fatalf("expected session to be created")
	}
	got, err := reg.Get(id)
	if err != nil || got != conv {
		t.Fatalf("expected same conversation, err=%v", err)
	}
	if got.Plan().Key != plan.Resolve("premium").Key {
		t.Fatalf("expected premium plan")
	}

	reg.Delete(id)
	if _, err := reg.Get(id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionRegistry_SessionsAreIndependent(t *testing.T) {
	sched := &manualScheduler{}
	reg := NewSessionRegistry(zap.NewNop(), NewResponder(nil), ConversationOptions{AfterFunc: sched.AfterFunc}, time.Hour, 0)
	_, a, _ := reg.Create(plan.Resolve("basic"))
	_, b, _ := reg.Create(plan.Resolve("basic"))

	if _, _, err := a.Submit("food"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sched.runAll()
	if len(b.View().Messages) != 1 {
		t.Fatalf("expected untouched second session")
	}
}

func TestSessionRegistry_Sweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	reg := NewSessionRegistry(zap.NewNop(), NewResponder(nil), ConversationOptions{Now: clock}, 30*time.Minute, 0)

	oldID, _, _ := reg.Create(plan.Resolve("basic"))
	now = now.Add(20 * time.Minute)
	freshID, _, _ := reg.Create(plan.Resolve("basic"))
	now = now.Add(15 * time.Minute)

	if removed := reg.Sweep(); removed != 1 {
		t.Fatalf("expected 1 session swept, got %d", removed)
	}
	if _, err := reg.Get(oldID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected old session removed")
	}
	if _, err := reg.Get(freshID); err != nil {
		t.Fatalf("expected fresh session kept, got %v", err)
	}
}

func TestSessionRegistry_GetKeepsSessionAlive(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	reg := NewSessionRegistry(zap.NewNop(), NewResponder(nil), ConversationOptions{Now: clock}, 30*time.Minute, 0)

	id, _, _ := reg.Create(plan.Resolve("basic"))
	for i := 0; i < 3; i++ {
		now = now.Add(20 * time.Minute)
		if _, err := reg.Get(id); err != nil {
			t.Fatalf("poll %d: unexpected error: %v", i+1, err)
		}
		if removed := reg.Sweep(); removed != 0 {
			t.Fatalf("poll %d: expected polled session kept, swept %d", i+1, removed)
		}
	}

	now = now.Add(31 * time.Minute)
	if removed := reg.Sweep(); removed != 1 {
		t.Fatalf("expected idle session swept, got %d", removed)
	}
}

func TestSessionRegistry_MaxSessions(t *testing.T) {
	reg := NewSessionRegistry(zap.NewNop(), NewResponder(nil), ConversationOptions{}, time.Hour, 2)

	firstID, _, _ := reg.Create(plan.Resolve("basic"))
	if _, _, err := reg.Create(plan.Resolve("basic")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := reg.Create(plan.Resolve("basic")); !errors.Is(err, ErrSessionLimit) {
		t.Fatalf("expected ErrSessionLimit, got %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", reg.Len())
	}

	reg.Delete(firstID)
	if _, _, err := reg.Create(plan.Resolve("basic")); err != nil {
		t.Fatalf("expected room after delete, got %v", err)
	}
}
