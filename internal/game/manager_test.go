package game

import (
	"testing"

	"github.com/lukev/innovation_server/internal/models"
)

func TestManagerCreateAndExecute(t *testing.T) {
	m := NewManager()
	gs, err := m.CreateGame("m1", 11, [2]string{"Alice", "Bob"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.CreateGame("m1", 11, [2]string{"Alice", "Bob"}); err == nil {
		t.Errorf("duplicate game id should be rejected")
	}

	out, err := m.ExecuteAction("m1", models.Action{Type: models.ActionDraw, PlayerID: gs.CurrentPlayer}, ActionMeta{ExpectedRevision: 0})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.Revision != 1 {
		t.Errorf("expected revision 1, got %d", out.Revision)
	}

	rev, ok := m.GetRevision("m1")
	if !ok || rev != 1 {
		t.Errorf("expected stored revision 1, got %d (%v)", rev, ok)
	}
}

func TestManagerRevisionMismatch(t *testing.T) {
	m := NewManager()
	gs, err := m.CreateGame("m1", 11, [2]string{"Alice", "Bob"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = m.ExecuteAction("m1", models.Action{Type: models.ActionDraw, PlayerID: gs.CurrentPlayer}, ActionMeta{ExpectedRevision: 5})
	if _, ok := err.(*RevisionMismatchError); !ok {
		t.Errorf("expected RevisionMismatchError, got %v", err)
	}
}

func TestManagerIdempotentActionID(t *testing.T) {
	m := NewManager()
	gs, err := m.CreateGame("m1", 11, [2]string{"Alice", "Bob"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	action := models.Action{Type: models.ActionDraw, PlayerID: gs.CurrentPlayer}
	first, err := m.ExecuteAction("m1", action, ActionMeta{ActionID: "a-1", ExpectedRevision: -1})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := m.ExecuteAction("m1", action, ActionMeta{ActionID: "a-1", ExpectedRevision: -1})
	if err != nil {
		t.Fatalf("second: %v", err)
	}

	if !second.Duplicate {
		t.Errorf("repeated action id should be reported as duplicate")
	}
	if second.Revision != first.Revision {
		t.Errorf("duplicate must not advance the revision")
	}
}

func TestManagerRejectedActionKeepsState(t *testing.T) {
	m := NewManager()
	gs, err := m.CreateGame("m1", 11, [2]string{"Alice", "Bob"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	wrong := Opponent(gs.CurrentPlayer)
	if _, err := m.ExecuteAction("m1", models.Action{Type: models.ActionDraw, PlayerID: wrong}, ActionMeta{ExpectedRevision: -1}); err == nil {
		t.Fatalf("off-turn action should fail")
	}

	rev, _ := m.GetRevision("m1")
	if rev != 0 {
		t.Errorf("failed action must not advance the revision, got %d", rev)
	}
	record, _ := m.GetRecord("m1")
	if len(record.Log) != 0 {
		t.Errorf("failed action must not be recorded")
	}
}

func TestManagerRecordsLog(t *testing.T) {
	m := NewManager()
	gs, err := m.CreateGame("m1", 11, [2]string{"Alice", "Bob"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 3; i++ {
		out, err := m.ExecuteAction("m1", models.Action{Type: models.ActionDraw, PlayerID: gs.CurrentPlayer}, ActionMeta{ExpectedRevision: -1})
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		gs = out.Step.NewState
	}

	record, ok := m.GetRecord("m1")
	if !ok || len(record.Log) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(record.Log))
	}
	for i, entry := range record.Log {
		if entry.Action == nil {
			t.Errorf("entry %d should be an action", i)
		}
	}
}
