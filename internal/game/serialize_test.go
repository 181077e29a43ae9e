package game

import (
	"encoding/json"
	"testing"

	"github.com/lukev/innovation_server/internal/models"
)

func TestSerializeRoundTrip(t *testing.T) {
	gs, err := InitializeGame(InitOptions{GameID: "g1", Seed: 55, PlayerNames: [2]string{"Alice", "Bob"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, err := Serialize(gs)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	blob, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	restored, err := Deserialize(blob)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}

	sumA, err := ComputeChecksum(gs)
	if err != nil {
		t.Fatalf("checksum: %v", err)
	}
	sumB, err := ComputeChecksum(restored)
	if err != nil {
		t.Fatalf("checksum: %v", err)
	}
	if sumA != sumB {
		t.Errorf("round trip changed the state: %s vs %s", sumA, sumB)
	}
}

func TestSerializeMidChoiceRoundTrip(t *testing.T) {
	gs := bareState()
	putOnBoard(gs.Players[0], 5, 1)
	gs.Players[0].Hand = []int{6}
	putOnBoard(gs.Players[1], 11)

	res, err := ProcessAction(gs, models.Action{Type: models.ActionDogma, PlayerID: 0, CardID: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NextPhase != PhaseAwaitingChoice {
		t.Fatalf("expected pending choice")
	}

	snap, err := Serialize(res.NewState)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	blob, _ := json.Marshal(snap)
	restored, err := Deserialize(blob)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}

	// The restored state must still accept the pending choice answer.
	no := false
	res2, err := ProcessChoice(restored, models.ChoiceAnswer{
		ChoiceID: res.PendingChoice.ID, PlayerID: 0, Yes: &no,
	})
	if err != nil {
		t.Fatalf("restored state rejected the choice: %v", err)
	}
	if res2.NextPhase != PhaseAwaitingAction {
		t.Errorf("expected AwaitingAction, got %v", res2.NextPhase)
	}
}

func TestRepeatedSerializationStableChecksum(t *testing.T) {
	gs, err := InitializeGame(InitOptions{GameID: "g1", Seed: 9, PlayerNames: [2]string{"Alice", "Bob"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, err := Serialize(gs)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	b, err := Serialize(gs)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if a.Checksum != b.Checksum {
		t.Errorf("repeated serialization should yield the same checksum: %s vs %s", a.Checksum, b.Checksum)
	}
}

func TestDeserializeDetectsCorruption(t *testing.T) {
	gs, err := InitializeGame(InitOptions{GameID: "g1", Seed: 3, PlayerNames: [2]string{"Alice", "Bob"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap, err := Serialize(gs)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	snap.Checksum = "deadbeefdeadbeef"
	blob, _ := json.Marshal(snap)
	_, err = Deserialize(blob)
	if _, ok := err.(*InvariantError); !ok {
		t.Errorf("expected InvariantError on checksum mismatch, got %v", err)
	}
}

func TestChecksumIgnoresEventTimestamps(t *testing.T) {
	gs, err := InitializeGame(InitOptions{GameID: "g1", Seed: 3, PlayerNames: [2]string{"Alice", "Bob"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before, err := ComputeChecksum(gs)
	if err != nil {
		t.Fatalf("checksum: %v", err)
	}

	shifted := gs.Clone()
	for i := range shifted.EventLog {
		shifted.EventLog[i].Timestamp = shifted.EventLog[i].Timestamp.AddDate(0, 0, 1)
	}
	after, err := ComputeChecksum(shifted)
	if err != nil {
		t.Fatalf("checksum: %v", err)
	}
	if before != after {
		t.Errorf("checksum must not depend on event timestamps")
	}
}
