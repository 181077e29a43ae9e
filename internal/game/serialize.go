package game

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"
)

// SnapshotVersion is bumped when the persisted layout changes.
const SnapshotVersion = 1

// Snapshot is the persisted form of a game state. The checksum covers the
// canonical JSON of the state with event timestamps blanked, so replaying
// the same seed and action stream produces an identical checksum.
type Snapshot struct {
	Version   int             `json:"version"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
	Checksum  string          `json:"checksum"`
}

// ComputeChecksum hashes the canonical state. JSON marshaling emits struct
// fields in declared order and map keys sorted, which is the canonical
// ordering the contract requires.
func ComputeChecksum(gs *GameState) (string, error) {
	canon := gs.Clone()
	for i := range canon.EventLog {
		canon.EventLog[i].Timestamp = time.Time{}
	}
	raw, err := json.Marshal(canon)
	if err != nil {
		return "", fmt.Errorf("checksum marshal: %w", err)
	}
	h := fnv.New64a()
	h.Write(raw)
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// Serialize captures the state as a versioned, checksummed snapshot.
func Serialize(gs *GameState) (*Snapshot, error) {
	data, err := json.Marshal(gs)
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}
	sum, err := ComputeChecksum(gs)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Version:   SnapshotVersion,
		Timestamp: time.Now(),
		Data:      data,
		Checksum:  sum,
	}, nil
}

// Deserialize restores a snapshot, verifying its checksum. A mismatch is
// corruption and surfaces as an InvariantError.
func Deserialize(blob []byte) (*GameState, error) {
	var snap Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return nil, fmt.Errorf("deserialize: %w", err)
	}
	return RestoreSnapshot(&snap)
}

// RestoreSnapshot rebuilds the state from an already-parsed snapshot.
func RestoreSnapshot(snap *Snapshot) (*GameState, error) {
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("deserialize: unsupported snapshot version %d", snap.Version)
	}
	var gs GameState
	if err := json.Unmarshal(snap.Data, &gs); err != nil {
		return nil, fmt.Errorf("deserialize: %w", err)
	}
	sum, err := ComputeChecksum(&gs)
	if err != nil {
		return nil, err
	}
	if sum != snap.Checksum {
		return nil, invariant("snapshot checksum mismatch: stored %s, computed %s", snap.Checksum, sum)
	}
	return &gs, nil
}
