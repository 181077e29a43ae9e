// Package replay re-runs recorded games against a fresh engine. The
// simulator steps through a game's action/choice log one entry at a time;
// the validator checks that the rebuilt states match the engine's
// determinism and invariant guarantees.
package replay

import (
	"fmt"
	"sync"

	"github.com/lukev/innovation_server/internal/game"
)

// GameSimulator manages the execution of a game replay.
type GameSimulator struct {
	mu           sync.RWMutex
	Record       *game.GameRecord
	InitialState *game.GameState
	CurrentState *game.GameState
	CurrentIndex int // index of the next log entry to execute
	History      []*game.GameState
}

// NewGameSimulator initializes a simulator from a recorded game. The
// initial state is rebuilt from the record's seed.
func NewGameSimulator(record *game.GameRecord) (*GameSimulator, error) {
	initial, err := game.InitializeGame(game.InitOptions{
		GameID:      record.GameID,
		Seed:        record.Seed,
		PlayerNames: record.PlayerNames,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild initial state: %w", err)
	}

	return &GameSimulator{
		Record:       record,
		InitialState: initial,
		CurrentState: initial.Clone(),
		History:      []*game.GameState{initial.Clone()},
	}, nil
}

// StepForward executes the next log entry.
func (s *GameSimulator) StepForward() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepLocked()
}

func (s *GameSimulator) stepLocked() error {
	if s.CurrentIndex >= len(s.Record.Log) {
		return fmt.Errorf("no more actions")
	}

	entry := s.Record.Log[s.CurrentIndex]
	var res *game.StepResult
	var err error
	switch {
	case entry.Action != nil:
		res, err = game.ProcessAction(s.CurrentState, *entry.Action)
	case entry.Answer != nil:
		res, err = game.ProcessChoice(s.CurrentState, *entry.Answer)
	default:
		return fmt.Errorf("log entry %d has neither action nor answer", s.CurrentIndex)
	}
	if err != nil {
		return fmt.Errorf("replay entry %d failed: %w", s.CurrentIndex, err)
	}

	s.CurrentState = res.NewState
	s.History = append(s.History, res.NewState.Clone())
	s.CurrentIndex++
	return nil
}

// StepBackward rewinds one entry using the history snapshots.
func (s *GameSimulator) StepBackward() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CurrentIndex == 0 {
		return fmt.Errorf("already at the start")
	}
	s.CurrentIndex--
	s.History = s.History[:len(s.History)-1]
	s.CurrentState = s.History[len(s.History)-1].Clone()
	return nil
}

// JumpTo replays from the start to the given entry index.
func (s *GameSimulator) JumpTo(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index > len(s.Record.Log) {
		return fmt.Errorf("index %d out of range [0, %d]", index, len(s.Record.Log))
	}

	if index < s.CurrentIndex {
		s.CurrentState = s.InitialState.Clone()
		s.History = []*game.GameState{s.InitialState.Clone()}
		s.CurrentIndex = 0
	}
	for s.CurrentIndex < index {
		if err := s.stepLocked(); err != nil {
			return err
		}
	}
	return nil
}

// GetState returns the current replay state.
func (s *GameSimulator) GetState() *game.GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.CurrentState
}

// Remaining reports how many log entries are left to execute.
func (s *GameSimulator) Remaining() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Record.Log) - s.CurrentIndex
}
