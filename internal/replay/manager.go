package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lukev/innovation_server/internal/game"
)

// ReplaySession is one in-progress replay.
type ReplaySession struct {
	GameID    string
	Simulator *GameSimulator
}

// ReplayManager holds replay sessions and loads recorded games from disk.
type ReplayManager struct {
	mu        sync.RWMutex
	sessions  map[string]*ReplaySession
	recordDir string
}

// NewReplayManager creates a manager reading records from recordDir.
func NewReplayManager(recordDir string) *ReplayManager {
	return &ReplayManager{
		sessions:  make(map[string]*ReplaySession),
		recordDir: recordDir,
	}
}

// LoadRecord reads a recorded game from <recordDir>/<gameID>.json.
func (m *ReplayManager) LoadRecord(gameID string) (*game.GameRecord, error) {
	path := filepath.Join(m.recordDir, gameID+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}
	var record game.GameRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to parse record: %w", err)
	}
	return &record, nil
}

// SaveRecord writes a recorded game to <recordDir>/<gameID>.json.
func (m *ReplayManager) SaveRecord(record *game.GameRecord) error {
	raw, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	path := filepath.Join(m.recordDir, record.GameID+".json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// StartReplay opens (or restarts) a replay session for a recorded game.
func (m *ReplayManager) StartReplay(gameID string, restart bool) (*ReplaySession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[gameID]; ok && !restart {
		return session, nil
	}

	record, err := m.LoadRecord(gameID)
	if err != nil {
		return nil, err
	}
	sim, err := NewGameSimulator(record)
	if err != nil {
		return nil, err
	}

	session := &ReplaySession{GameID: gameID, Simulator: sim}
	m.sessions[gameID] = session
	return session, nil
}

// StartReplayFromRecord opens a session from an in-memory record.
func (m *ReplayManager) StartReplayFromRecord(record *game.GameRecord) (*ReplaySession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sim, err := NewGameSimulator(record)
	if err != nil {
		return nil, err
	}
	session := &ReplaySession{GameID: record.GameID, Simulator: sim}
	m.sessions[record.GameID] = session
	return session, nil
}

// GetSession returns an open session or nil.
func (m *ReplayManager) GetSession(gameID string) *ReplaySession {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[gameID]
}
