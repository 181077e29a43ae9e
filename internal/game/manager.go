package game

import (
	"fmt"
	"sync"

	"github.com/lukev/innovation_server/internal/models"
)

// ActionMeta provides metadata for action execution.
type ActionMeta struct {
	ActionID         string
	ExpectedRevision int
}

// ActionOutcome reports action execution outcome alongside the step.
type ActionOutcome struct {
	Revision  int
	Duplicate bool
	Step      *StepResult
}

// RevisionMismatchError indicates stale optimistic concurrency data.
type RevisionMismatchError struct {
	Expected int
	Current  int
}

func (e *RevisionMismatchError) Error() string {
	return fmt.Sprintf("revision mismatch: expected %d, current %d", e.Expected, e.Current)
}

// LogEntry records one accepted mutation for replay.
type LogEntry struct {
	Action *models.Action       `json:"action,omitempty"`
	Answer *models.ChoiceAnswer `json:"answer,omitempty"`
}

// GameRecord is a game's full replayable history.
type GameRecord struct {
	GameID      string                  `json:"gameId"`
	Seed        int64                   `json:"seed"`
	PlayerNames [NumPlayers]string      `json:"playerNames"`
	Log         []LogEntry              `json:"log"`
}

// Manager handles multiple in-memory game instances.
type Manager struct {
	mu              sync.RWMutex
	games           map[string]*GameState
	records         map[string]*GameRecord
	revisions       map[string]int
	appliedActionID map[string]map[string]int
}

// NewManager creates a new game manager.
func NewManager() *Manager {
	return &Manager{
		games:           make(map[string]*GameState),
		records:         make(map[string]*GameRecord),
		revisions:       make(map[string]int),
		appliedActionID: make(map[string]map[string]int),
	}
}

// CreateGame initializes a new game with the given id, seed, and seats.
func (m *Manager) CreateGame(id string, seed int64, playerNames [NumPlayers]string) (*GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.games[id]; exists {
		return nil, fmt.Errorf("game already exists")
	}

	gs, err := InitializeGame(InitOptions{GameID: id, Seed: seed, PlayerNames: playerNames})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize game: %w", err)
	}

	m.games[id] = gs
	m.records[id] = &GameRecord{GameID: id, Seed: seed, PlayerNames: playerNames}
	m.revisions[id] = 0
	m.appliedActionID[id] = make(map[string]int)
	return gs.Clone(), nil
}

// GetGame retrieves a clone of a game's current state.
func (m *Manager) GetGame(id string) (*GameState, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	gs, ok := m.games[id]
	if !ok {
		return nil, false
	}
	return gs.Clone(), true
}

// GetRevision returns the current revision for a game.
func (m *Manager) GetRevision(id string) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.games[id]; !ok {
		return 0, false
	}
	return m.revisions[id], true
}

// GetRecord returns a copy of a game's replayable history.
func (m *Manager) GetRecord(id string) (*GameRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, false
	}
	out := &GameRecord{GameID: rec.GameID, Seed: rec.Seed, PlayerNames: rec.PlayerNames}
	out.Log = append(out.Log, rec.Log...)
	return out, true
}

// LegalActions enumerates a player's legal actions in a game.
func (m *Manager) LegalActions(gameID string, player int) ([]models.Action, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	gs, ok := m.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game %s not found", gameID)
	}
	return GetLegalActions(gs, player), nil
}

// ExecuteAction runs one player action with revision/idempotency checks.
func (m *Manager) ExecuteAction(gameID string, action models.Action, meta ActionMeta) (*ActionOutcome, error) {
	return m.execute(gameID, meta, func(gs *GameState) (*StepResult, error) {
		return ProcessAction(gs, action)
	}, LogEntry{Action: &action})
}

// ExecuteChoice answers the pending choice with the same bookkeeping.
func (m *Manager) ExecuteChoice(gameID string, ans models.ChoiceAnswer, meta ActionMeta) (*ActionOutcome, error) {
	return m.execute(gameID, meta, func(gs *GameState) (*StepResult, error) {
		return ProcessChoice(gs, ans)
	}, LogEntry{Answer: &ans})
}

func (m *Manager) execute(gameID string, meta ActionMeta, apply func(*GameState) (*StepResult, error), entry LogEntry) (*ActionOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	gs := m.games[gameID]
	if gs == nil {
		return nil, fmt.Errorf("game %s not found", gameID)
	}

	currentRevision := m.revisions[gameID]
	if meta.ActionID != "" {
		if _, exists := m.appliedActionID[gameID][meta.ActionID]; exists {
			return &ActionOutcome{Revision: currentRevision, Duplicate: true}, nil
		}
	}

	if meta.ExpectedRevision >= 0 && meta.ExpectedRevision != currentRevision {
		return nil, &RevisionMismatchError{Expected: meta.ExpectedRevision, Current: currentRevision}
	}

	step, err := apply(gs)
	if err != nil {
		return nil, err
	}

	m.games[gameID] = step.NewState
	m.records[gameID].Log = append(m.records[gameID].Log, entry)

	currentRevision++
	m.revisions[gameID] = currentRevision
	if meta.ActionID != "" {
		m.appliedActionID[gameID][meta.ActionID] = currentRevision
	}

	return &ActionOutcome{Revision: currentRevision, Step: step}, nil
}

// SerializeGameState converts a game to a JSON-friendly map for clients.
func (m *Manager) SerializeGameState(gameID string) map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	gs := m.games[gameID]
	if gs == nil {
		return nil
	}
	return SerializeStateWithRevision(gs, gameID, m.revisions[gameID])
}

// SerializeStateWithRevision converts game state to a JSON-friendly map
// including the manager revision.
func SerializeStateWithRevision(gs *GameState, gameID string, revision int) map[string]any {
	players := make([]map[string]any, 0, NumPlayers)
	for _, p := range gs.Players {
		stacks := make(map[string]any)
		for c := range p.Stacks {
			color := models.Color(c)
			stacks[color.String()] = map[string]any{
				"cards": p.Stacks[c].Cards,
				"splay": p.Stacks[c].EffectiveSplay().String(),
			}
		}
		players = append(players, map[string]any{
			"id":                  p.ID,
			"name":                p.Name,
			"handCount":           len(p.Hand),
			"hand":                p.Hand,
			"stacks":              stacks,
			"score":               p.ScorePoints(),
			"scoreCount":          len(p.Score),
			"normalAchievements":  p.NormalAchievements,
			"specialAchievements": p.SpecialAchievements,
		})
	}

	supply := make(map[string]int)
	for age := 1; age <= len(gs.Supply)-1; age++ {
		supply[fmt.Sprintf("%d", age)] = len(gs.Supply[age])
	}

	achievements := make([]int, 0)
	for age := 1; age < len(gs.AvailableAchievements); age++ {
		if gs.AvailableAchievements[age] != 0 {
			achievements = append(achievements, age)
		}
	}

	out := map[string]any{
		"id":                    gameID,
		"revision":              revision,
		"phase":                 gs.Phase.String(),
		"currentPlayer":         gs.CurrentPlayer,
		"turnNumber":            gs.TurnNumber,
		"actionsRemaining":      gs.ActionsRemaining,
		"players":               players,
		"supplyCounts":          supply,
		"availableAchievements": achievements,
		"availableSpecial":      gs.AvailableSpecial,
		"eventCount":            len(gs.EventLog),
		"finished":              gs.Phase == PhaseGameOver,
	}
	if gs.ActiveEffect != nil && gs.ActiveEffect.Choice != nil {
		out["pendingChoice"] = gs.ActiveEffect.Choice
	}
	if gs.Winner != nil {
		out["winner"] = *gs.Winner
	}
	if gs.WinCondition != "" {
		out["winCondition"] = string(gs.WinCondition)
	}
	return out
}
