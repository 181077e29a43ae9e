package game

import (
	"github.com/lukev/innovation_server/internal/cards"
	"github.com/lukev/innovation_server/internal/models"
	"github.com/lukev/innovation_server/internal/rng"
)

// NumPlayers is fixed for the two-player base game.
const NumPlayers = 2

// AchievementsToWin is the two-player victory threshold (8 - players).
const AchievementsToWin = 6

// GamePhase represents the current phase of the game
type GamePhase int

const (
	PhaseAwaitingAction GamePhase = iota
	PhaseAwaitingChoice
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseAwaitingAction:
		return "AwaitingAction"
	case PhaseAwaitingChoice:
		return "AwaitingChoice"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// WinCondition tags how a finished game ended.
type WinCondition string

const (
	WinAchievements WinCondition = "achievements"
	WinScore        WinCondition = "score"
	WinSpecial      WinCondition = "special" // card-triggered immediate win
)

// SpecialAchievement names the five special achievements.
type SpecialAchievement string

const (
	AchMonument SpecialAchievement = "Monument"
	AchEmpire   SpecialAchievement = "Empire"
	AchWorld    SpecialAchievement = "World"
	AchWonder   SpecialAchievement = "Wonder"
	AchUniverse SpecialAchievement = "Universe"
)

// AllSpecialAchievements lists the pool in claim-check order.
var AllSpecialAchievements = []SpecialAchievement{AchMonument, AchEmpire, AchWorld, AchWonder, AchUniverse}

// Stack is one color pile on a player's board, ordered bottom to top.
// The splay direction is meaningful only with two or more cards.
type Stack struct {
	Cards []int        `json:"cards"`
	Splay models.Splay `json:"splay"`
}

// TopCard returns the stack's top card id, or 0 when empty.
func (s *Stack) TopCard() int {
	if s == nil || len(s.Cards) == 0 {
		return 0
	}
	return s.Cards[len(s.Cards)-1]
}

// EffectiveSplay returns the splay direction, treating stacks with fewer
// than two cards as unsplayed.
func (s *Stack) EffectiveSplay() models.Splay {
	if s == nil || len(s.Cards) < 2 {
		return models.SplayNone
	}
	return s.Splay
}

// TurnActions is the per-player, per-turn scratchpad backing the Monument
// achievement. It resets when the turn advances.
type TurnActions struct {
	Scored []int `json:"scored"`
	Tucked []int `json:"tucked"`
	Melded []int `json:"melded"`
}

// Player holds one player's zones and claimed achievements.
type Player struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Hand   []int  `json:"hand"`
	Stacks [models.NumColors]Stack `json:"stacks"`
	Score  []int  `json:"score"`

	NormalAchievements  []int                `json:"normalAchievements"` // claimed achievement card ids
	SpecialAchievements []SpecialAchievement `json:"specialAchievements"`

	TurnActions TurnActions `json:"turnActions"`
}

// ScorePoints sums the ages of the player's score pile.
func (p *Player) ScorePoints() int {
	total := 0
	for _, id := range p.Score {
		total += cards.MustGet(id).Age
	}
	return total
}

// AchievementCount is the player's total claimed achievements.
func (p *Player) AchievementCount() int {
	return len(p.NormalAchievements) + len(p.SpecialAchievements)
}

// TopCards returns the top card of each non-empty stack, in color order.
func (p *Player) TopCards() []int {
	var tops []int
	for c := range p.Stacks {
		if id := p.Stacks[c].TopCard(); id != 0 {
			tops = append(tops, id)
		}
	}
	return tops
}

// HighestTopAge returns the player's highest top card age, with a floor of
// 1 so a player with an empty board still draws 1s.
func (p *Player) HighestTopAge() int {
	highest := 1
	for _, id := range p.TopCards() {
		if age := cards.MustGet(id).Age; age > highest {
			highest = age
		}
	}
	return highest
}

// HasInHand reports whether the card id is in the player's hand.
func (p *Player) HasInHand(card int) bool {
	for _, id := range p.Hand {
		if id == card {
			return true
		}
	}
	return false
}

// ActiveEffect is the resolver's frozen continuation: which card is
// resolving, where in the effect/executor walk it stands, the effect's
// opaque state, and the pending choice if suspended. It exists exactly
// while a dogma action is between steps or awaiting a choice.
type ActiveEffect struct {
	CardID      int   `json:"cardId"`
	Activator   int   `json:"activator"`
	EffectIndex int   `json:"effectIndex"`
	Executors   []int `json:"executors,omitempty"`
	ExecIndex   int   `json:"execIndex"`
	Started     bool  `json:"started"`

	Sharing  []int `json:"sharing"`
	Affected []int `json:"affected"`

	EffectState map[string]any `json:"effectState,omitempty"`
	Choice      *models.Choice `json:"choice,omitempty"`

	EventMark       int  `json:"eventMark"`
	OpponentChanged bool `json:"opponentChanged"`
	DemandChanged   bool `json:"demandChanged"`
}

// GameState is the complete game state. ProcessAction and ProcessChoice
// never mutate their input; they clone, apply, and return the clone.
type GameState struct {
	GameID string    `json:"gameId"`
	Seed   int64     `json:"seed"`
	RNG    rng.State `json:"rng"`

	Phase            GamePhase `json:"phase"`
	CurrentPlayer    int       `json:"currentPlayer"`
	TurnNumber       int       `json:"turnNumber"`
	ActionsRemaining int       `json:"actionsRemaining"`

	Players [NumPlayers]*Player `json:"players"`

	// Supply[age] is the pile for that age; index 0 is unused.
	Supply [cards.MaxAge + 1][]int `json:"supply"`

	// AvailableAchievements[age] holds the face-down achievement card for
	// ages 1-9, or 0 once claimed. Index 0 is unused.
	AvailableAchievements [cards.MaxAge]int `json:"availableAchievements"`

	AvailableSpecial []SpecialAchievement `json:"availableSpecial"`

	EventLog     []models.Event `json:"eventLog"`
	NextEventID  int            `json:"nextEventId"`
	NextChoiceID int            `json:"nextChoiceId"`

	ActiveEffect *ActiveEffect `json:"activeEffect,omitempty"`

	Winner       *int         `json:"winner,omitempty"`
	WinCondition WinCondition `json:"winCondition,omitempty"`
}

// GetPlayer returns a player by id, or nil for out-of-range ids.
func (gs *GameState) GetPlayer(id int) *Player {
	if id < 0 || id >= NumPlayers {
		return nil
	}
	return gs.Players[id]
}

// Opponent returns the other player's id.
func Opponent(player int) int {
	return 1 - player
}

// FindCardZone locates a card id across every zone of the state. It
// returns the owning player (-1 for shared zones) and the zone name.
func (gs *GameState) FindCardZone(card int) (owner int, zone string) {
	for age := 1; age <= cards.MaxAge; age++ {
		for _, id := range gs.Supply[age] {
			if id == card {
				return -1, "supply"
			}
		}
	}
	for age := 1; age < cards.MaxAge; age++ {
		if gs.AvailableAchievements[age] == card {
			return -1, "achievements"
		}
	}
	for pid, p := range gs.Players {
		for _, id := range p.Hand {
			if id == card {
				return pid, "hand"
			}
		}
		for c := range p.Stacks {
			for _, id := range p.Stacks[c].Cards {
				if id == card {
					return pid, "board"
				}
			}
		}
		for _, id := range p.Score {
			if id == card {
				return pid, "score"
			}
		}
		for _, id := range p.NormalAchievements {
			if id == card {
				return pid, "claimed"
			}
		}
	}
	return -1, ""
}
