package game

import (
	"sort"

	"github.com/lukev/innovation_server/internal/cards"
	"github.com/lukev/innovation_server/internal/models"
	"github.com/lukev/innovation_server/internal/rng"
)

// InitOptions configures game creation.
type InitOptions struct {
	GameID      string
	Seed        int64
	PlayerNames [NumPlayers]string
}

// StepResult reports one completed engine call. NewState is a fresh clone;
// the input state is never mutated.
type StepResult struct {
	NewState      *GameState     `json:"newState"`
	Events        []models.Event `json:"events"`
	NextPhase     GamePhase      `json:"nextPhase"`
	PendingChoice *models.Choice `json:"pendingChoice,omitempty"`
	Winner        *int           `json:"winner,omitempty"`
	WinCondition  WinCondition   `json:"winCondition,omitempty"`
}

// InitializeGame builds the starting state for a seed: shuffled supply
// piles, one hidden achievement per age 1-9, two age-1 cards dealt to each
// player with the first melded. The starting player is the one whose
// melded card title sorts alphabetically earliest, and takes one action.
func InitializeGame(opts InitOptions) (*GameState, error) {
	gs := &GameState{
		GameID:           opts.GameID,
		Seed:             opts.Seed,
		Phase:            PhaseAwaitingAction,
		TurnNumber:       1,
		ActionsRemaining: 1,
		AvailableSpecial: append([]SpecialAchievement(nil), AllSpecialAchievements...),
	}
	for i := 0; i < NumPlayers; i++ {
		gs.Players[i] = &Player{ID: i, Name: opts.PlayerNames[i]}
	}

	r := rng.New(opts.Seed)
	for age := 1; age <= cards.MaxAge; age++ {
		pile := cards.IDsForAge(age)
		r.Shuffle(pile)
		gs.Supply[age] = pile
	}

	// One face-down achievement per age 1-9, taken off the shuffled pile.
	for age := 1; age < cards.MaxAge; age++ {
		pile := gs.Supply[age]
		gs.AvailableAchievements[age] = pile[len(pile)-1]
		gs.Supply[age] = pile[:len(pile)-1]
	}

	gs.RNG = r.State()

	// Deal two age-1 cards to each player; the first drawn is melded.
	var melded [NumPlayers]int
	for pid := 0; pid < NumPlayers; pid++ {
		first, err := Draw(gs, pid, 1, "setup")
		if err != nil {
			return nil, err
		}
		if _, err := Draw(gs, pid, 1, "setup"); err != nil {
			return nil, err
		}
		if err := Meld(gs, pid, first, "setup"); err != nil {
			return nil, err
		}
		melded[pid] = first
	}

	// Alphabetically earliest melded title starts, with a single action.
	names := []string{cards.MustGet(melded[0]).Name, cards.MustGet(melded[1]).Name}
	if sort.StringsAreSorted(names) {
		gs.CurrentPlayer = 0
	} else {
		gs.CurrentPlayer = 1
	}

	for pid := 0; pid < NumPlayers; pid++ {
		gs.Players[pid].TurnActions = TurnActions{}
	}

	gs.emit("engine", models.EventStartTurn, map[string]any{
		"player": gs.CurrentPlayer,
		"turn":   gs.TurnNumber,
	})
	return gs, nil
}

// ProcessAction validates and applies one player action. Illegal actions
// return a coded error and leave the state untouched; legal ones return a
// new state plus the events the action produced. A dogma that suspends on
// a choice reports the pending choice and awaits ProcessChoice.
func ProcessAction(gs *GameState, action models.Action) (*StepResult, error) {
	if err := CheckAction(gs, action); err != nil {
		return nil, err
	}

	work := gs.Clone()
	mark := len(work.EventLog)

	var err error
	switch action.Type {
	case models.ActionDraw:
		_, err = Draw(work, action.PlayerID, work.GetPlayer(action.PlayerID).HighestTopAge(), "action")
	case models.ActionMeld:
		err = Meld(work, action.PlayerID, action.CardID, "action")
	case models.ActionAchieve:
		err = claimNormal(work, action.PlayerID, action.AchievementAge)
	case models.ActionDogma:
		err = startDogma(work, action.PlayerID, action.CardID)
	}
	if err != nil {
		return nil, err
	}

	if work.Phase != PhaseAwaitingChoice {
		completeAction(work)
	}
	return stepResult(work, mark), nil
}

// ProcessChoice answers the pending choice and resumes the suspended
// dogma resolution. Mismatched or invalid answers are rejected with the
// state untouched.
func ProcessChoice(gs *GameState, ans models.ChoiceAnswer) (*StepResult, error) {
	if gs.Phase != PhaseAwaitingChoice {
		return nil, illegalChoice(models.ReasonWrongPhase, "no choice is pending")
	}
	if gs.ActiveEffect == nil {
		return nil, invariant("AwaitingChoice with no active effect")
	}
	if err := ValidateAnswer(gs.ActiveEffect.Choice, ans); err != nil {
		return nil, err
	}

	work := gs.Clone()
	mark := len(work.EventLog)
	work.ActiveEffect.Choice = nil

	if err := driveDogma(work, &ans); err != nil {
		return nil, err
	}

	if work.Phase != PhaseAwaitingChoice {
		completeAction(work)
	}
	return stepResult(work, mark), nil
}

// completeAction runs the bookkeeping after an action fully resolves:
// special-achievement auto-claims, victory detection, action consumption,
// and turn advancement.
func completeAction(gs *GameState) {
	if gs.Phase == PhaseGameOver {
		return
	}

	autoClaimSpecial(gs)
	checkAchievementVictory(gs)
	if gs.Phase == PhaseGameOver {
		return
	}

	gs.ActionsRemaining--
	if gs.ActionsRemaining > 0 {
		return
	}

	gs.emit("engine", models.EventEndTurn, map[string]any{
		"player": gs.CurrentPlayer,
		"turn":   gs.TurnNumber,
	})

	gs.CurrentPlayer = Opponent(gs.CurrentPlayer)
	gs.TurnNumber++
	gs.ActionsRemaining = 2
	for pid := 0; pid < NumPlayers; pid++ {
		gs.Players[pid].TurnActions = TurnActions{}
	}

	gs.emit("engine", models.EventStartTurn, map[string]any{
		"player": gs.CurrentPlayer,
		"turn":   gs.TurnNumber,
	})
}

func stepResult(work *GameState, mark int) *StepResult {
	res := &StepResult{
		NewState:     work,
		Events:       work.eventsSince(mark),
		NextPhase:    work.Phase,
		Winner:       work.Winner,
		WinCondition: work.WinCondition,
	}
	if work.ActiveEffect != nil {
		res.PendingChoice = work.ActiveEffect.Choice
	}
	return res
}
