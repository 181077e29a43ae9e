package game

import (
	"github.com/lukev/innovation_server/internal/cards"
	"github.com/lukev/innovation_server/internal/models"
)

// CheckAction validates an action against the current phase, player, and
// remaining actions, plus the action-specific preconditions. It never
// mutates state; a nil return means the action may be applied.
func CheckAction(gs *GameState, action models.Action) error {
	switch gs.Phase {
	case PhaseGameOver:
		return illegalAction(models.ReasonWrongPhase, "game is over")
	case PhaseAwaitingChoice:
		return illegalAction(models.ReasonWrongPhase, "a choice is pending")
	}

	if action.PlayerID != gs.CurrentPlayer {
		return illegalAction(models.ReasonWrongPlayer, "it is player %d's turn", gs.CurrentPlayer)
	}
	if gs.ActionsRemaining <= 0 {
		return illegalAction(models.ReasonNoActions, "no actions remaining")
	}

	player := gs.GetPlayer(action.PlayerID)

	switch action.Type {
	case models.ActionDraw:
		// Always legal on one's turn. Draws skip empty ages; running past
		// age 10 ends the game rather than failing.
		return nil

	case models.ActionMeld:
		if cards.Get(action.CardID) == nil {
			return illegalAction(models.ReasonInvalidCard, "unknown card %d", action.CardID)
		}
		if !player.HasInHand(action.CardID) {
			return illegalAction(models.ReasonCardNotInHand, "card %d", action.CardID)
		}
		return nil

	case models.ActionDogma:
		def := cards.Get(action.CardID)
		if def == nil {
			return illegalAction(models.ReasonInvalidCard, "unknown card %d", action.CardID)
		}
		if player.Stacks[def.Color].TopCard() != action.CardID {
			return illegalAction(models.ReasonNotTopCard, "card %d", action.CardID)
		}
		if len(def.Dogmas) == 0 {
			return illegalAction(models.ReasonNoEffects, "card %d has no dogma effects", action.CardID)
		}
		return nil

	case models.ActionAchieve:
		if action.AchievementType == models.AchievementSpecial {
			return illegalAction(models.ReasonAutoClaimOnly, "special achievements are auto-claimed")
		}
		age := action.AchievementAge
		if age < 1 || age >= cards.MaxAge {
			return illegalAction(models.ReasonInvalidCard, "no age-%d achievement exists", age)
		}
		if gs.AvailableAchievements[age] == 0 {
			return illegalAction(models.ReasonAchievementTaken, "age %d", age)
		}
		if player.ScorePoints() < 5*age {
			return illegalAction(models.ReasonInsufficientScore, "need %d points, have %d", 5*age, player.ScorePoints())
		}
		hasTop := false
		for _, id := range player.TopCards() {
			if cards.MustGet(id).Age >= age {
				hasTop = true
				break
			}
		}
		if !hasTop {
			return illegalAction(models.ReasonInsufficientTopCard, "need a top card of value >= %d", age)
		}
		return nil

	default:
		return illegalAction(models.ReasonInvalidCard, "unknown action type %q", action.Type)
	}
}

// GetLegalActions enumerates every legal action for a player: one draw,
// one meld per hand card, one dogma per activatable top card, and one
// achieve per claimable achievement.
func GetLegalActions(gs *GameState, player int) []models.Action {
	var out []models.Action

	candidates := []models.Action{{Type: models.ActionDraw, PlayerID: player}}

	p := gs.GetPlayer(player)
	if p != nil {
		for _, card := range p.Hand {
			candidates = append(candidates, models.Action{Type: models.ActionMeld, PlayerID: player, CardID: card})
		}
		for _, card := range p.TopCards() {
			candidates = append(candidates, models.Action{Type: models.ActionDogma, PlayerID: player, CardID: card})
		}
		for age := 1; age < cards.MaxAge; age++ {
			if gs.AvailableAchievements[age] != 0 {
				candidates = append(candidates, models.Action{
					Type:            models.ActionAchieve,
					PlayerID:        player,
					AchievementType: models.AchievementNormal,
					AchievementAge:  age,
				})
			}
		}
	}

	for _, a := range candidates {
		if CheckAction(gs, a) == nil {
			out = append(out, a)
		}
	}
	return out
}
