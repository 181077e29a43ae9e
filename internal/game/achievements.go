package game

import (
	"github.com/lukev/innovation_server/internal/cards"
	"github.com/lukev/innovation_server/internal/models"
)

// specialConditionMet evaluates one special achievement for a player.
func specialConditionMet(gs *GameState, player int, ach SpecialAchievement) bool {
	p := gs.GetPlayer(player)
	switch ach {
	case AchMonument:
		return len(p.TurnActions.Scored) >= 6 || len(p.TurnActions.Tucked) >= 6
	case AchEmpire:
		for _, icon := range models.BasicIcons {
			if CountIcons(gs, player, icon) < 3 {
				return false
			}
		}
		return true
	case AchWorld:
		return VisibleIconTotal(gs, player) >= 12
	case AchWonder:
		for c := range p.Stacks {
			if p.Stacks[c].EffectiveSplay() == models.SplayNone {
				return false
			}
		}
		return true
	case AchUniverse:
		for c := range p.Stacks {
			top := p.Stacks[c].TopCard()
			if top == 0 || cards.MustGet(top).Age < 8 {
				return false
			}
		}
		return true
	}
	return false
}

// autoClaimSpecial claims every special achievement whose condition a
// player meets. The current player is checked first, then clockwise, so
// simultaneous qualification resolves in the current player's favor.
func autoClaimSpecial(gs *GameState) {
	order := []int{gs.CurrentPlayer, Opponent(gs.CurrentPlayer)}
	for _, player := range order {
		p := gs.GetPlayer(player)
		remaining := gs.AvailableSpecial[:0:0]
		for _, ach := range gs.AvailableSpecial {
			if specialConditionMet(gs, player, ach) {
				p.SpecialAchievements = append(p.SpecialAchievements, ach)
				gs.emit("engine", models.EventAchievementClaimed, map[string]any{
					"player":      player,
					"achievement": string(ach),
					"kind":        "special",
				})
			} else {
				remaining = append(remaining, ach)
			}
		}
		gs.AvailableSpecial = remaining
	}
}

// claimNormal assigns an available age achievement to the player. The
// preconditions were already checked by legality.
func claimNormal(gs *GameState, player, age int) error {
	card := gs.AvailableAchievements[age]
	if card == 0 {
		return invariant("claimNormal: age %d achievement already taken", age)
	}
	gs.AvailableAchievements[age] = 0
	p := gs.GetPlayer(player)
	p.NormalAchievements = append(p.NormalAchievements, card)

	gs.emit("engine", models.EventAchievementClaimed, map[string]any{
		"player": player,
		"age":    age,
		"card":   card,
		"kind":   "normal",
	})
	return nil
}

// checkAchievementVictory ends the game when a player holds enough
// achievements. Current player first so a simultaneous sixth achievement
// resolves in their favor.
func checkAchievementVictory(gs *GameState) {
	if gs.Phase == PhaseGameOver {
		return
	}
	order := []int{gs.CurrentPlayer, Opponent(gs.CurrentPlayer)}
	for _, player := range order {
		if gs.GetPlayer(player).AchievementCount() >= AchievementsToWin {
			winner := player
			gs.Winner = &winner
			gs.WinCondition = WinAchievements
			gs.Phase = PhaseGameOver
			gs.ActiveEffect = nil
			gs.emit("engine", models.EventGameEnd, map[string]any{
				"winCondition": string(WinAchievements),
				"winner":       winner,
			})
			return
		}
	}
}

// endGameByScore finishes the game when a draw would need to exceed age
// 10. Higher score wins; ties go to more achievements; a full tie is a
// draw with no winner.
func endGameByScore(gs *GameState, source string) {
	s0 := gs.Players[0].ScorePoints()
	s1 := gs.Players[1].ScorePoints()

	var winner *int
	switch {
	case s0 > s1:
		w := 0
		winner = &w
	case s1 > s0:
		w := 1
		winner = &w
	default:
		a0 := gs.Players[0].AchievementCount()
		a1 := gs.Players[1].AchievementCount()
		if a0 > a1 {
			w := 0
			winner = &w
		} else if a1 > a0 {
			w := 1
			winner = &w
		}
	}

	gs.Winner = winner
	gs.WinCondition = WinScore
	gs.Phase = PhaseGameOver
	gs.ActiveEffect = nil

	data := map[string]any{
		"winCondition": string(WinScore),
		"finalScores":  []int{s0, s1},
	}
	if winner != nil {
		data["winner"] = *winner
	}
	gs.emit(source, models.EventGameEnd, data)
}

// EndGameSpecial is the reserved hook for card-triggered immediate wins.
// No base-set card drives it yet; replay tooling and tests exercise it.
func EndGameSpecial(gs *GameState, winner int, source string) {
	w := winner
	gs.Winner = &w
	gs.WinCondition = WinSpecial
	gs.Phase = PhaseGameOver
	gs.ActiveEffect = nil
	gs.emit(source, models.EventGameEnd, map[string]any{
		"winCondition": string(WinSpecial),
		"winner":       winner,
	})
}
