package game

import (
	"github.com/lukev/innovation_server/internal/models"
)

// ValidateAnswer checks a choice answer against the pending choice:
// matching id and player, then kind-specific constraints. State is never
// consulted beyond the choice itself.
func ValidateAnswer(choice *models.Choice, ans models.ChoiceAnswer) error {
	if choice == nil {
		return illegalChoice(models.ReasonChoiceMismatch, "no choice is pending")
	}
	if ans.ChoiceID != choice.ID {
		return illegalChoice(models.ReasonChoiceMismatch, "choice id %d, expected %d", ans.ChoiceID, choice.ID)
	}
	if ans.PlayerID != choice.PlayerID {
		return illegalChoice(models.ReasonChoiceMismatch, "answer from player %d, expected %d", ans.PlayerID, choice.PlayerID)
	}

	switch choice.Kind {
	case models.ChoiceSelectCards:
		if len(ans.Cards) < choice.MinCards || len(ans.Cards) > choice.MaxCards {
			return illegalChoice(models.ReasonInvalidAnswer, "selected %d cards, need %d-%d", len(ans.Cards), choice.MinCards, choice.MaxCards)
		}
		allowed := make(map[int]bool, len(choice.Cards))
		for _, id := range choice.Cards {
			allowed[id] = true
		}
		seen := make(map[int]bool, len(ans.Cards))
		for _, id := range ans.Cards {
			if !allowed[id] {
				return illegalChoice(models.ReasonInvalidAnswer, "card %d is not a candidate", id)
			}
			if seen[id] {
				return illegalChoice(models.ReasonInvalidAnswer, "card %d selected twice", id)
			}
			seen[id] = true
		}
		return nil

	case models.ChoiceSelectPile:
		if ans.Color == nil {
			return illegalChoice(models.ReasonInvalidAnswer, "missing color")
		}
		for _, c := range choice.AvailableColors {
			if c == *ans.Color {
				return nil
			}
		}
		return illegalChoice(models.ReasonInvalidAnswer, "color %s is not available", ans.Color)

	case models.ChoiceOrderCards:
		if len(ans.Order) != len(choice.OrderCards) {
			return illegalChoice(models.ReasonInvalidAnswer, "order names %d cards, expected %d", len(ans.Order), len(choice.OrderCards))
		}
		want := make(map[int]int)
		for _, id := range choice.OrderCards {
			want[id]++
		}
		for _, id := range ans.Order {
			if want[id] == 0 {
				return illegalChoice(models.ReasonInvalidAnswer, "card %d is not part of the ordering", id)
			}
			want[id]--
		}
		return nil

	case models.ChoiceYesNo:
		if ans.Yes == nil {
			return illegalChoice(models.ReasonInvalidAnswer, "missing yes/no")
		}
		return nil

	case models.ChoiceSelectPlayer:
		if ans.Player == nil {
			return illegalChoice(models.ReasonInvalidAnswer, "missing player")
		}
		for _, p := range choice.AvailablePlayers {
			if p == *ans.Player {
				return nil
			}
		}
		return illegalChoice(models.ReasonInvalidAnswer, "player %d is not available", *ans.Player)

	default:
		return illegalChoice(models.ReasonInvalidAnswer, "unknown choice kind %q", choice.Kind)
	}
}

// ExpandChoice enumerates every valid answer to a choice. Bots and tests
// use it; every returned answer passes ValidateAnswer.
func ExpandChoice(choice *models.Choice, gs *GameState) []models.ChoiceAnswer {
	if choice == nil {
		return nil
	}
	base := models.ChoiceAnswer{ChoiceID: choice.ID, PlayerID: choice.PlayerID}
	var out []models.ChoiceAnswer

	switch choice.Kind {
	case models.ChoiceYesNo:
		yes, no := true, false
		a, b := base, base
		a.Yes = &yes
		b.Yes = &no
		out = append(out, a, b)

	case models.ChoiceSelectPile:
		for _, c := range choice.AvailableColors {
			color := c
			a := base
			a.Color = &color
			out = append(out, a)
		}

	case models.ChoiceSelectPlayer:
		for _, p := range choice.AvailablePlayers {
			player := p
			a := base
			a.Player = &player
			out = append(out, a)
		}

	case models.ChoiceSelectCards:
		for size := choice.MinCards; size <= choice.MaxCards; size++ {
			for _, combo := range combinations(choice.Cards, size) {
				a := base
				a.Cards = combo
				out = append(out, a)
			}
		}

	case models.ChoiceOrderCards:
		for _, perm := range permutations(choice.OrderCards) {
			a := base
			a.Order = perm
			out = append(out, a)
		}
	}
	return out
}

// combinations returns every size-k subset of ids, preserving order.
func combinations(ids []int, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}
	if k > len(ids) {
		return nil
	}
	var out [][]int
	// Include ids[0] or not.
	for _, rest := range combinations(ids[1:], k-1) {
		combo := append([]int{ids[0]}, rest...)
		out = append(out, combo)
	}
	out = append(out, combinations(ids[1:], k)...)
	return out
}

func permutations(ids []int) [][]int {
	if len(ids) <= 1 {
		return [][]int{append([]int(nil), ids...)}
	}
	var out [][]int
	for i := range ids {
		rest := make([]int, 0, len(ids)-1)
		rest = append(rest, ids[:i]...)
		rest = append(rest, ids[i+1:]...)
		for _, perm := range permutations(rest) {
			out = append(out, append([]int{ids[i]}, perm...))
		}
	}
	return out
}
