package game

import (
	"github.com/lukev/innovation_server/internal/cards"
	"github.com/lukev/innovation_server/internal/models"
)

// Covered-card positions revealed by each splay direction. Slot order is
// top, left, middle, right: splaying left exposes the rightmost position,
// right the leftmost two, up the top three.
var splayRevealed = map[models.Splay][]models.IconPosition{
	models.SplayLeft:  {models.PositionRight},
	models.SplayRight: {models.PositionTop, models.PositionLeft},
	models.SplayUp:    {models.PositionTop, models.PositionLeft, models.PositionMiddle},
}

// CountIcons returns the number of visible icons of the given type on a
// player's board. The top card of each stack shows all four positions;
// covered cards contribute positions according to the splay direction.
// Card-image positions are empty and never count.
func CountIcons(gs *GameState, player int, icon models.Icon) int {
	p := gs.GetPlayer(player)
	if p == nil {
		return 0
	}

	total := 0
	for c := range p.Stacks {
		stack := &p.Stacks[c]
		n := len(stack.Cards)
		if n == 0 {
			continue
		}

		top := cards.MustGet(stack.Cards[n-1])
		total += top.IconCount(icon)

		splay := stack.EffectiveSplay()
		if splay == models.SplayNone {
			continue
		}
		revealed := splayRevealed[splay]
		for _, id := range stack.Cards[:n-1] {
			def := cards.MustGet(id)
			for _, pos := range revealed {
				if def.Positions[pos] == icon {
					total++
				}
			}
		}
	}
	return total
}

// VisibleIconTotal sums every visible icon of every basic type.
func VisibleIconTotal(gs *GameState, player int) int {
	total := 0
	for _, icon := range models.BasicIcons {
		total += CountIcons(gs, player, icon)
	}
	return total
}
