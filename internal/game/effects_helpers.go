package game

import (
	"github.com/lukev/innovation_server/internal/cards"
	"github.com/lukev/innovation_server/internal/models"
)

// Shared building blocks for card scripts. All of them act for the
// effect's current executor and stop quietly if a draw ends the game.

// drawCard draws for the executor, returning 0 when the supply ran out
// and the game ended on score.
func (ctx *effectContext) drawCard(age int) (int, error) {
	return Draw(ctx.gs, ctx.player, age, ctx.source)
}

func (ctx *effectContext) drawAndScore(age int) error {
	card, err := ctx.drawCard(age)
	if err != nil || card == 0 {
		return err
	}
	return ScoreCard(ctx.gs, ctx.player, card, ctx.source)
}

func (ctx *effectContext) drawAndMeld(age int) error {
	card, err := ctx.drawCard(age)
	if err != nil || card == 0 {
		return err
	}
	return Meld(ctx.gs, ctx.player, card, ctx.source)
}

func (ctx *effectContext) drawAndTuck(age int) error {
	card, err := ctx.drawCard(age)
	if err != nil || card == 0 {
		return err
	}
	return Tuck(ctx.gs, ctx.player, card, cards.MustGet(card).Color, ctx.source)
}

// handCards returns the executor's hand filtered by pred (nil keeps all).
func (ctx *effectContext) handCards(pred func(*models.CardDef) bool) []int {
	var out []int
	for _, id := range ctx.me().Hand {
		if pred == nil || pred(cards.MustGet(id)) {
			out = append(out, id)
		}
	}
	return out
}

// topCards returns the executor's top cards filtered by pred.
func (ctx *effectContext) topCards(pred func(*models.CardDef) bool) []int {
	var out []int
	for _, id := range ctx.me().TopCards() {
		if pred == nil || pred(cards.MustGet(id)) {
			out = append(out, id)
		}
	}
	return out
}

// highestOf filters ids down to those sharing the maximum age.
func highestOf(ids []int) []int {
	best := 0
	for _, id := range ids {
		if age := cards.MustGet(id).Age; age > best {
			best = age
		}
	}
	var out []int
	for _, id := range ids {
		if cards.MustGet(id).Age == best {
			out = append(out, id)
		}
	}
	return out
}

// lowestOf filters ids down to those sharing the minimum age.
func lowestOf(ids []int) []int {
	best := 0
	for _, id := range ids {
		if age := cards.MustGet(id).Age; best == 0 || age < best {
			best = age
		}
	}
	var out []int
	for _, id := range ids {
		if cards.MustGet(id).Age == best {
			out = append(out, id)
		}
	}
	return out
}

// selectCardsChoice builds a select_cards choice over explicit candidates.
func (ctx *effectContext) selectCardsChoice(prompt string, zone models.Zone, candidates []int, min, max int) *models.Choice {
	c := ctx.newChoice(models.ChoiceSelectCards, prompt)
	c.FromZone = zone
	c.Cards = candidates
	c.MinCards = min
	c.MaxCards = max
	return c
}

func (ctx *effectContext) yesNoChoice(prompt, yes, no string) *models.Choice {
	c := ctx.newChoice(models.ChoiceYesNo, prompt)
	c.YesText = yes
	c.NoText = no
	return c
}

func (ctx *effectContext) selectPileChoice(prompt, operation string, colors []models.Color) *models.Choice {
	c := ctx.newChoice(models.ChoiceSelectPile, prompt)
	c.AvailableColors = colors
	c.Operation = operation
	return c
}

// splayableColors lists the executor's colors currently eligible for a
// splay, restricted to the allowed set.
func (ctx *effectContext) splayableColors(allowed ...models.Color) []models.Color {
	var out []models.Color
	for _, color := range allowed {
		if len(ctx.me().Stacks[color].Cards) >= 2 {
			out = append(out, color)
		}
	}
	return out
}

// claimSpecialIfAvailable moves a special achievement from the pool to
// the player if it is still unclaimed.
func claimSpecialIfAvailable(gs *GameState, player int, ach SpecialAchievement) bool {
	for i, a := range gs.AvailableSpecial {
		if a == ach {
			gs.AvailableSpecial = append(gs.AvailableSpecial[:i:i], gs.AvailableSpecial[i+1:]...)
			p := gs.GetPlayer(player)
			p.SpecialAchievements = append(p.SpecialAchievements, ach)
			gs.emit("engine", models.EventAchievementClaimed, map[string]any{
				"player":      player,
				"achievement": string(ach),
				"kind":        "special",
			})
			return true
		}
	}
	return false
}
