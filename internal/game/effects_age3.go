package game

import (
	"github.com/lukev/innovation_server/internal/cards"
	"github.com/lukev/innovation_server/internal/models"
)

func init() {
	registerEffects(26, alchemyDraw, alchemyMeldScore)
	registerEffects(27, compassDemand)
	registerEffects(28, educationEffect)
	registerEffects(29, engineeringDemand, engineeringSplay)
	registerEffects(30, feudalismDemand, feudalismSplay)
	registerEffects(31, machineryDemand, machineryScore)
	registerEffects(32, medicineDemand)
	registerEffects(33, opticsEffect)
	registerEffects(34, paperSplay, paperDraw)
	registerEffects(35, translationMeld, translationWorld)

	registerInitialState(27, 0, effectState{"step": "give"})
}

// Alchemy, first effect: draw and reveal a 4 per three Castles; red draws
// send everything drawn plus your hand back to the supply.
func alchemyDraw(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	n := CountIcons(ctx.gs, ctx.player, models.IconCastle) / 3
	anyRed := false
	for i := 0; i < n; i++ {
		card, err := ctx.drawCard(4)
		if err != nil || card == 0 {
			return complete(), err
		}
		Reveal(ctx.gs, ctx.player, card, ctx.source)
		if cards.MustGet(card).Color == models.ColorRed {
			anyRed = true
		}
	}
	if anyRed {
		// The drawn cards sit in hand, so returning the hand returns
		// them too.
		for _, card := range ctx.handCards(nil) {
			if err := ReturnCard(ctx.gs, ctx.player, card, ctx.source); err != nil {
				return nil, err
			}
		}
	}
	return complete(), nil
}

// Alchemy, second effect: meld a card from your hand, then score one.
func alchemyMeldScore(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	switch stString(st, "step") {
	case "":
		hand := ctx.handCards(nil)
		if len(hand) == 0 {
			return complete(), nil
		}
		if len(hand) == 1 {
			if err := Meld(ctx.gs, ctx.player, hand[0], ctx.source); err != nil {
				return nil, err
			}
			return continueWith(effectState{"step": "score"}), nil
		}
		return needChoice(
			ctx.selectCardsChoice("Meld a card from your hand", models.ZoneHand, hand, 1, 1),
			effectState{"step": "meld"},
		), nil

	case "meld":
		if err := Meld(ctx.gs, ctx.player, ans.Cards[0], ctx.source); err != nil {
			return nil, err
		}
		return continueWith(effectState{"step": "score"}), nil

	case "score":
		if ans == nil {
			hand := ctx.handCards(nil)
			if len(hand) == 0 {
				return complete(), nil
			}
			if len(hand) == 1 {
				if err := ScoreCard(ctx.gs, ctx.player, hand[0], ctx.source); err != nil {
					return nil, err
				}
				return complete(), nil
			}
			return needChoice(
				ctx.selectCardsChoice("Score a card from your hand", models.ZoneHand, hand, 1, 1),
				effectState{"step": "scored"},
			), nil
		}
	case "scored":
		if err := ScoreCard(ctx.gs, ctx.player, ans.Cards[0], ctx.source); err != nil {
			return nil, err
		}
		return complete(), nil
	}
	return nil, invariant("alchemy: bad step %q", stString(st, "step"))
}

// Compass demand: hand over a top non-green card with a Leaf, then take a
// top card without a Leaf from the demander's board.
func compassDemand(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	switch stString(st, "step") {
	case "give":
		if ans == nil {
			candidates := ctx.topCards(func(def *models.CardDef) bool {
				return def.Color != models.ColorGreen && def.HasIcon(models.IconLeaf)
			})
			if len(candidates) == 0 {
				return continueWith(effectState{"step": "take"}), nil
			}
			if len(candidates) == 1 {
				if err := Transfer(ctx.gs, ctx.player, ctx.activator, candidates[0], models.ZoneBoard, models.ZoneBoard, ctx.source); err != nil {
					return nil, err
				}
				return continueWith(effectState{"step": "take"}), nil
			}
			return needChoice(
				ctx.selectCardsChoice("Choose a top non-green card with a Leaf to transfer", models.ZoneBoard, candidates, 1, 1),
				effectState{"step": "give"},
			), nil
		}
		if err := Transfer(ctx.gs, ctx.player, ctx.activator, ans.Cards[0], models.ZoneBoard, models.ZoneBoard, ctx.source); err != nil {
			return nil, err
		}
		return continueWith(effectState{"step": "take"}), nil

	case "take":
		demander := ctx.gs.GetPlayer(ctx.activator)
		if ans == nil {
			var candidates []int
			for _, id := range demander.TopCards() {
				if !cards.MustGet(id).HasIcon(models.IconLeaf) {
					candidates = append(candidates, id)
				}
			}
			if len(candidates) == 0 {
				return complete(), nil
			}
			if len(candidates) == 1 {
				if err := Transfer(ctx.gs, ctx.activator, ctx.player, candidates[0], models.ZoneBoard, models.ZoneBoard, ctx.source); err != nil {
					return nil, err
				}
				return complete(), nil
			}
			return needChoice(
				ctx.selectCardsChoice("Choose a top card without a Leaf to take", models.ZoneBoard, candidates, 1, 1),
				effectState{"step": "take"},
			), nil
		}
		if err := Transfer(ctx.gs, ctx.activator, ctx.player, ans.Cards[0], models.ZoneBoard, models.ZoneBoard, ctx.source); err != nil {
			return nil, err
		}
		return complete(), nil
	}
	return nil, invariant("compass: bad step %q", stString(st, "step"))
}

// Education: you may return your highest score card; if you do, draw a
// card two higher than the highest remaining.
func educationEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	me := ctx.me()
	if ans == nil {
		if len(me.Score) == 0 {
			return complete(), nil
		}
		return needChoice(
			ctx.yesNoChoice("Return the highest card from your score pile?", "Return", "Decline"),
			effectState{},
		), nil
	}

	if !*ans.Yes {
		return complete(), nil
	}
	highest := highestOf(me.Score)
	if err := ReturnCard(ctx.gs, ctx.player, highest[0], ctx.source); err != nil {
		return nil, err
	}
	remaining := 0
	for _, id := range me.Score {
		if age := cards.MustGet(id).Age; age > remaining {
			remaining = age
		}
	}
	if _, err := ctx.drawCard(remaining + 2); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Engineering demand: transfer all top cards with a Castle to the
// demander's score pile.
func engineeringDemand(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	tops := ctx.topCards(func(def *models.CardDef) bool { return def.HasIcon(models.IconCastle) })
	for _, card := range tops {
		if err := Transfer(ctx.gs, ctx.player, ctx.activator, card, models.ZoneBoard, models.ZoneScore, ctx.source); err != nil {
			return nil, err
		}
	}
	return complete(), nil
}

// Engineering follow-up: you may splay your red cards left.
func engineeringSplay(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	return optionalSplay(ctx, st, ans, models.SplayLeft, models.ColorRed)
}

// Feudalism demand: transfer a card with a Castle from your hand.
func feudalismDemand(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ans == nil {
		castles := ctx.handCards(func(def *models.CardDef) bool { return def.HasIcon(models.IconCastle) })
		if len(castles) == 0 {
			return complete(), nil
		}
		if len(castles) == 1 {
			if err := Transfer(ctx.gs, ctx.player, ctx.activator, castles[0], models.ZoneHand, models.ZoneHand, ctx.source); err != nil {
				return nil, err
			}
			return complete(), nil
		}
		return needChoice(
			ctx.selectCardsChoice("Choose a card with a Castle to transfer", models.ZoneHand, castles, 1, 1),
			effectState{},
		), nil
	}
	if err := Transfer(ctx.gs, ctx.player, ctx.activator, ans.Cards[0], models.ZoneHand, models.ZoneHand, ctx.source); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Feudalism follow-up: you may splay your yellow or purple cards left.
func feudalismSplay(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	return optionalSplay(ctx, st, ans, models.SplayLeft, models.ColorYellow, models.ColorPurple)
}

// Machinery demand: exchange your whole hand with the demander's highest
// hand cards.
func machineryDemand(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	demander := ctx.gs.GetPlayer(ctx.activator)
	myHand := append([]int(nil), ctx.me().Hand...)
	theirHighest := highestOf(demander.Hand)
	if len(myHand) == 0 && len(theirHighest) == 0 {
		return complete(), nil
	}
	if err := Exchange(ctx.gs, ctx.player, models.ZoneHand, myHand, ctx.activator, models.ZoneHand, theirHighest, ctx.source); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Machinery follow-up: score a card with a Castle from your hand, then
// optionally splay red left.
func machineryScore(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	switch stString(st, "step") {
	case "":
		castles := ctx.handCards(func(def *models.CardDef) bool { return def.HasIcon(models.IconCastle) })
		if len(castles) == 0 {
			return continueWith(effectState{"step": "splay"}), nil
		}
		if len(castles) == 1 {
			if err := ScoreCard(ctx.gs, ctx.player, castles[0], ctx.source); err != nil {
				return nil, err
			}
			return continueWith(effectState{"step": "splay"}), nil
		}
		return needChoice(
			ctx.selectCardsChoice("Score a card with a Castle", models.ZoneHand, castles, 1, 1),
			effectState{"step": "score"},
		), nil

	case "score":
		if err := ScoreCard(ctx.gs, ctx.player, ans.Cards[0], ctx.source); err != nil {
			return nil, err
		}
		return continueWith(effectState{"step": "splay"}), nil

	case "splay":
		if ans == nil {
			if len(ctx.splayableColors(models.ColorRed)) == 0 {
				return complete(), nil
			}
			return needChoice(
				ctx.yesNoChoice("Splay your red cards left?", "Splay", "Decline"),
				effectState{"step": "splay"},
			), nil
		}
		if *ans.Yes {
			if err := SplayStack(ctx.gs, ctx.player, models.ColorRed, models.SplayLeft, ctx.source); err != nil {
				return nil, err
			}
		}
		return complete(), nil
	}
	return nil, invariant("machinery: bad step %q", stString(st, "step"))
}

// Medicine demand: exchange the highest card in your score pile with the
// lowest card in the demander's score pile.
func medicineDemand(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	me := ctx.me()
	demander := ctx.gs.GetPlayer(ctx.activator)

	var mine, theirs []int
	if len(me.Score) > 0 {
		mine = highestOf(me.Score)[:1]
	}
	if len(demander.Score) > 0 {
		theirs = lowestOf(demander.Score)[:1]
	}
	if len(mine) == 0 && len(theirs) == 0 {
		return complete(), nil
	}
	if err := Exchange(ctx.gs, ctx.player, models.ZoneScore, mine, ctx.activator, models.ZoneScore, theirs, ctx.source); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Optics: draw and meld a 3; a Crown earns a drawn and scored 4,
// otherwise a score card moves to a poorer opponent.
func opticsEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ans == nil && stString(st, "step") == "" {
		card, err := ctx.drawCard(3)
		if err != nil || card == 0 {
			return complete(), err
		}
		if err := Meld(ctx.gs, ctx.player, card, ctx.source); err != nil {
			return nil, err
		}
		if cards.MustGet(card).HasIcon(models.IconCrown) {
			if err := ctx.drawAndScore(4); err != nil {
				return nil, err
			}
			return complete(), nil
		}

		opp := ctx.opponent()
		if ctx.gs.GetPlayer(opp).ScorePoints() >= ctx.me().ScorePoints() {
			return complete(), nil
		}
		mine := ctx.me().Score
		if len(mine) == 0 {
			return complete(), nil
		}
		if len(mine) == 1 {
			if err := Transfer(ctx.gs, ctx.player, opp, mine[0], models.ZoneScore, models.ZoneScore, ctx.source); err != nil {
				return nil, err
			}
			return complete(), nil
		}
		return needChoice(
			ctx.selectCardsChoice("Choose a score card to transfer", models.ZoneScore, append([]int(nil), mine...), 1, 1),
			effectState{"step": "transfer"},
		), nil
	}

	if err := Transfer(ctx.gs, ctx.player, ctx.opponent(), ans.Cards[0], models.ZoneScore, models.ZoneScore, ctx.source); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Paper, first effect: you may splay your green or blue cards left.
func paperSplay(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	return optionalSplay(ctx, st, ans, models.SplayLeft, models.ColorGreen, models.ColorBlue)
}

// Paper, second effect: draw a 4 for every color splayed left.
func paperDraw(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	me := ctx.me()
	n := 0
	for c := range me.Stacks {
		if me.Stacks[c].EffectiveSplay() == models.SplayLeft {
			n++
		}
	}
	for i := 0; i < n; i++ {
		if _, err := ctx.drawCard(4); err != nil {
			return nil, err
		}
	}
	return complete(), nil
}

// Translation, first effect: you may meld all the cards in your score
// pile (all or none).
func translationMeld(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	me := ctx.me()
	if ans == nil {
		if len(me.Score) == 0 {
			return complete(), nil
		}
		return needChoice(
			ctx.yesNoChoice("Meld all the cards in your score pile?", "Meld all", "Decline"),
			effectState{},
		), nil
	}

	if !*ans.Yes {
		return complete(), nil
	}
	for _, card := range append([]int(nil), me.Score...) {
		if err := Transfer(ctx.gs, ctx.player, ctx.player, card, models.ZoneScore, models.ZoneBoard, ctx.source); err != nil {
			return nil, err
		}
	}
	return complete(), nil
}

// Translation, second effect: claim World when every top card carries a
// Crown.
func translationWorld(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	tops := ctx.me().TopCards()
	if len(tops) == 0 {
		return complete(), nil
	}
	for _, id := range tops {
		if !cards.MustGet(id).HasIcon(models.IconCrown) {
			return complete(), nil
		}
	}
	claimSpecialIfAvailable(ctx.gs, ctx.player, AchWorld)
	return complete(), nil
}

// optionalSplay implements the recurring "you may splay <colors>
// <direction>" follow-up: a yes/no gate, then a pile selection when more
// than one color qualifies.
func optionalSplay(ctx *effectContext, st effectState, ans *models.ChoiceAnswer, dir models.Splay, allowed ...models.Color) (*effectResult, error) {
	colors := ctx.splayableColors(allowed...)

	switch stString(st, "step") {
	case "":
		if len(colors) == 0 {
			return complete(), nil
		}
		return needChoice(
			ctx.yesNoChoice("Splay "+dir.String()+"?", "Splay", "Decline"),
			effectState{"step": "decide"},
		), nil

	case "decide":
		if !*ans.Yes {
			return complete(), nil
		}
		if len(colors) == 1 {
			if err := SplayStack(ctx.gs, ctx.player, colors[0], dir, ctx.source); err != nil {
				return nil, err
			}
			return complete(), nil
		}
		return needChoice(
			ctx.selectPileChoice("Choose a color to splay", "splay_"+dir.String(), colors),
			effectState{"step": "splay"},
		), nil

	case "splay":
		if err := SplayStack(ctx.gs, ctx.player, *ans.Color, dir, ctx.source); err != nil {
			return nil, err
		}
		return complete(), nil
	}
	return nil, invariant("optional splay: bad step %q", stString(st, "step"))
}
