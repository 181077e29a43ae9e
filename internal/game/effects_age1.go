package game

import (
	"github.com/lukev/innovation_server/internal/cards"
	"github.com/lukev/innovation_server/internal/models"
)

func init() {
	registerEffects(1, agricultureEffect)
	registerEffects(2, archeryDemand)
	registerEffects(3, cityStatesDemand)
	registerEffects(4, clothingMeld, clothingScore)
	registerEffects(5, codeOfLawsEffect)
	registerEffects(6, domesticationEffect)
	registerEffects(7, masonryEffect)
	registerEffects(8, metalworkingEffect)
	registerEffects(9, mysticismEffect)
	registerEffects(10, oarsDemand, oarsFollowup)
	registerEffects(11, potteryReturn, potteryDraw)
	registerEffects(12, sailingEffect)
	registerEffects(13, theWheelEffect)
	registerEffects(14, toolsReturnThree, toolsReturnAThree)
	registerEffects(15, writingEffect)

	registerInitialState(2, 0, effectState{"step": "draw"})
	registerInitialState(5, 0, effectState{"step": "ask"})
}

// Agriculture: you may return a card from your hand; if you do, draw and
// score a card of value one higher.
func agricultureEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ans == nil {
		hand := ctx.handCards(nil)
		if len(hand) == 0 {
			return complete(), nil
		}
		return needChoice(
			ctx.selectCardsChoice("You may return a card from your hand", models.ZoneHand, hand, 0, 1),
			effectState{},
		), nil
	}

	if len(ans.Cards) == 0 {
		return complete(), nil
	}
	card := ans.Cards[0]
	age := cards.MustGet(card).Age
	if err := ReturnCard(ctx.gs, ctx.player, card, ctx.source); err != nil {
		return nil, err
	}
	if err := ctx.drawAndScore(age + 1); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Archery demand: draw a 1, then transfer the highest card in your hand
// to the demanding player's hand.
func archeryDemand(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	switch stString(st, "step") {
	case "draw":
		if _, err := ctx.drawCard(1); err != nil {
			return nil, err
		}
		highest := highestOf(ctx.handCards(nil))
		if len(highest) == 0 {
			return complete(), nil
		}
		if len(highest) == 1 {
			if err := Transfer(ctx.gs, ctx.player, ctx.activator, highest[0], models.ZoneHand, models.ZoneHand, ctx.source); err != nil {
				return nil, err
			}
			return complete(), nil
		}
		return needChoice(
			ctx.selectCardsChoice("Choose the highest card to transfer", models.ZoneHand, highest, 1, 1),
			effectState{"step": "transfer"},
		), nil

	case "transfer":
		if err := Transfer(ctx.gs, ctx.player, ctx.activator, ans.Cards[0], models.ZoneHand, models.ZoneHand, ctx.source); err != nil {
			return nil, err
		}
		return complete(), nil
	}
	return nil, invariant("archery: bad step %q", stString(st, "step"))
}

// City States demand: with four or more Castles showing, transfer a top
// card with a Castle to the demander's board, then draw a 1.
func cityStatesDemand(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ans == nil {
		if CountIcons(ctx.gs, ctx.player, models.IconCastle) < 4 {
			return complete(), nil
		}
		tops := ctx.topCards(func(def *models.CardDef) bool { return def.HasIcon(models.IconCastle) })
		if len(tops) == 0 {
			return complete(), nil
		}
		if len(tops) == 1 {
			return cityStatesTransfer(ctx, tops[0])
		}
		return needChoice(
			ctx.selectCardsChoice("Choose a top card with a Castle to transfer", models.ZoneBoard, tops, 1, 1),
			effectState{},
		), nil
	}
	return cityStatesTransfer(ctx, ans.Cards[0])
}

func cityStatesTransfer(ctx *effectContext, card int) (*effectResult, error) {
	if err := Transfer(ctx.gs, ctx.player, ctx.activator, card, models.ZoneBoard, models.ZoneBoard, ctx.source); err != nil {
		return nil, err
	}
	if _, err := ctx.drawCard(1); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Clothing, first effect: meld a card from hand of a color absent from
// your board.
func clothingMeld(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ans == nil {
		me := ctx.me()
		candidates := ctx.handCards(func(def *models.CardDef) bool {
			return len(me.Stacks[def.Color].Cards) == 0
		})
		if len(candidates) == 0 {
			return complete(), nil
		}
		if len(candidates) == 1 {
			if err := Meld(ctx.gs, ctx.player, candidates[0], ctx.source); err != nil {
				return nil, err
			}
			return complete(), nil
		}
		return needChoice(
			ctx.selectCardsChoice("Meld a card of a new color", models.ZoneHand, candidates, 1, 1),
			effectState{},
		), nil
	}
	if err := Meld(ctx.gs, ctx.player, ans.Cards[0], ctx.source); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Clothing, second effect: draw and score a 1 per color present on your
// board and on no opponent's board.
func clothingScore(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	me := ctx.me()
	opp := ctx.gs.GetPlayer(ctx.opponent())
	unique := 0
	for _, color := range models.AllColors {
		if len(me.Stacks[color].Cards) > 0 && len(opp.Stacks[color].Cards) == 0 {
			unique++
		}
	}
	for i := 0; i < unique; i++ {
		if err := ctx.drawAndScore(1); err != nil {
			return nil, err
		}
	}
	return complete(), nil
}

// Code of Laws: you may tuck a card matching a color on your board; if
// you do, you may splay that color left.
func codeOfLawsEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	me := ctx.me()
	candidates := ctx.handCards(func(def *models.CardDef) bool {
		return len(me.Stacks[def.Color].Cards) > 0
	})

	switch stString(st, "step") {
	case "ask":
		if len(candidates) == 0 {
			return complete(), nil
		}
		return needChoice(
			ctx.yesNoChoice("Tuck a card of a color already on your board?", "Tuck", "Decline"),
			effectState{"step": "decide"},
		), nil

	case "decide":
		if !*ans.Yes {
			return complete(), nil
		}
		if len(candidates) == 1 {
			return codeOfLawsTuck(ctx, candidates[0])
		}
		return needChoice(
			ctx.selectCardsChoice("Choose a card to tuck", models.ZoneHand, candidates, 1, 1),
			effectState{"step": "tuck"},
		), nil

	case "tuck":
		return codeOfLawsTuck(ctx, ans.Cards[0])

	case "splay":
		if *ans.Yes {
			color := models.Color(stInt(st, "color", 0))
			if err := SplayStack(ctx.gs, ctx.player, color, models.SplayLeft, ctx.source); err != nil {
				return nil, err
			}
		}
		return complete(), nil
	}
	return nil, invariant("code of laws: bad step %q", stString(st, "step"))
}

func codeOfLawsTuck(ctx *effectContext, card int) (*effectResult, error) {
	color := cards.MustGet(card).Color
	if err := Tuck(ctx.gs, ctx.player, card, color, ctx.source); err != nil {
		return nil, err
	}
	return needChoice(
		ctx.yesNoChoice("Splay that color left?", "Splay", "Decline"),
		effectState{"step": "splay", "color": int(color)},
	), nil
}

// Domestication: meld the lowest card in your hand, then draw a 1.
func domesticationEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ans == nil {
		lowest := lowestOf(ctx.handCards(nil))
		switch len(lowest) {
		case 0:
			if _, err := ctx.drawCard(1); err != nil {
				return nil, err
			}
			return complete(), nil
		case 1:
			return domesticationMeld(ctx, lowest[0])
		default:
			return needChoice(
				ctx.selectCardsChoice("Choose the lowest card to meld", models.ZoneHand, lowest, 1, 1),
				effectState{},
			), nil
		}
	}
	return domesticationMeld(ctx, ans.Cards[0])
}

func domesticationMeld(ctx *effectContext, card int) (*effectResult, error) {
	if err := Meld(ctx.gs, ctx.player, card, ctx.source); err != nil {
		return nil, err
	}
	if _, err := ctx.drawCard(1); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Masonry: you may meld any number of Castle cards from your hand;
// melding four or more claims the Monument achievement.
func masonryEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ans == nil {
		candidates := ctx.handCards(func(def *models.CardDef) bool { return def.HasIcon(models.IconCastle) })
		if len(candidates) == 0 {
			return complete(), nil
		}
		return needChoice(
			ctx.selectCardsChoice("Meld any number of cards with a Castle", models.ZoneHand, candidates, 0, len(candidates)),
			effectState{},
		), nil
	}

	for _, card := range ans.Cards {
		if err := Meld(ctx.gs, ctx.player, card, ctx.source); err != nil {
			return nil, err
		}
	}
	if len(ans.Cards) >= 4 {
		claimSpecialIfAvailable(ctx.gs, ctx.player, AchMonument)
	}
	return complete(), nil
}

// Metalworking: draw and reveal a 1; score and repeat while it has a
// Castle, keep it otherwise.
func metalworkingEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	card, err := ctx.drawCard(1)
	if err != nil || card == 0 {
		return complete(), err
	}
	Reveal(ctx.gs, ctx.player, card, ctx.source)
	if cards.MustGet(card).HasIcon(models.IconCastle) {
		if err := ScoreCard(ctx.gs, ctx.player, card, ctx.source); err != nil {
			return nil, err
		}
		return continueWith(effectState{}), nil
	}
	return complete(), nil
}

// Mysticism: draw a 1; if its color is already on your board, meld it and
// draw another 1.
func mysticismEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	card, err := ctx.drawCard(1)
	if err != nil || card == 0 {
		return complete(), err
	}
	color := cards.MustGet(card).Color
	if len(ctx.me().Stacks[color].Cards) > 0 {
		if err := Meld(ctx.gs, ctx.player, card, ctx.source); err != nil {
			return nil, err
		}
		if _, err := ctx.drawCard(1); err != nil {
			return nil, err
		}
	}
	return complete(), nil
}

// Oars demand: transfer a card with a Crown from your hand to the
// demander's score pile; if you do, draw a 1.
func oarsDemand(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ans == nil {
		crowns := ctx.handCards(func(def *models.CardDef) bool { return def.HasIcon(models.IconCrown) })
		if len(crowns) == 0 {
			return complete(), nil
		}
		if len(crowns) == 1 {
			return oarsTransfer(ctx, crowns[0])
		}
		return needChoice(
			ctx.selectCardsChoice("Choose a card with a Crown to transfer", models.ZoneHand, crowns, 1, 1),
			effectState{},
		), nil
	}
	return oarsTransfer(ctx, ans.Cards[0])
}

func oarsTransfer(ctx *effectContext, card int) (*effectResult, error) {
	if err := Transfer(ctx.gs, ctx.player, ctx.activator, card, models.ZoneHand, models.ZoneScore, ctx.source); err != nil {
		return nil, err
	}
	if _, err := ctx.drawCard(1); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Oars follow-up: if the demand moved nothing, draw a 1.
func oarsFollowup(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if !ctx.demandChanged {
		if _, err := ctx.drawCard(1); err != nil {
			return nil, err
		}
	}
	return complete(), nil
}

// Pottery, first effect: return up to three cards from your hand, then
// draw and score a card of value equal to the number returned.
func potteryReturn(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ans == nil {
		hand := ctx.handCards(nil)
		if len(hand) == 0 {
			return complete(), nil
		}
		max := len(hand)
		if max > 3 {
			max = 3
		}
		return needChoice(
			ctx.selectCardsChoice("You may return up to three cards", models.ZoneHand, hand, 0, max),
			effectState{},
		), nil
	}

	for _, card := range ans.Cards {
		if err := ReturnCard(ctx.gs, ctx.player, card, ctx.source); err != nil {
			return nil, err
		}
	}
	if n := len(ans.Cards); n > 0 {
		if err := ctx.drawAndScore(n); err != nil {
			return nil, err
		}
	}
	return complete(), nil
}

// Pottery, second effect: draw a 1.
func potteryDraw(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if _, err := ctx.drawCard(1); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Sailing: draw and meld a 1.
func sailingEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if err := ctx.drawAndMeld(1); err != nil {
		return nil, err
	}
	return complete(), nil
}

// The Wheel: draw two 1s.
func theWheelEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	for i := 0; i < 2; i++ {
		if _, err := ctx.drawCard(1); err != nil {
			return nil, err
		}
	}
	return complete(), nil
}

// Tools, first effect: return three cards from your hand to draw and
// meld a 3.
func toolsReturnThree(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	switch stString(st, "step") {
	case "":
		if len(ctx.me().Hand) < 3 {
			return complete(), nil
		}
		return needChoice(
			ctx.yesNoChoice("Return three cards to draw and meld a 3?", "Return", "Decline"),
			effectState{"step": "decide"},
		), nil

	case "decide":
		if !*ans.Yes {
			return complete(), nil
		}
		hand := ctx.handCards(nil)
		if len(hand) == 3 {
			return toolsReturnAndMeld(ctx, hand)
		}
		return needChoice(
			ctx.selectCardsChoice("Choose three cards to return", models.ZoneHand, hand, 3, 3),
			effectState{"step": "return"},
		), nil

	case "return":
		return toolsReturnAndMeld(ctx, ans.Cards)
	}
	return nil, invariant("tools: bad step %q", stString(st, "step"))
}

func toolsReturnAndMeld(ctx *effectContext, ids []int) (*effectResult, error) {
	for _, card := range ids {
		if err := ReturnCard(ctx.gs, ctx.player, card, ctx.source); err != nil {
			return nil, err
		}
	}
	if err := ctx.drawAndMeld(3); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Tools, second effect: return a 3 from your hand to draw three 1s.
func toolsReturnAThree(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ans == nil {
		threes := ctx.handCards(func(def *models.CardDef) bool { return def.Age == 3 })
		if len(threes) == 0 {
			return complete(), nil
		}
		return needChoice(
			ctx.selectCardsChoice("You may return a 3", models.ZoneHand, threes, 0, 1),
			effectState{},
		), nil
	}

	if len(ans.Cards) == 0 {
		return complete(), nil
	}
	if err := ReturnCard(ctx.gs, ctx.player, ans.Cards[0], ctx.source); err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		if _, err := ctx.drawCard(1); err != nil {
			return nil, err
		}
	}
	return complete(), nil
}

// Writing: draw two 2s.
func writingEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	for i := 0; i < 2; i++ {
		if _, err := ctx.drawCard(2); err != nil {
			return nil, err
		}
	}
	return complete(), nil
}
