package game

import (
	"github.com/lukev/innovation_server/internal/cards"
	"github.com/lukev/innovation_server/internal/models"
)

func init() {
	registerEffects(16, calendarEffect)
	registerEffects(17, canalBuildingEffect)
	registerEffects(18, constructionDemand, constructionEmpire)
	registerEffects(19, currencyEffect)
	registerEffects(20, fermentingEffect)
	registerEffects(21, mapmakingDemand, mapmakingFollowup)
	registerEffects(22, mathematicsEffect)
	registerEffects(23, monotheismDemand, monotheismTuck)
	registerEffects(24, philosophySplay, philosophyScore)
	registerEffects(25, roadBuildingEffect)

	registerInitialState(25, 0, effectState{"step": "meld"})
}

// Calendar: with more score cards than hand cards, draw two 3s.
func calendarEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	me := ctx.me()
	if len(me.Score) > len(me.Hand) {
		for i := 0; i < 2; i++ {
			if _, err := ctx.drawCard(3); err != nil {
				return nil, err
			}
		}
	}
	return complete(), nil
}

// Canal Building: you may exchange all the highest cards in your hand
// with all the highest cards in your score pile.
func canalBuildingEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	me := ctx.me()
	if ans == nil {
		if len(me.Hand) == 0 && len(me.Score) == 0 {
			return complete(), nil
		}
		return needChoice(
			ctx.yesNoChoice("Exchange your highest hand cards with your highest score cards?", "Exchange", "Decline"),
			effectState{},
		), nil
	}

	if !*ans.Yes {
		return complete(), nil
	}
	handHighest := highestOf(me.Hand)
	scoreHighest := highestOf(me.Score)
	if err := Exchange(ctx.gs, ctx.player, models.ZoneHand, handHighest, ctx.player, models.ZoneScore, scoreHighest, ctx.source); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Construction demand: transfer two cards from your hand to the
// demander's hand, then draw a 2.
func constructionDemand(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ans == nil {
		hand := ctx.handCards(nil)
		if len(hand) <= 2 {
			return constructionTransfer(ctx, hand)
		}
		return needChoice(
			ctx.selectCardsChoice("Choose two cards to transfer", models.ZoneHand, hand, 2, 2),
			effectState{},
		), nil
	}
	return constructionTransfer(ctx, ans.Cards)
}

func constructionTransfer(ctx *effectContext, ids []int) (*effectResult, error) {
	for _, card := range ids {
		if err := Transfer(ctx.gs, ctx.player, ctx.activator, card, models.ZoneHand, models.ZoneHand, ctx.source); err != nil {
			return nil, err
		}
	}
	if _, err := ctx.drawCard(2); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Construction follow-up: the only player with five top cards claims the
// Empire achievement.
func constructionEmpire(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	mine := len(ctx.me().TopCards())
	theirs := len(ctx.gs.GetPlayer(ctx.opponent()).TopCards())
	if mine == models.NumColors && theirs < models.NumColors {
		claimSpecialIfAvailable(ctx.gs, ctx.player, AchEmpire)
	}
	return complete(), nil
}

// Currency: return any number of cards from your hand; draw and score a 2
// per distinct value returned.
func currencyEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ans == nil {
		hand := ctx.handCards(nil)
		if len(hand) == 0 {
			return complete(), nil
		}
		return needChoice(
			ctx.selectCardsChoice("You may return any number of cards", models.ZoneHand, hand, 0, len(hand)),
			effectState{},
		), nil
	}

	ages := make(map[int]bool)
	for _, card := range ans.Cards {
		ages[cards.MustGet(card).Age] = true
		if err := ReturnCard(ctx.gs, ctx.player, card, ctx.source); err != nil {
			return nil, err
		}
	}
	for i := 0; i < len(ages); i++ {
		if err := ctx.drawAndScore(2); err != nil {
			return nil, err
		}
	}
	return complete(), nil
}

// Fermenting: draw a 2 for every two Leaves on your board.
func fermentingEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	n := CountIcons(ctx.gs, ctx.player, models.IconLeaf) / 2
	for i := 0; i < n; i++ {
		if _, err := ctx.drawCard(2); err != nil {
			return nil, err
		}
	}
	return complete(), nil
}

// Mapmaking demand: transfer a 1 from your score pile to the demander's
// score pile.
func mapmakingDemand(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ans == nil {
		var ones []int
		for _, id := range ctx.me().Score {
			if cards.MustGet(id).Age == 1 {
				ones = append(ones, id)
			}
		}
		if len(ones) == 0 {
			return complete(), nil
		}
		if len(ones) == 1 {
			if err := Transfer(ctx.gs, ctx.player, ctx.activator, ones[0], models.ZoneScore, models.ZoneScore, ctx.source); err != nil {
				return nil, err
			}
			return complete(), nil
		}
		return needChoice(
			ctx.selectCardsChoice("Choose a 1 to transfer from your score pile", models.ZoneScore, ones, 1, 1),
			effectState{},
		), nil
	}
	if err := Transfer(ctx.gs, ctx.player, ctx.activator, ans.Cards[0], models.ZoneScore, models.ZoneScore, ctx.source); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Mapmaking follow-up: if the demand moved a card, draw and score a 1.
func mapmakingFollowup(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ctx.demandChanged {
		if err := ctx.drawAndScore(1); err != nil {
			return nil, err
		}
	}
	return complete(), nil
}

// Mathematics: you may return a card from your hand; if you do, draw and
// meld a card of value one higher.
func mathematicsEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
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
	if err := ctx.drawAndMeld(age + 1); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Monotheism demand: transfer a top card of a color the demander lacks to
// their score pile; if you do, draw and tuck a 1.
func monotheismDemand(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ans == nil {
		demander := ctx.gs.GetPlayer(ctx.activator)
		candidates := ctx.topCards(func(def *models.CardDef) bool {
			return len(demander.Stacks[def.Color].Cards) == 0
		})
		if len(candidates) == 0 {
			return complete(), nil
		}
		if len(candidates) == 1 {
			return monotheismTransfer(ctx, candidates[0])
		}
		return needChoice(
			ctx.selectCardsChoice("Choose a top card to transfer", models.ZoneBoard, candidates, 1, 1),
			effectState{},
		), nil
	}
	return monotheismTransfer(ctx, ans.Cards[0])
}

func monotheismTransfer(ctx *effectContext, card int) (*effectResult, error) {
	if err := Transfer(ctx.gs, ctx.player, ctx.activator, card, models.ZoneBoard, models.ZoneScore, ctx.source); err != nil {
		return nil, err
	}
	if err := ctx.drawAndTuck(1); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Monotheism, second effect: draw and tuck a 1.
func monotheismTuck(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if err := ctx.drawAndTuck(1); err != nil {
		return nil, err
	}
	return complete(), nil
}

// Philosophy, first effect: you may splay left any one color.
func philosophySplay(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ans == nil {
		colors := ctx.splayableColors(models.AllColors...)
		if len(colors) == 0 {
			return complete(), nil
		}
		return needChoice(
			ctx.yesNoChoice("Splay one of your colors left?", "Splay", "Decline"),
			effectState{"step": "decide"},
		), nil
	}

	switch stString(st, "step") {
	case "decide":
		if !*ans.Yes {
			return complete(), nil
		}
		colors := ctx.splayableColors(models.AllColors...)
		if len(colors) == 1 {
			if err := SplayStack(ctx.gs, ctx.player, colors[0], models.SplayLeft, ctx.source); err != nil {
				return nil, err
			}
			return complete(), nil
		}
		return needChoice(
			ctx.selectPileChoice("Choose a color to splay left", "splay_left", colors),
			effectState{"step": "splay"},
		), nil

	case "splay":
		if err := SplayStack(ctx.gs, ctx.player, *ans.Color, models.SplayLeft, ctx.source); err != nil {
			return nil, err
		}
		return complete(), nil
	}
	return nil, invariant("philosophy: bad step %q", stString(st, "step"))
}

// Philosophy, second effect: you may score a card from your hand.
func philosophyScore(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	if ans == nil {
		hand := ctx.handCards(nil)
		if len(hand) == 0 {
			return complete(), nil
		}
		return needChoice(
			ctx.selectCardsChoice("You may score a card from your hand", models.ZoneHand, hand, 0, 1),
			effectState{},
		), nil
	}

	if len(ans.Cards) == 1 {
		if err := ScoreCard(ctx.gs, ctx.player, ans.Cards[0], ctx.source); err != nil {
			return nil, err
		}
	}
	return complete(), nil
}

// Road Building: meld one or two cards from your hand; melding two allows
// trading your top red card for the opponent's top green card.
func roadBuildingEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	me := ctx.me()

	switch stString(st, "step") {
	case "meld":
		hand := ctx.handCards(nil)
		if len(hand) == 0 {
			return complete(), nil
		}
		if len(hand) == 1 {
			if err := Meld(ctx.gs, ctx.player, hand[0], ctx.source); err != nil {
				return nil, err
			}
			return complete(), nil
		}
		return needChoice(
			ctx.selectCardsChoice("Meld one or two cards", models.ZoneHand, hand, 1, 2),
			effectState{"step": "melded"},
		), nil

	case "melded":
		for _, card := range ans.Cards {
			if err := Meld(ctx.gs, ctx.player, card, ctx.source); err != nil {
				return nil, err
			}
		}
		if len(ans.Cards) < 2 {
			return complete(), nil
		}
		if me.Stacks[models.ColorRed].TopCard() == 0 {
			return complete(), nil
		}
		return needChoice(
			ctx.yesNoChoice("Transfer your top red card for the opponent's top green card?", "Transfer", "Decline"),
			effectState{"step": "trade"},
		), nil

	case "trade":
		if !*ans.Yes {
			return complete(), nil
		}
		red := me.Stacks[models.ColorRed].TopCard()
		if red == 0 {
			return complete(), nil
		}
		opp := ctx.opponent()
		if err := Transfer(ctx.gs, ctx.player, opp, red, models.ZoneBoard, models.ZoneBoard, ctx.source); err != nil {
			return nil, err
		}
		if green := ctx.gs.GetPlayer(opp).Stacks[models.ColorGreen].TopCard(); green != 0 {
			if err := Transfer(ctx.gs, opp, ctx.player, green, models.ZoneBoard, models.ZoneBoard, ctx.source); err != nil {
				return nil, err
			}
		}
		return complete(), nil
	}
	return nil, invariant("road building: bad step %q", stString(st, "step"))
}
