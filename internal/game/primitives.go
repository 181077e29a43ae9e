package game

import (
	"github.com/lukev/innovation_server/internal/cards"
	"github.com/lukev/innovation_server/internal/models"
	"github.com/lukev/innovation_server/internal/rng"
)

// Primitives are the only operations that move cards. They run against the
// engine's working clone, append typed events, and fail with an
// InvariantError when an expected card is missing from its zone. They never
// consult dogma logic.

// rand consumes one value from the embedded RNG, storing the advanced
// state back so replays stay aligned.
func (gs *GameState) rand(n int) int {
	r := rng.FromState(gs.RNG)
	v := r.NextInt(n)
	gs.RNG = r.State()
	return v
}

func removeInt(s []int, v int) ([]int, bool) {
	for i, x := range s {
		if x == v {
			return append(s[:i:i], s[i+1:]...), true
		}
	}
	return s, false
}

// removeFromZone detaches a card from one of the player's zones. For the
// board zone the card is removed from wherever it sits in its color stack.
func (p *Player) removeFromZone(card int, zone models.Zone) bool {
	switch zone {
	case models.ZoneHand:
		if hand, ok := removeInt(p.Hand, card); ok {
			p.Hand = hand
			return true
		}
	case models.ZoneScore:
		if score, ok := removeInt(p.Score, card); ok {
			p.Score = score
			return true
		}
	case models.ZoneBoard:
		color := cards.MustGet(card).Color
		stack := &p.Stacks[color]
		if cs, ok := removeInt(stack.Cards, card); ok {
			stack.Cards = cs
			if len(stack.Cards) < 2 {
				stack.Splay = models.SplayNone
			}
			return true
		}
	}
	return false
}

// addToZone attaches a card to one of the player's zones. Board placement
// appends to the top of the card's color stack, keeping any splay.
func (p *Player) addToZone(card int, zone models.Zone) {
	switch zone {
	case models.ZoneHand:
		p.Hand = append(p.Hand, card)
	case models.ZoneScore:
		p.Score = append(p.Score, card)
	case models.ZoneBoard:
		color := cards.MustGet(card).Color
		p.Stacks[color].Cards = append(p.Stacks[color].Cards, card)
	}
}

// Draw takes a uniform-random card from the lowest non-empty supply pile
// of at least requestedAge into the player's hand. Exhausting every pile
// through age 10 ends the game on score instead; the returned card id is 0
// in that case.
func Draw(gs *GameState, player, requestedAge int, source string) (int, error) {
	if gs.Phase == PhaseGameOver {
		return 0, nil
	}
	p := gs.GetPlayer(player)
	if p == nil {
		return 0, invariant("draw: no player %d", player)
	}
	if requestedAge < 1 {
		requestedAge = 1
	}

	fromAge := 0
	for age := requestedAge; age <= cards.MaxAge; age++ {
		if len(gs.Supply[age]) > 0 {
			fromAge = age
			break
		}
	}
	if fromAge == 0 {
		endGameByScore(gs, source)
		return 0, nil
	}

	pile := gs.Supply[fromAge]
	idx := gs.rand(len(pile))
	card := pile[idx]
	gs.Supply[fromAge] = append(pile[:idx:idx], pile[idx+1:]...)
	p.Hand = append(p.Hand, card)

	gs.emit(source, models.EventDrew, map[string]any{
		"player":       player,
		"card":         card,
		"fromAge":      fromAge,
		"requestedAge": requestedAge,
	})
	return card, nil
}

// Meld moves a card from the player's hand onto the top of its color
// stack, continuing any existing splay.
func Meld(gs *GameState, player, card int, source string) error {
	p := gs.GetPlayer(player)
	if p == nil {
		return invariant("meld: no player %d", player)
	}
	if !p.removeFromZone(card, models.ZoneHand) {
		return invariant("meld: card %d not in player %d hand", card, player)
	}
	def := cards.MustGet(card)
	p.Stacks[def.Color].Cards = append(p.Stacks[def.Color].Cards, card)
	p.TurnActions.Melded = append(p.TurnActions.Melded, card)

	gs.emit(source, models.EventMelded, map[string]any{
		"player": player,
		"card":   card,
		"color":  def.Color.String(),
	})
	return nil
}

// Tuck moves a card from the player's hand to the bottom of the given
// color stack. Tucking does not count as melding.
func Tuck(gs *GameState, player, card int, color models.Color, source string) error {
	p := gs.GetPlayer(player)
	if p == nil {
		return invariant("tuck: no player %d", player)
	}
	if !p.removeFromZone(card, models.ZoneHand) {
		return invariant("tuck: card %d not in player %d hand", card, player)
	}
	stack := &p.Stacks[color]
	stack.Cards = append([]int{card}, stack.Cards...)
	p.TurnActions.Tucked = append(p.TurnActions.Tucked, card)

	gs.emit(source, models.EventTucked, map[string]any{
		"player": player,
		"card":   card,
		"color":  color.String(),
	})
	return nil
}

// ScoreCard moves a card into the player's score pile from wherever it
// currently lives (hand first, then board, then an opponent zone is a bug).
func ScoreCard(gs *GameState, player, card int, source string) error {
	p := gs.GetPlayer(player)
	if p == nil {
		return invariant("score: no player %d", player)
	}
	if !p.removeFromZone(card, models.ZoneHand) &&
		!p.removeFromZone(card, models.ZoneBoard) &&
		!p.removeFromZone(card, models.ZoneScore) {
		return invariant("score: card %d not in any zone of player %d", card, player)
	}
	p.Score = append(p.Score, card)
	p.TurnActions.Scored = append(p.TurnActions.Scored, card)

	gs.emit(source, models.EventScored, map[string]any{
		"player":       player,
		"card":         card,
		"pointsGained": cards.MustGet(card).Age,
	})
	return nil
}

// SplayStack sets the splay direction of a color stack. Stacks with fewer
// than two cards are left untouched and no event is emitted.
func SplayStack(gs *GameState, player int, color models.Color, dir models.Splay, source string) error {
	p := gs.GetPlayer(player)
	if p == nil {
		return invariant("splay: no player %d", player)
	}
	stack := &p.Stacks[color]
	if len(stack.Cards) < 2 {
		return nil
	}
	previous := stack.Splay
	stack.Splay = dir

	gs.emit(source, models.EventSplayed, map[string]any{
		"player":    player,
		"color":     color.String(),
		"direction": dir.String(),
		"previous":  previous.String(),
	})
	return nil
}

// Transfer moves a card between zones, possibly across players. It counts
// as neither melding nor scoring.
func Transfer(gs *GameState, fromPlayer, toPlayer, card int, fromZone, toZone models.Zone, source string) error {
	from := gs.GetPlayer(fromPlayer)
	to := gs.GetPlayer(toPlayer)
	if from == nil || to == nil {
		return invariant("transfer: bad players %d -> %d", fromPlayer, toPlayer)
	}
	if !from.removeFromZone(card, fromZone) {
		return invariant("transfer: card %d not in %s of player %d", card, fromZone, fromPlayer)
	}
	to.addToZone(card, toZone)

	gs.emit(source, models.EventTransferred, map[string]any{
		"fromPlayer": fromPlayer,
		"toPlayer":   toPlayer,
		"card":       card,
		"fromZone":   string(fromZone),
		"toZone":     string(toZone),
	})
	return nil
}

// ReturnCard places a card from any of the player's zones onto the bottom
// of its age's supply pile. Returning to an empty pile makes that age
// available to draws again.
func ReturnCard(gs *GameState, player, card int, source string) error {
	p := gs.GetPlayer(player)
	if p == nil {
		return invariant("return: no player %d", player)
	}
	if !p.removeFromZone(card, models.ZoneHand) &&
		!p.removeFromZone(card, models.ZoneBoard) &&
		!p.removeFromZone(card, models.ZoneScore) {
		return invariant("return: card %d not in any zone of player %d", card, player)
	}
	age := cards.MustGet(card).Age
	gs.Supply[age] = append([]int{card}, gs.Supply[age]...)

	gs.emit(source, models.EventReturned, map[string]any{
		"player": player,
		"card":   card,
		"age":    age,
	})
	return nil
}

// Reveal emits a card_revealed event; the state is unchanged.
func Reveal(gs *GameState, player, card int, source string) {
	gs.emit(source, models.EventCardRevealed, map[string]any{
		"player": player,
		"card":   card,
	})
}

// Exchange swaps card sets between two zones atomically: cardsA leave
// zoneA of playerA for zoneB of playerB, and cardsB travel the other way.
// Same-player exchanges (hand vs score) pass the same id twice. Membership
// is verified before any card moves.
func Exchange(gs *GameState, playerA int, zoneA models.Zone, cardsA []int, playerB int, zoneB models.Zone, cardsB []int, source string) error {
	pa := gs.GetPlayer(playerA)
	pb := gs.GetPlayer(playerB)
	if pa == nil || pb == nil {
		return invariant("exchange: bad players %d, %d", playerA, playerB)
	}

	if err := verifyInZone(pa, zoneA, cardsA); err != nil {
		return err
	}
	if err := verifyInZone(pb, zoneB, cardsB); err != nil {
		return err
	}

	for _, card := range cardsA {
		pa.removeFromZone(card, zoneA)
	}
	for _, card := range cardsB {
		pb.removeFromZone(card, zoneB)
	}
	for _, card := range cardsA {
		pb.addToZone(card, zoneB)
		gs.emit(source, models.EventTransferred, map[string]any{
			"fromPlayer": playerA,
			"toPlayer":   playerB,
			"card":       card,
			"fromZone":   string(zoneA),
			"toZone":     string(zoneB),
			"exchange":   true,
		})
	}
	for _, card := range cardsB {
		pa.addToZone(card, zoneA)
		gs.emit(source, models.EventTransferred, map[string]any{
			"fromPlayer": playerB,
			"toPlayer":   playerA,
			"card":       card,
			"fromZone":   string(zoneB),
			"toZone":     string(zoneA),
			"exchange":   true,
		})
	}
	return nil
}

func verifyInZone(p *Player, zone models.Zone, ids []int) error {
	var pool []int
	switch zone {
	case models.ZoneHand:
		pool = p.Hand
	case models.ZoneScore:
		pool = p.Score
	case models.ZoneBoard:
		for c := range p.Stacks {
			pool = append(pool, p.Stacks[c].Cards...)
		}
	}
	have := make(map[int]int)
	for _, id := range pool {
		have[id]++
	}
	for _, id := range ids {
		if have[id] == 0 {
			return invariant("exchange: card %d not in %s of player %d", id, zone, p.ID)
		}
		have[id]--
	}
	return nil
}
