package game

import (
	"encoding/json"

	"github.com/lukev/innovation_server/internal/models"
)

// Clone deep-copies the state. The engine clones once per ProcessAction /
// ProcessChoice call and applies every primitive to the working copy, so a
// failed resolution is rolled back by discarding the clone and the caller
// never observes partial progress.
func (gs *GameState) Clone() *GameState {
	out := &GameState{
		GameID:           gs.GameID,
		Seed:             gs.Seed,
		RNG:              gs.RNG,
		Phase:            gs.Phase,
		CurrentPlayer:    gs.CurrentPlayer,
		TurnNumber:       gs.TurnNumber,
		ActionsRemaining: gs.ActionsRemaining,
		NextEventID:      gs.NextEventID,
		NextChoiceID:     gs.NextChoiceID,
		WinCondition:     gs.WinCondition,
	}

	for i, p := range gs.Players {
		out.Players[i] = clonePlayer(p)
	}
	for age := range gs.Supply {
		out.Supply[age] = cloneInts(gs.Supply[age])
	}
	out.AvailableAchievements = gs.AvailableAchievements
	out.AvailableSpecial = append([]SpecialAchievement(nil), gs.AvailableSpecial...)

	out.EventLog = make([]models.Event, len(gs.EventLog))
	for i, ev := range gs.EventLog {
		out.EventLog[i] = cloneEvent(ev)
	}

	if gs.ActiveEffect != nil {
		out.ActiveEffect = cloneActiveEffect(gs.ActiveEffect)
	}
	if gs.Winner != nil {
		w := *gs.Winner
		out.Winner = &w
	}
	return out
}

func clonePlayer(p *Player) *Player {
	if p == nil {
		return nil
	}
	out := &Player{
		ID:   p.ID,
		Name: p.Name,
		Hand: cloneInts(p.Hand),
		Score: cloneInts(p.Score),
		NormalAchievements:  cloneInts(p.NormalAchievements),
		SpecialAchievements: append([]SpecialAchievement(nil), p.SpecialAchievements...),
		TurnActions: TurnActions{
			Scored: cloneInts(p.TurnActions.Scored),
			Tucked: cloneInts(p.TurnActions.Tucked),
			Melded: cloneInts(p.TurnActions.Melded),
		},
	}
	for c := range p.Stacks {
		out.Stacks[c] = Stack{Cards: cloneInts(p.Stacks[c].Cards), Splay: p.Stacks[c].Splay}
	}
	return out
}

func cloneActiveEffect(ae *ActiveEffect) *ActiveEffect {
	out := &ActiveEffect{
		CardID:          ae.CardID,
		Activator:       ae.Activator,
		EffectIndex:     ae.EffectIndex,
		Executors:       cloneInts(ae.Executors),
		ExecIndex:       ae.ExecIndex,
		Started:         ae.Started,
		Sharing:         cloneInts(ae.Sharing),
		Affected:        cloneInts(ae.Affected),
		EventMark:       ae.EventMark,
		OpponentChanged: ae.OpponentChanged,
		DemandChanged:   ae.DemandChanged,
	}
	// The effect state is opaque JSON-like data; a marshal round trip is
	// the one copy that is guaranteed to match what Deserialize produces.
	if ae.EffectState != nil {
		out.EffectState = cloneJSONMap(ae.EffectState)
	}
	if ae.Choice != nil {
		c := *ae.Choice
		c.Cards = cloneInts(ae.Choice.Cards)
		c.OrderCards = cloneInts(ae.Choice.OrderCards)
		c.AvailableColors = append([]models.Color(nil), ae.Choice.AvailableColors...)
		c.AvailablePlayers = cloneInts(ae.Choice.AvailablePlayers)
		out.Choice = &c
	}
	return out
}

func cloneEvent(ev models.Event) models.Event {
	out := ev
	if ev.Data != nil {
		out.Data = cloneJSONMap(ev.Data)
	}
	return out
}

func cloneJSONMap(m map[string]any) map[string]any {
	raw, err := json.Marshal(m)
	if err != nil {
		panic(invariant("unserializable state map: %v", err))
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(invariant("state map round trip failed: %v", err))
	}
	return out
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)
	return out
}
