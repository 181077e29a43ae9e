package game

import (
	"testing"

	"github.com/lukev/innovation_server/internal/cards"
	"github.com/lukev/innovation_server/internal/models"
)

// evInt reads an integer event payload field regardless of whether the
// value survived a JSON round trip.
func evInt(t *testing.T, ev models.Event, key string) int {
	t.Helper()
	switch v := ev.Data[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		t.Fatalf("event %s has no numeric %q field: %#v", ev.Type, key, ev.Data)
		return 0
	}
}

func countEvents(events []models.Event, typ models.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

// bareState builds a hand-assembled mid-game state for unit tests:
// empty supply, both players empty, player 0 to act with two actions.
func bareState() *GameState {
	gs := &GameState{
		GameID:           "test",
		Seed:             1,
		Phase:            PhaseAwaitingAction,
		CurrentPlayer:    0,
		TurnNumber:       2,
		ActionsRemaining: 2,
		AvailableSpecial: append([]SpecialAchievement(nil), AllSpecialAchievements...),
	}
	for i := 0; i < NumPlayers; i++ {
		gs.Players[i] = &Player{ID: i, Name: "player"}
	}
	return gs
}

// putOnBoard appends cards to their color stacks, bottom to top.
func putOnBoard(p *Player, ids ...int) {
	for _, id := range ids {
		color := cards.MustGet(id).Color
		p.Stacks[color].Cards = append(p.Stacks[color].Cards, id)
	}
}

// cardConservation verifies every card id appears in exactly one zone.
func cardConservation(t *testing.T, gs *GameState) {
	t.Helper()
	seen := make(map[int]string)
	record := func(id int, where string) {
		if prev, dup := seen[id]; dup {
			t.Fatalf("card %d in two zones: %s and %s", id, prev, where)
		}
		seen[id] = where
	}

	for age := 1; age <= cards.MaxAge; age++ {
		for _, id := range gs.Supply[age] {
			record(id, "supply")
		}
	}
	for age := 1; age < cards.MaxAge; age++ {
		if id := gs.AvailableAchievements[age]; id != 0 {
			record(id, "achievement pool")
		}
	}
	for pid, p := range gs.Players {
		for _, id := range p.Hand {
			record(id, "hand")
		}
		for c := range p.Stacks {
			for _, id := range p.Stacks[c].Cards {
				record(id, "board")
			}
		}
		for _, id := range p.Score {
			record(id, "score")
		}
		for _, id := range p.NormalAchievements {
			record(id, "claimed")
		}
		_ = pid
	}

	if len(seen) != cards.TotalCards {
		t.Fatalf("expected %d cards across all zones, found %d", cards.TotalCards, len(seen))
	}
}

// eventLogMonotonic verifies strictly increasing ids and non-decreasing
// timestamps.
func eventLogMonotonic(t *testing.T, gs *GameState) {
	t.Helper()
	for i := 1; i < len(gs.EventLog); i++ {
		prev, cur := gs.EventLog[i-1], gs.EventLog[i]
		if cur.ID <= prev.ID {
			t.Fatalf("event ids not strictly increasing: %d then %d", prev.ID, cur.ID)
		}
		if cur.Timestamp.Before(prev.Timestamp) {
			t.Fatalf("event timestamps decreased at id %d", cur.ID)
		}
	}
}
