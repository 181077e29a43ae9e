package game

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/lukev/innovation_server/internal/models"
)

// TestRandomPlayPreservesInvariants drives random legal actions and
// random valid choice answers from a seeded start and asserts the
// universal invariants after every step.
func TestRandomPlayPreservesInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64Range(1, 1_000_000).Draw(rt, "seed")
		gs, err := InitializeGame(InitOptions{GameID: "prop", Seed: seed, PlayerNames: [2]string{"Alice", "Bob"}})
		if err != nil {
			rt.Fatalf("init: %v", err)
		}

		steps := rapid.IntRange(1, 60).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			switch gs.Phase {
			case PhaseGameOver:
				i = steps
				continue

			case PhaseAwaitingChoice:
				answers := ExpandChoice(gs.ActiveEffect.Choice, gs)
				if len(answers) == 0 {
					rt.Fatalf("pending choice with no valid answers: %+v", gs.ActiveEffect.Choice)
				}
				pick := rapid.IntRange(0, len(answers)-1).Draw(rt, "answer")
				res, err := ProcessChoice(gs, answers[pick])
				if err != nil {
					rt.Fatalf("step %d: valid answer rejected: %v", i, err)
				}
				gs = res.NewState

			case PhaseAwaitingAction:
				actions := GetLegalActions(gs, gs.CurrentPlayer)
				if len(actions) == 0 {
					rt.Fatalf("current player has no legal actions")
				}
				pick := rapid.IntRange(0, len(actions)-1).Draw(rt, "action")
				res, err := ProcessAction(gs, actions[pick])
				if err != nil {
					rt.Fatalf("step %d: legal action rejected: %v", i, err)
				}
				gs = res.NewState
			}

			assertInvariants(rt, gs)
		}
	})
}

func assertInvariants(rt *rapid.T, gs *GameState) {
	// Card conservation and zone uniqueness.
	seen := make(map[int]bool)
	total := 0
	add := func(ids []int) {
		for _, id := range ids {
			if seen[id] {
				rt.Fatalf("card %d appears in two zones", id)
			}
			seen[id] = true
			total++
		}
	}
	for age := range gs.Supply {
		add(gs.Supply[age])
	}
	for age := 1; age < len(gs.AvailableAchievements); age++ {
		if id := gs.AvailableAchievements[age]; id != 0 {
			add([]int{id})
		}
	}
	for _, p := range gs.Players {
		add(p.Hand)
		for c := range p.Stacks {
			add(p.Stacks[c].Cards)
		}
		add(p.Score)
		add(p.NormalAchievements)
	}
	if total != 105 {
		rt.Fatalf("card conservation broken: %d cards accounted for", total)
	}

	// Actions-remaining bound.
	if gs.ActionsRemaining < 0 || gs.ActionsRemaining > 2 {
		rt.Fatalf("actions remaining out of bounds: %d", gs.ActionsRemaining)
	}
	if gs.CurrentPlayer != 0 && gs.CurrentPlayer != 1 {
		rt.Fatalf("invalid current player %d", gs.CurrentPlayer)
	}

	// Event log monotonicity.
	for i := 1; i < len(gs.EventLog); i++ {
		if gs.EventLog[i].ID <= gs.EventLog[i-1].ID {
			rt.Fatalf("event ids not strictly increasing at index %d", i)
		}
		if gs.EventLog[i].Timestamp.Before(gs.EventLog[i-1].Timestamp) {
			rt.Fatalf("event timestamps decreased at index %d", i)
		}
	}

	// Splay semantics.
	for _, p := range gs.Players {
		for c := range p.Stacks {
			if len(p.Stacks[c].Cards) < 2 && p.Stacks[c].EffectiveSplay() != models.SplayNone {
				rt.Fatalf("short stack reports a splay")
			}
		}
	}

	// Active effect exists iff awaiting a choice.
	if (gs.Phase == PhaseAwaitingChoice) != (gs.ActiveEffect != nil) {
		rt.Fatalf("active effect presence disagrees with phase %v", gs.Phase)
	}

	// No-achievement double claim.
	claimed := make(map[int]bool)
	for _, p := range gs.Players {
		for _, id := range p.NormalAchievements {
			if claimed[id] {
				rt.Fatalf("achievement card %d claimed twice", id)
			}
			claimed[id] = true
		}
	}
}

// TestRandomPlayDeterminism replays the identical decision stream twice
// and compares checksums at the end.
func TestRandomPlayDeterminism(t *testing.T) {
	type decision struct {
		action *models.Action
		answer *models.ChoiceAnswer
	}

	seed := int64(4242)
	var script []decision

	// First run: record greedy-first decisions.
	gs, err := InitializeGame(InitOptions{GameID: "det", Seed: seed, PlayerNames: [2]string{"Alice", "Bob"}})
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	for i := 0; i < 40 && gs.Phase != PhaseGameOver; i++ {
		if gs.Phase == PhaseAwaitingChoice {
			answers := ExpandChoice(gs.ActiveEffect.Choice, gs)
			ans := answers[0]
			res, err := ProcessChoice(gs, ans)
			if err != nil {
				t.Fatalf("choice: %v", err)
			}
			script = append(script, decision{answer: &ans})
			gs = res.NewState
			continue
		}
		actions := GetLegalActions(gs, gs.CurrentPlayer)
		a := actions[i%len(actions)]
		res, err := ProcessAction(gs, a)
		if err != nil {
			t.Fatalf("action: %v", err)
		}
		script = append(script, decision{action: &a})
		gs = res.NewState
	}
	want, err := ComputeChecksum(gs)
	if err != nil {
		t.Fatalf("checksum: %v", err)
	}

	// Second run: replay the script.
	gs2, err := InitializeGame(InitOptions{GameID: "det", Seed: seed, PlayerNames: [2]string{"Alice", "Bob"}})
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	for _, d := range script {
		var res *StepResult
		if d.action != nil {
			res, err = ProcessAction(gs2, *d.action)
		} else {
			res, err = ProcessChoice(gs2, *d.answer)
		}
		if err != nil {
			t.Fatalf("replay diverged: %v", err)
		}
		gs2 = res.NewState
	}
	got, err := ComputeChecksum(gs2)
	if err != nil {
		t.Fatalf("checksum: %v", err)
	}
	if got != want {
		t.Errorf("replay produced a different state: %s vs %s", got, want)
	}
}
