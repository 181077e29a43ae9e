package game

import (
	"testing"

	"github.com/lukev/innovation_server/internal/models"
)

func TestCalendarDrawsWhenScoreExceedsHand(t *testing.T) {
	gs := bareState()
	putOnBoard(gs.Players[0], 16) // Calendar
	putOnBoard(gs.Players[1], 13) // no Leaves
	gs.Players[0].Score = []int{9}
	gs.Supply[3] = []int{26, 28, 33}

	res := runDogma(t, gs, 16, declineAll)

	if len(res.NewState.Players[0].Hand) != 2 {
		t.Errorf("Calendar should draw two 3s, got %d cards", len(res.NewState.Players[0].Hand))
	}
}

func TestCalendarNoopWithEqualCounts(t *testing.T) {
	gs := bareState()
	putOnBoard(gs.Players[0], 16)
	putOnBoard(gs.Players[1], 13)
	gs.Supply[3] = []int{26}

	res := runDogma(t, gs, 16, declineAll)

	if len(res.NewState.Players[0].Hand) != 0 {
		t.Errorf("Calendar should do nothing with an empty score pile")
	}
}

func TestFermentingDrawsPerTwoLeaves(t *testing.T) {
	gs := bareState()
	putOnBoard(gs.Players[0], 20) // Fermenting: 2 Leaves
	putOnBoard(gs.Players[0], 11) // Pottery: 3 Leaves -> 5 total
	putOnBoard(gs.Players[1], 13)
	gs.Supply[2] = []int{16, 17, 19}

	res := runDogma(t, gs, 20, declineAll)

	// 5 Leaves -> two draws.
	if len(res.NewState.Players[0].Hand) != 2 {
		t.Errorf("expected 2 draws for 5 Leaves, got %d", len(res.NewState.Players[0].Hand))
	}
}

func TestConstructionDemandTakesTwo(t *testing.T) {
	gs := bareState()
	putOnBoard(gs.Players[0], 18) // Construction
	putOnBoard(gs.Players[1], 11) // no Castles: affected
	gs.Players[1].Hand = []int{4, 9}
	gs.Supply[2] = []int{16}

	res := runDogma(t, gs, 18, declineAll)

	if len(res.NewState.Players[0].Hand) != 2 {
		t.Errorf("demander should receive both hand cards, got %v", res.NewState.Players[0].Hand)
	}
	// The demanded player draws a 2 afterwards.
	if len(res.NewState.Players[1].Hand) != 1 {
		t.Errorf("demanded player should hold the drawn 2, got %v", res.NewState.Players[1].Hand)
	}
}

func TestMathematicsMeldsOneHigher(t *testing.T) {
	gs := bareState()
	putOnBoard(gs.Players[0], 22) // Mathematics
	putOnBoard(gs.Players[1], 13)
	gs.Players[0].Hand = []int{9} // return the 1
	gs.Supply[2] = []int{25}      // Road Building, red

	res := runDogma(t, gs, 22, acceptAll)

	p := res.NewState.Players[0]
	if p.Stacks[models.ColorRed].TopCard() != 25 {
		t.Errorf("drawn 2 should be melded, red top is %d", p.Stacks[models.ColorRed].TopCard())
	}
	if len(p.Hand) != 0 {
		t.Errorf("returned card should leave the hand")
	}
}

func TestPhilosophySplayAndScore(t *testing.T) {
	gs := bareState()
	putOnBoard(gs.Players[0], 5, 24) // purple x2: Code of Laws under Philosophy
	putOnBoard(gs.Players[1], 13)
	gs.Players[0].Hand = []int{16}

	// Purple is the only splayable color; accepting everything splays it
	// left and scores the hand card.
	res := runDogma(t, gs, 24, acceptAll)

	p := res.NewState.Players[0]
	if p.Stacks[models.ColorPurple].EffectiveSplay() != models.SplayLeft {
		t.Errorf("purple should be splayed left")
	}
	if p.ScorePoints() != 2 {
		t.Errorf("hand card should be scored, got %d points", p.ScorePoints())
	}
}

func TestMonotheismSharedTuck(t *testing.T) {
	gs := bareState()
	putOnBoard(gs.Players[0], 23) // Monotheism: 3 Castles
	putOnBoard(gs.Players[1], 13) // The Wheel: 3 Castles -> sharing
	gs.Supply[1] = []int{6, 9, 4}
	gs.Supply[2] = []int{16, 17}

	res := runDogma(t, gs, 23, declineAll)

	// Non-demand effect is shared: both players draw and tuck a 1, and
	// the activator receives a free draw for the opponent's change.
	if got := countEvents(res.Events, models.EventTucked); got != 2 {
		t.Errorf("expected 2 tucks (shared), got %d", got)
	}
	if got := countEvents(res.Events, models.EventSharedEffect); got != 1 {
		t.Errorf("expected the sharing bonus, got %d shared_effect events", got)
	}
}

func TestEngineeringDemandTakesAllTopCastles(t *testing.T) {
	gs := bareState()
	putOnBoard(gs.Players[0], 29) // Engineering
	putOnBoard(gs.Players[1], 13) // The Wheel: Castle top card
	putOnBoard(gs.Players[1], 11) // Pottery: no Castle
	// p0 Castles: Engineering has 2 (castle, image, lightbulb, castle).
	// p1: The Wheel has 3, so p0 needs more Castles to issue the demand.
	putOnBoard(gs.Players[0], 6) // Domestication: 2 Castles -> p0 ahead 4 to 3

	res := runDogma(t, gs, 29, declineAll)

	p1 := res.NewState.Players[1]
	if p1.Stacks[models.ColorGreen].TopCard() != 0 {
		t.Errorf("The Wheel should have been taken, green top is %d", p1.Stacks[models.ColorGreen].TopCard())
	}
	if len(res.NewState.Players[0].Score) == 0 {
		t.Errorf("demanded top Castle cards land in the demander's score pile")
	}
	// Pottery has no Castle and stays.
	if p1.Stacks[models.ColorBlue].TopCard() != 11 {
		t.Errorf("Pottery should remain on the board")
	}
}

func TestMedicineExchangesScoreCards(t *testing.T) {
	gs := bareState()
	putOnBoard(gs.Players[0], 32) // Medicine: 2 Leaves
	putOnBoard(gs.Players[1], 13) // no Leaves: affected
	gs.Players[0].Score = []int{9}  // lowest of demander
	gs.Players[1].Score = []int{26} // highest of demanded player (a 3)

	res := runDogma(t, gs, 32, declineAll)

	p0, p1 := res.NewState.Players[0], res.NewState.Players[1]
	if p0.ScorePoints() != 3 {
		t.Errorf("demander should now hold the 3, got %d points", p0.ScorePoints())
	}
	if p1.ScorePoints() != 1 {
		t.Errorf("demanded player should now hold the 1, got %d points", p1.ScorePoints())
	}
}

func TestPaperSplaysAndDraws(t *testing.T) {
	gs := bareState()
	putOnBoard(gs.Players[0], 4, 34) // green x2: Clothing under Paper
	putOnBoard(gs.Players[1], 13)
	gs.Supply[4] = []int{36, 37}

	res := runDogma(t, gs, 34, acceptAll)

	p := res.NewState.Players[0]
	if p.Stacks[models.ColorGreen].EffectiveSplay() != models.SplayLeft {
		t.Errorf("green should be splayed left")
	}
	// One color splayed left -> one 4 drawn.
	if len(p.Hand) != 1 {
		t.Errorf("expected one drawn 4, got %d cards", len(p.Hand))
	}
}

func TestTranslationClaimsWorldWithAllCrownTops(t *testing.T) {
	gs := bareState()
	putOnBoard(gs.Players[0], 35) // Translation: 3 Crowns top card
	putOnBoard(gs.Players[0], 12) // Sailing: has a Crown
	putOnBoard(gs.Players[1], 13)

	res := runDogma(t, gs, 35, declineAll)

	found := false
	for _, a := range res.NewState.Players[0].SpecialAchievements {
		if a == AchWorld {
			found = true
		}
	}
	if !found {
		t.Errorf("all-Crown tops should claim World")
	}
}
