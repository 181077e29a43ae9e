package game

import (
	"testing"

	"github.com/lukev/innovation_server/internal/models"
)

func TestDrawSkipsEmptyAges(t *testing.T) {
	gs := bareState()
	gs.Supply[2] = []int{20, 21, 22, 23, 24}

	card, err := Draw(gs, 0, 1, "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card == 0 {
		t.Fatalf("expected a drawn card")
	}

	if len(gs.Supply[2]) != 4 {
		t.Errorf("age-2 pile should have 4 cards, got %d", len(gs.Supply[2]))
	}
	if len(gs.Players[0].Hand) != 1 {
		t.Errorf("hand should gain exactly one card, got %d", len(gs.Players[0].Hand))
	}

	ev := gs.EventLog[len(gs.EventLog)-1]
	if ev.Type != models.EventDrew {
		t.Fatalf("expected drew event, got %s", ev.Type)
	}
	if evInt(t, ev, "fromAge") != 2 || evInt(t, ev, "requestedAge") != 1 {
		t.Errorf("expected drew{fromAge=2, requestedAge=1}, got %v", ev.Data)
	}
}

func TestDrawPastAgeTenEndsGame(t *testing.T) {
	gs := bareState()
	gs.Players[0].Score = []int{13} // The Wheel, 1 point
	gs.Players[1].Score = []int{}

	_, err := Draw(gs, 0, 10, "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gs.Phase != PhaseGameOver {
		t.Fatalf("expected GameOver, got %v", gs.Phase)
	}
	if gs.WinCondition != WinScore {
		t.Errorf("expected score win condition, got %s", gs.WinCondition)
	}
	if gs.Winner == nil || *gs.Winner != 0 {
		t.Errorf("player 0 has the higher score and should win")
	}
	if countEvents(gs.EventLog, models.EventGameEnd) != 1 {
		t.Errorf("expected exactly one game_end event")
	}
}

func TestMeldContinuesSplay(t *testing.T) {
	gs := bareState()
	p := gs.Players[0]
	putOnBoard(p, 2, 8) // two red cards
	p.Stacks[models.ColorRed].Splay = models.SplayLeft
	p.Hand = []int{10} // Oars, red

	if err := Meld(gs, 0, 10, "test"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stack := p.Stacks[models.ColorRed]
	if stack.TopCard() != 10 {
		t.Errorf("melded card should be on top, got %d", stack.TopCard())
	}
	if stack.Splay != models.SplayLeft {
		t.Errorf("meld should continue the existing splay")
	}
}

func TestTuckPrepends(t *testing.T) {
	gs := bareState()
	p := gs.Players[0]
	putOnBoard(p, 2)
	p.Hand = []int{8}

	if err := Tuck(gs, 0, 8, models.ColorRed, "test"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stack := p.Stacks[models.ColorRed]
	if stack.Cards[0] != 8 {
		t.Errorf("tucked card should be at the bottom, got %v", stack.Cards)
	}
	if len(p.TurnActions.Tucked) != 1 {
		t.Errorf("tuck should be recorded in turn actions")
	}
}

func TestScoreFromHand(t *testing.T) {
	gs := bareState()
	p := gs.Players[0]
	p.Hand = []int{16} // Calendar, age 2

	if err := ScoreCard(gs, 0, 16, "test"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.ScorePoints() != 2 {
		t.Errorf("expected 2 points, got %d", p.ScorePoints())
	}
	ev := gs.EventLog[len(gs.EventLog)-1]
	if evInt(t, ev, "pointsGained") != 2 {
		t.Errorf("scored event should carry pointsGained=2, got %v", ev.Data)
	}
}

func TestSplayRequiresTwoCards(t *testing.T) {
	gs := bareState()
	p := gs.Players[0]
	putOnBoard(p, 2)

	if err := SplayStack(gs, 0, models.ColorRed, models.SplayLeft, "test"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gs.EventLog) != 0 {
		t.Errorf("splaying a single-card stack should be a silent no-op")
	}
	if p.Stacks[models.ColorRed].EffectiveSplay() != models.SplayNone {
		t.Errorf("single-card stack must report unsplayed")
	}

	putOnBoard(p, 8)
	if err := SplayStack(gs, 0, models.ColorRed, models.SplayRight, "test"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Stacks[models.ColorRed].EffectiveSplay() != models.SplayRight {
		t.Errorf("expected splay right")
	}
	if countEvents(gs.EventLog, models.EventSplayed) != 1 {
		t.Errorf("expected one splayed event")
	}
}

func TestSplayDirectionDropsBelowTwoCards(t *testing.T) {
	gs := bareState()
	p := gs.Players[0]
	putOnBoard(p, 2, 8)
	p.Stacks[models.ColorRed].Splay = models.SplayUp

	if !p.removeFromZone(8, models.ZoneBoard) {
		t.Fatalf("expected removal to succeed")
	}
	if p.Stacks[models.ColorRed].Splay != models.SplayNone {
		t.Errorf("splay should clear when the stack drops below two cards")
	}
}

func TestReturnGoesToPileBottom(t *testing.T) {
	gs := bareState()
	gs.Supply[1] = []int{13, 14}
	gs.Players[0].Hand = []int{9} // Mysticism, age 1

	if err := ReturnCard(gs, 0, 9, "test"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gs.Supply[1][0] != 9 {
		t.Errorf("returned card should be at the pile bottom, got %v", gs.Supply[1])
	}
}

func TestReturnRevivesEmptyAge(t *testing.T) {
	gs := bareState()
	gs.Players[0].Hand = []int{9}

	if err := ReturnCard(gs, 0, 9, "test"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	card, err := Draw(gs, 1, 1, "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card != 9 {
		t.Errorf("draw should find the returned card, got %d", card)
	}
}

func TestTransferBetweenPlayers(t *testing.T) {
	gs := bareState()
	gs.Players[0].Hand = []int{5}

	if err := Transfer(gs, 0, 1, 5, models.ZoneHand, models.ZoneScore, "test"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gs.Players[0].Hand) != 0 || len(gs.Players[1].Score) != 1 {
		t.Errorf("card should move from hand 0 to score 1")
	}
	if len(gs.Players[1].TurnActions.Scored) != 0 {
		t.Errorf("a transfer must not count as scoring")
	}
}

func TestTransferMissingCardIsInvariantViolation(t *testing.T) {
	gs := bareState()
	err := Transfer(gs, 0, 1, 5, models.ZoneHand, models.ZoneHand, "test")
	if _, ok := err.(*InvariantError); !ok {
		t.Errorf("expected InvariantError, got %v", err)
	}
}

func TestExchangeAtomic(t *testing.T) {
	gs := bareState()
	gs.Players[0].Hand = []int{5, 16}
	gs.Players[0].Score = []int{13}

	err := Exchange(gs, 0, models.ZoneHand, []int{5, 16}, 0, models.ZoneScore, []int{13}, "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gs.Players[0].Hand) != 1 || gs.Players[0].Hand[0] != 13 {
		t.Errorf("hand should hold the former score card, got %v", gs.Players[0].Hand)
	}
	if len(gs.Players[0].Score) != 2 {
		t.Errorf("score should hold both former hand cards, got %v", gs.Players[0].Score)
	}
}

func TestExchangeRefusesMissingCards(t *testing.T) {
	gs := bareState()
	gs.Players[0].Hand = []int{5}

	err := Exchange(gs, 0, models.ZoneHand, []int{5, 16}, 0, models.ZoneScore, nil, "test")
	if _, ok := err.(*InvariantError); !ok {
		t.Fatalf("expected InvariantError, got %v", err)
	}
	if len(gs.Players[0].Hand) != 1 {
		t.Errorf("failed exchange must not move any cards")
	}
}

func TestRevealLeavesStateUntouched(t *testing.T) {
	gs := bareState()
	gs.Players[0].Hand = []int{5}

	Reveal(gs, 0, 5, "test")
	if len(gs.Players[0].Hand) != 1 {
		t.Errorf("reveal must not move the card")
	}
	if countEvents(gs.EventLog, models.EventCardRevealed) != 1 {
		t.Errorf("expected a card_revealed event")
	}
}
