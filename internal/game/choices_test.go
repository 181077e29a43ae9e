package game

import (
	"testing"

	"github.com/lukev/innovation_server/internal/models"
)

func TestExpandYesNo(t *testing.T) {
	choice := &models.Choice{ID: 1, PlayerID: 0, Kind: models.ChoiceYesNo}
	answers := ExpandChoice(choice, nil)
	if len(answers) != 2 {
		t.Fatalf("yes_no should expand to exactly two answers, got %d", len(answers))
	}
	for _, a := range answers {
		if err := ValidateAnswer(choice, a); err != nil {
			t.Errorf("expanded answer failed validation: %v", err)
		}
	}
}

func TestExpandSelectCardsIncludesEmpty(t *testing.T) {
	choice := &models.Choice{
		ID: 1, PlayerID: 0, Kind: models.ChoiceSelectCards,
		Cards: []int{5, 6, 7}, MinCards: 0, MaxCards: 2,
	}
	answers := ExpandChoice(choice, nil)

	// C(3,0) + C(3,1) + C(3,2) = 1 + 3 + 3
	if len(answers) != 7 {
		t.Fatalf("expected 7 subsets, got %d", len(answers))
	}
	if len(answers[0].Cards) != 0 {
		t.Errorf("min=0 expansion should include the empty selection")
	}
	for _, a := range answers {
		if err := ValidateAnswer(choice, a); err != nil {
			t.Errorf("expanded answer %v failed validation: %v", a.Cards, err)
		}
	}
}

func TestExpandSelectPileAndPlayer(t *testing.T) {
	pile := &models.Choice{
		ID: 1, PlayerID: 0, Kind: models.ChoiceSelectPile,
		AvailableColors: []models.Color{models.ColorRed, models.ColorBlue},
	}
	if got := len(ExpandChoice(pile, nil)); got != 2 {
		t.Errorf("expected 2 pile answers, got %d", got)
	}

	player := &models.Choice{
		ID: 2, PlayerID: 0, Kind: models.ChoiceSelectPlayer,
		AvailablePlayers: []int{0, 1},
	}
	answers := ExpandChoice(player, nil)
	if len(answers) != 2 {
		t.Errorf("expected 2 player answers, got %d", len(answers))
	}
	for _, a := range answers {
		if err := ValidateAnswer(player, a); err != nil {
			t.Errorf("expanded answer failed validation: %v", err)
		}
	}
}

func TestExpandOrderCards(t *testing.T) {
	choice := &models.Choice{
		ID: 1, PlayerID: 0, Kind: models.ChoiceOrderCards,
		OrderCards: []int{4, 5, 6},
	}
	answers := ExpandChoice(choice, nil)
	if len(answers) != 6 {
		t.Fatalf("expected 3! = 6 orderings, got %d", len(answers))
	}
	for _, a := range answers {
		if err := ValidateAnswer(choice, a); err != nil {
			t.Errorf("expanded ordering %v failed validation: %v", a.Order, err)
		}
	}
}

func TestValidateAnswerRejections(t *testing.T) {
	choice := &models.Choice{
		ID: 7, PlayerID: 1, Kind: models.ChoiceSelectCards,
		Cards: []int{5, 6}, MinCards: 1, MaxCards: 1,
	}

	cases := []struct {
		name string
		ans  models.ChoiceAnswer
		want models.Reason
	}{
		{"wrong id", models.ChoiceAnswer{ChoiceID: 8, PlayerID: 1, Cards: []int{5}}, models.ReasonChoiceMismatch},
		{"wrong player", models.ChoiceAnswer{ChoiceID: 7, PlayerID: 0, Cards: []int{5}}, models.ReasonChoiceMismatch},
		{"too few", models.ChoiceAnswer{ChoiceID: 7, PlayerID: 1}, models.ReasonInvalidAnswer},
		{"not a candidate", models.ChoiceAnswer{ChoiceID: 7, PlayerID: 1, Cards: []int{9}}, models.ReasonInvalidAnswer},
	}
	for _, tc := range cases {
		err := ValidateAnswer(choice, tc.ans)
		chErr, ok := err.(*IllegalChoiceError)
		if !ok || chErr.Reason != tc.want {
			t.Errorf("%s: expected %s, got %v", tc.name, tc.want, err)
		}
	}
}

func TestProcessChoiceRejectsMismatch(t *testing.T) {
	gs := bareState()
	putOnBoard(gs.Players[0], 5, 1)
	gs.Players[0].Hand = []int{6}
	putOnBoard(gs.Players[1], 11)

	res, err := ProcessAction(gs, models.Action{Type: models.ActionDogma, PlayerID: 0, CardID: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	yes := true
	_, err = ProcessChoice(res.NewState, models.ChoiceAnswer{
		ChoiceID: res.PendingChoice.ID + 99, PlayerID: 0, Yes: &yes,
	})
	if _, ok := err.(*IllegalChoiceError); !ok {
		t.Errorf("expected IllegalChoiceError, got %v", err)
	}

	// The state must be untouched after a rejected answer.
	if res.NewState.Phase != PhaseAwaitingChoice {
		t.Errorf("rejected answer must leave the game awaiting the choice")
	}
}
