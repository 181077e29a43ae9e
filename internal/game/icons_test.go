package game

import (
	"testing"

	"github.com/lukev/innovation_server/internal/models"
)

// Card 8 (Metalworking): Castle, Castle, image, Castle.
// Card 2 (Archery): Castle, Lightbulb, image, Castle.
// Card 10 (Oars): Castle, Crown, image, Castle.

func TestCountIconsTopCardOnly(t *testing.T) {
	gs := bareState()
	putOnBoard(gs.Players[0], 8)

	if got := CountIcons(gs, 0, models.IconCastle); got != 3 {
		t.Errorf("expected 3 Castles from Metalworking, got %d", got)
	}
	if got := CountIcons(gs, 0, models.IconLeaf); got != 0 {
		t.Errorf("expected 0 Leaves, got %d", got)
	}
}

func TestCountIconsUnsplayedCoversAll(t *testing.T) {
	gs := bareState()
	putOnBoard(gs.Players[0], 2, 8) // Archery covered by Metalworking

	if got := CountIcons(gs, 0, models.IconCastle); got != 3 {
		t.Errorf("unsplayed stack should count only the top card, got %d", got)
	}
	if got := CountIcons(gs, 0, models.IconLightbulb); got != 0 {
		t.Errorf("covered Lightbulb should be hidden, got %d", got)
	}
}

func TestCountIconsSplayLeft(t *testing.T) {
	gs := bareState()
	p := gs.Players[0]
	putOnBoard(p, 2, 8)
	p.Stacks[models.ColorRed].Splay = models.SplayLeft

	// Splay left reveals the rightmost position of the covered Archery,
	// which is a Castle: 3 (top) + 1.
	if got := CountIcons(gs, 0, models.IconCastle); got != 4 {
		t.Errorf("expected 4 Castles with splay left, got %d", got)
	}
}

func TestCountIconsSplayRight(t *testing.T) {
	gs := bareState()
	p := gs.Players[0]
	putOnBoard(p, 2, 8)
	p.Stacks[models.ColorRed].Splay = models.SplayRight

	// Splay right reveals Archery's top and left positions: Castle and
	// Lightbulb.
	if got := CountIcons(gs, 0, models.IconCastle); got != 4 {
		t.Errorf("expected 4 Castles with splay right, got %d", got)
	}
	if got := CountIcons(gs, 0, models.IconLightbulb); got != 1 {
		t.Errorf("expected 1 Lightbulb with splay right, got %d", got)
	}
}

func TestCountIconsSplayUp(t *testing.T) {
	gs := bareState()
	p := gs.Players[0]
	putOnBoard(p, 10, 8) // Oars covered by Metalworking
	p.Stacks[models.ColorRed].Splay = models.SplayUp

	// Splay up reveals Oars' top, left, and middle positions: Castle,
	// Crown, and the image slot.
	if got := CountIcons(gs, 0, models.IconCastle); got != 4 {
		t.Errorf("expected 4 Castles with splay up, got %d", got)
	}
	if got := CountIcons(gs, 0, models.IconCrown); got != 1 {
		t.Errorf("expected 1 Crown with splay up, got %d", got)
	}
}

func TestSplayIgnoredBelowTwoCards(t *testing.T) {
	gs := bareState()
	p := gs.Players[0]
	putOnBoard(p, 8)
	p.Stacks[models.ColorRed].Splay = models.SplayUp

	if got := CountIcons(gs, 0, models.IconCastle); got != 3 {
		t.Errorf("a one-card stack contributes only its own icons, got %d", got)
	}
}

func TestVisibleIconTotal(t *testing.T) {
	gs := bareState()
	putOnBoard(gs.Players[0], 8)  // 3 Castles
	putOnBoard(gs.Players[0], 11) // Pottery: 3 Leaves

	if got := VisibleIconTotal(gs, 0); got != 6 {
		t.Errorf("expected 6 visible icons, got %d", got)
	}
}
