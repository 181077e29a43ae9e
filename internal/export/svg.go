// Package export renders game-state snapshots for replay tooling.
package export

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/lukev/innovation_server/internal/cards"
	"github.com/lukev/innovation_server/internal/game"
	"github.com/lukev/innovation_server/internal/models"
)

// SVGOptions configures SVG board export.
type SVGOptions struct {
	Width      int
	Height     int
	CardWidth  int
	CardHeight int
	Margin     int
	Title      string
}

// DefaultSVGOptions returns sensible default export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:      1200,
		Height:     800,
		CardWidth:  120,
		CardHeight: 28,
		Margin:     40,
		Title:      "Innovation",
	}
}

var colorFills = map[models.Color]string{
	models.ColorYellow: "fill:#d4a017",
	models.ColorRed:    "fill:#b33939",
	models.ColorPurple: "fill:#6c3483",
	models.ColorGreen:  "fill:#1e8449",
	models.ColorBlue:   "fill:#2471a3",
}

// ExportSVG renders both players' boards, supply counts, scores, and
// achievements as a single SVG document.
func ExportSVG(gs *game.GameState, opts SVGOptions) ([]byte, error) {
	if gs == nil {
		return nil, fmt.Errorf("state cannot be nil")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultSVGOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.CardWidth <= 0 {
		opts.CardWidth = 120
	}
	if opts.CardHeight <= 0 {
		opts.CardHeight = 28
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#f5f0e6")

	if opts.Title != "" {
		canvas.Text(opts.Margin, opts.Margin-10, opts.Title, "font-family:sans-serif;font-size:20px;fill:#222")
	}

	// Supply row across the top.
	x := opts.Margin
	y := opts.Margin + 10
	for age := 1; age <= cards.MaxAge; age++ {
		label := fmt.Sprintf("%d: %d", age, len(gs.Supply[age]))
		canvas.Rect(x, y, 70, 24, "fill:#ddd;stroke:#999")
		canvas.Text(x+8, y+17, label, "font-family:sans-serif;font-size:13px;fill:#333")
		x += 80
	}

	// One half per player.
	half := (opts.Height - y - 50) / game.NumPlayers
	for pid, p := range gs.Players {
		top := y + 40 + pid*half
		drawPlayer(canvas, gs, p, pid, opts, top)
	}

	canvas.End()
	return buf.Bytes(), nil
}

func drawPlayer(canvas *svg.SVG, gs *game.GameState, p *game.Player, pid int, opts SVGOptions, top int) {
	header := fmt.Sprintf("%s - score %d, hand %d, achievements %d",
		p.Name, p.ScorePoints(), len(p.Hand), p.AchievementCount())
	if gs.CurrentPlayer == pid && gs.Phase != game.PhaseGameOver {
		header += " (to act)"
	}
	canvas.Text(opts.Margin, top, header, "font-family:sans-serif;font-size:15px;fill:#111")

	y := top + 12
	for _, color := range models.AllColors {
		stack := p.Stacks[color]
		x := opts.Margin
		canvas.Text(x, y+18, color.String(), "font-family:sans-serif;font-size:12px;fill:#555")
		x += 70

		for _, id := range stack.Cards {
			def := cards.MustGet(id)
			canvas.Rect(x, y, opts.CardWidth, opts.CardHeight, colorFills[color]+";stroke:#333")
			canvas.Text(x+6, y+19, fmt.Sprintf("%s (%d)", def.Name, def.Age),
				"font-family:sans-serif;font-size:11px;fill:#fff")
			x += opts.CardWidth / 3
		}
		if splay := stack.EffectiveSplay(); splay != models.SplayNone {
			canvas.Text(x+opts.CardWidth, y+19, "splayed "+splay.String(),
				"font-family:sans-serif;font-size:11px;fill:#777")
		}
		y += opts.CardHeight + 6
	}
}
