package stomper

import (
	"fmt"

	"github.com/arcadelab/stomper/internal/core"
)

// TextHandle is a mutable piece of HUD text. The renderer reads handles;
// the simulation writes them.
type TextHandle struct {
	Text  string
	Color core.Color
}

// Set replaces the handle's text.
func (t *TextHandle) Set(text string) {
	t.Text = text
}

// HUD owns the score display handle and any end-of-run banners.
type HUD struct {
	Score     *TextHandle
	Banners   []*TextHandle
	lastScore int
}

// NewHUD creates a HUD with a zeroed score display and no banners.
func NewHUD() *HUD {
	return &HUD{
		Score: &TextHandle{Text: "Score: 0", Color: core.ColorBrightWhite},
	}
}

// UpdateScore pushes a new score text, but only when the score actually
// changed since the last push.
func (h *HUD) UpdateScore(score int) {
	if score == h.lastScore {
		return
	}
	h.lastScore = score
	h.Score.Set(fmt.Sprintf("Score: %d", score))
}

// PostBanner adds an end-of-run banner. Posting the same text twice is a
// no-op, so a condition that persists across frames shows one banner.
func (h *HUD) PostBanner(text string, c core.Color) {
	for _, b := range h.Banners {
		if b.Text == text {
			return
		}
	}
	h.Banners = append(h.Banners, &TextHandle{Text: text, Color: c})
}
