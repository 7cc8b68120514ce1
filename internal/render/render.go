// Package render draws cube snapshots as an unfolded cross for the terminal.
//
// Each sticker becomes a colored cell. The cross layout matches the
// snapshot convention: Up on top, then the Left-Front-Right-Back band,
// then Down. Cell size is controlled by a scale factor so the cube can
// grow with the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seamusw/termcube"
)

// maxScale caps how large a single sticker cell can get.
const maxScale = 3

// Option configures a Renderer.
type Option func(*config)

type config struct {
	scale  int
	labels bool
	colors map[termcube.Color]lipgloss.Color
}

func defaultConfig() *config {
	return &config{
		scale:  2,
		labels: false,
		colors: DefaultColors(),
	}
}

// DefaultColors returns the standard sticker palette as ANSI 256 codes.
func DefaultColors() map[termcube.Color]lipgloss.Color {
	return map[termcube.Color]lipgloss.Color{
		termcube.White:  lipgloss.Color("15"),
		termcube.Yellow: lipgloss.Color("220"),
		termcube.Green:  lipgloss.Color("34"),
		termcube.Blue:   lipgloss.Color("27"),
		termcube.Red:    lipgloss.Color("196"),
		termcube.Orange: lipgloss.Color("208"),
	}
}

// WithScale sets the sticker cell size. Values outside [1, 3] are clamped.
func WithScale(scale int) Option {
	return func(c *config) {
		if scale < 1 {
			scale = 1
		}
		if scale > maxScale {
			scale = maxScale
		}
		c.scale = scale
	}
}

// WithLabels prints the sticker's color letter inside each cell, which
// keeps the render readable on terminals without color support.
func WithLabels(enabled bool) Option {
	return func(c *config) {
		c.labels = enabled
	}
}

// WithColors overrides individual sticker colors. Colors not present in
// the map keep their defaults.
func WithColors(colors map[termcube.Color]lipgloss.Color) Option {
	return func(c *config) {
		for sticker, color := range colors {
			c.colors[sticker] = color
		}
	}
}

// Renderer draws snapshots with a fixed configuration. It is safe to
// reuse across frames.
type Renderer struct {
	cfg    *config
	styles map[termcube.Color]lipgloss.Style
}

// New creates a renderer with the given options applied on top of the
// defaults (scale 2, no labels, standard palette).
func New(opts ...Option) *Renderer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	styles := make(map[termcube.Color]lipgloss.Style, len(cfg.colors))
	for sticker, color := range cfg.colors {
		style := lipgloss.NewStyle().Background(color)
		if cfg.labels {
			style = style.Foreground(lipgloss.Color("0"))
		}
		styles[sticker] = style
	}

	return &Renderer{cfg: cfg, styles: styles}
}

// Scale returns the configured cell scale.
func (r *Renderer) Scale() int {
	return r.cfg.scale
}

// Width returns the rendered width in terminal columns for a scale.
// The widest part is the Left-Front-Right-Back band: four faces of
// three stickers each.
func Width(scale int) int {
	return 12 * cellWidth(scale)
}

// Height returns the rendered height in terminal rows for a scale:
// three bands of three sticker rows each.
func Height(scale int) int {
	return 9 * cellHeight(scale)
}

// Fit returns the largest scale whose rendering fits in the given
// terminal area, and at least 1 even when nothing fits.
func Fit(width, height int) int {
	scale := 1
	for s := 2; s <= maxScale; s++ {
		if Width(s) <= width && Height(s) <= height {
			scale = s
		}
	}
	return scale
}

// Terminal cells are roughly twice as tall as wide, so a square sticker
// needs twice as many columns as rows.
func cellWidth(scale int) int {
	return 2 * scale
}

func cellHeight(scale int) int {
	return scale
}

// Render draws the snapshot as an unfolded cross. The returned string
// ends with a newline after the last row.
func (r *Renderer) Render(snap termcube.Snapshot) string {
	var b strings.Builder

	indent := strings.Repeat(" ", 3*cellWidth(r.cfg.scale))

	r.writeBand(&b, snap, indent, []termcube.Slot{termcube.SlotUp})
	r.writeBand(&b, snap, "", []termcube.Slot{
		termcube.SlotLeft, termcube.SlotFront, termcube.SlotRight, termcube.SlotBack,
	})
	r.writeBand(&b, snap, indent, []termcube.Slot{termcube.SlotDown})

	return b.String()
}

// writeBand draws three sticker rows for a horizontal run of faces.
func (r *Renderer) writeBand(b *strings.Builder, snap termcube.Snapshot, indent string, slots []termcube.Slot) {
	height := cellHeight(r.cfg.scale)
	labelRow := (height - 1) / 2

	for row := 0; row < 3; row++ {
		for sub := 0; sub < height; sub++ {
			b.WriteString(indent)
			for _, slot := range slots {
				for col := 0; col < 3; col++ {
					r.writeCell(b, snap[slot][row*3+col], sub == labelRow)
				}
			}
			b.WriteString("\n")
		}
	}
}

// writeCell draws one cell row. The label appears only on the cell's
// middle row so scaled-up stickers show a single letter.
func (r *Renderer) writeCell(b *strings.Builder, sticker termcube.Color, showLabel bool) {
	width := cellWidth(r.cfg.scale)

	text := strings.Repeat(" ", width)
	if r.cfg.labels && showLabel {
		pad := (width - 1) / 2
		text = strings.Repeat(" ", pad) + sticker.String() + strings.Repeat(" ", width-pad-1)
	}

	b.WriteString(r.styles[sticker].Render(text))
}
