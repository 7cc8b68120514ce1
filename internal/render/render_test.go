package render_test

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamusw/termcube"
	"github.com/seamusw/termcube/internal/render"
)

// Force a colorless profile so rendered output is plain text regardless
// of the terminal the tests run in.
func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func renderLines(t *testing.T, r *render.Renderer, snap termcube.Snapshot) []string {
	t.Helper()
	out := r.Render(snap)
	require.True(t, strings.HasSuffix(out, "\n"), "render should end with a newline")
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestDimensions(t *testing.T) {
	assert.Equal(t, 24, render.Width(1))
	assert.Equal(t, 9, render.Height(1))
	assert.Equal(t, 48, render.Width(2))
	assert.Equal(t, 18, render.Height(2))
	assert.Equal(t, 72, render.Width(3))
	assert.Equal(t, 27, render.Height(3))
}

func TestFit(t *testing.T) {
	tests := []struct {
		width, height int
		want          int
	}{
		{200, 100, 3},
		{72, 27, 3},
		{71, 27, 2},
		{48, 18, 2},
		{48, 17, 1},
		{47, 18, 1},
		{24, 9, 1},
		{10, 3, 1},
		{0, 0, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, render.Fit(tt.width, tt.height),
			"Fit(%d, %d)", tt.width, tt.height)
	}
}

func TestScaleClamped(t *testing.T) {
	assert.Equal(t, 1, render.New(render.WithScale(0)).Scale())
	assert.Equal(t, 1, render.New(render.WithScale(-3)).Scale())
	assert.Equal(t, 3, render.New(render.WithScale(99)).Scale())
	assert.Equal(t, 2, render.New().Scale())
}

func TestRenderGeometry(t *testing.T) {
	r := render.New(render.WithScale(1))
	lines := renderLines(t, r, termcube.New().Snapshot())

	require.Len(t, lines, render.Height(1))

	// Top and bottom bands are indented by three cells, so they span
	// half the full width. The middle band spans all four faces.
	for i, line := range lines {
		want := render.Width(1)
		if i < 3 || i >= 6 {
			want = render.Width(1) / 2
		}
		assert.Len(t, line, want, "line %d", i)
	}
}

func TestRenderSolvedLabels(t *testing.T) {
	r := render.New(render.WithScale(1), render.WithLabels(true))
	lines := renderLines(t, r, termcube.New().Snapshot())

	require.Len(t, lines, 9)
	for i := 0; i < 3; i++ {
		assert.Equal(t, "      W W W ", lines[i], "up row %d", i)
	}
	for i := 3; i < 6; i++ {
		assert.Equal(t, "O O O G G G R R R B B B ", lines[i], "middle row %d", i)
	}
	for i := 6; i < 9; i++ {
		assert.Equal(t, "      Y Y Y ", lines[i], "down row %d", i)
	}
}

func TestRenderTurnedCubeLabels(t *testing.T) {
	cube := termcube.New()
	cube.Apply(termcube.R)

	r := render.New(render.WithScale(1), render.WithLabels(true))
	lines := renderLines(t, r, cube.Snapshot())

	// After R: the right column of Up shows the front color, the front
	// face's right column shows the down color, and the back face's
	// left column (mirrored) shows the up color.
	assert.Equal(t, "      W W G ", lines[0])
	assert.Equal(t, "O O O G G Y R R R W B B ", lines[3])
	assert.Equal(t, "      Y Y B ", lines[6])
}

func TestRenderScale2(t *testing.T) {
	r := render.New(render.WithScale(2), render.WithLabels(true))
	lines := renderLines(t, r, termcube.New().Snapshot())

	require.Len(t, lines, render.Height(2))

	// Each sticker row doubles; labels appear only on the first subrow.
	assert.Equal(t, "             W   W   W  ", lines[0])
	assert.Equal(t, strings.Repeat(" ", 24), lines[1])
	assert.Contains(t, lines[6], "O")
	assert.Contains(t, lines[6], "G")
	assert.Equal(t, strings.Repeat(" ", 48), lines[7])
}

func TestWithColorsKeepsUnlistedDefaults(t *testing.T) {
	// Overriding one color must not disturb the others; with the Ascii
	// profile the output text is identical either way.
	plain := render.New(render.WithScale(1), render.WithLabels(true))
	themed := render.New(render.WithScale(1), render.WithLabels(true),
		render.WithColors(map[termcube.Color]lipgloss.Color{
			termcube.Red: lipgloss.Color("9"),
		}))

	snap := termcube.New().Snapshot()
	assert.Equal(t, plain.Render(snap), themed.Render(snap))
}

func TestDefaultColorsComplete(t *testing.T) {
	colors := render.DefaultColors()
	for _, c := range []termcube.Color{
		termcube.White, termcube.Yellow, termcube.Green,
		termcube.Blue, termcube.Red, termcube.Orange,
	} {
		assert.Contains(t, colors, c)
	}
	assert.Len(t, colors, 6)
}
