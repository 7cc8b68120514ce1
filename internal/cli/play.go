package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/seamusw/termcube"
	"github.com/seamusw/termcube/internal/config"
	"github.com/seamusw/termcube/internal/keymap"
	"github.com/seamusw/termcube/internal/logging"
	"github.com/seamusw/termcube/internal/render"
)

var playFrom string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Drive the cube interactively",
	Long: `Start an interactive session and turn the cube with single keystrokes.

Default bindings:
  u d f b l r    turn that face clockwise
  U D F B L R    counter-clockwise
  alt+letter     wide turn of two layers (shift for the inverse)
  m e s          slice turns (M E S for the inverse)
  x y z          whole-cube rotations (X Y Z for the inverse)
  ctrl+r         reset to solved
  q, esc         quit

Bindings can be changed in the [keys] section of the config file.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playFrom, "from", "", "Start from a saved position")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Vertical space View needs around the cube for title, status and help.
const chromeLines = 6

// historyShown caps how many recent moves the status line keeps.
const historyShown = 16

// playModel is the bubbletea model for the interactive session.
type playModel struct {
	cube     *termcube.Cube
	keys     keymap.Map
	renderer *render.Renderer
	baseOpts []render.Option
	maxScale int

	moveCount int
	lastMoves []termcube.Move

	width    int
	height   int
	quitting bool

	logger zerolog.Logger
}

func newPlayModel(cube *termcube.Cube, keys keymap.Map, cfg config.Config, opts []render.Option, logger zerolog.Logger) playModel {
	m := playModel{
		cube:     cube,
		keys:     keys,
		baseOpts: opts,
		maxScale: cfg.UI.Scale,
		logger:   logger,
	}
	m.renderer = render.New(append([]render.Option{render.WithScale(cfg.UI.Scale)}, opts...)...)
	return m
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			m.logger.Info().Int("moves", m.moveCount).Msg("session ended")
			return m, tea.Quit

		case "ctrl+r":
			m.cube.Reset()
			m.moveCount = 0
			m.lastMoves = nil
			m.logger.Debug().Msg("cube reset")
			return m, nil

		case "ctrl+z":
			return m, tea.Suspend
		}

		if move, ok := m.keys.Resolve(msg.String()); ok {
			m.cube.Apply(move)
			m.moveCount++
			m.lastMoves = append(m.lastMoves, move)
			if len(m.lastMoves) > historyShown {
				m.lastMoves = m.lastMoves[len(m.lastMoves)-historyShown:]
			}
			m.logger.Debug().Str("move", move.Notation()).Int("total", m.moveCount).Msg("move applied")
		}
		// Unbound keys do nothing.

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refit()
	}

	return m, nil
}

// refit picks the largest render scale that fits the window, capped by
// the configured scale.
func (m *playModel) refit() {
	scale := render.Fit(m.width, m.height-chromeLines)
	if scale > m.maxScale {
		scale = m.maxScale
	}
	if scale != m.renderer.Scale() {
		m.renderer = render.New(append([]render.Option{render.WithScale(scale)}, m.baseOpts...)...)
	}
}

func (m playModel) View() string {
	if m.quitting {
		return fmt.Sprintf("%d moves. Bye!\n", m.moveCount)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("termcube"))
	b.WriteString("\n\n")

	b.WriteString(m.renderer.Render(m.cube.Snapshot()))
	b.WriteString("\n")

	b.WriteString(statusStyle.Render(fmt.Sprintf("Moves: %d", m.moveCount)))
	if len(m.lastMoves) > 0 {
		b.WriteString("  ")
		b.WriteString(moveStyle.Render(termcube.FormatMoves(m.lastMoves)))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("letters turn • shift inverts • alt widens • m/e/s slices • x/y/z rotates • ctrl+r reset • q quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logPath, err := logging.DefaultPath()
	if err != nil {
		return err
	}
	logger, logFile, err := logging.Init(logPath, verbose)
	if err != nil {
		return err
	}
	defer logFile.Close()

	keys := keymap.Default()
	if err := keys.Merge(cfg.Keys); err != nil {
		return fmt.Errorf("invalid key binding: %w", err)
	}

	cube := termcube.New()
	if playFrom != "" {
		cube, err = loadPosition(playFrom)
		if err != nil {
			return err
		}
	}

	opts, err := renderOptions(cfg)
	if err != nil {
		return err
	}

	logger.Info().
		Str("version", version).
		Bool("from_saved", playFrom != "").
		Msg("session started")

	model := newPlayModel(cube, keys, cfg, opts, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}

	return nil
}
