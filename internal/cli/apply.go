package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/seamusw/termcube"
	"github.com/seamusw/termcube/internal/config"
	"github.com/seamusw/termcube/internal/render"
)

var (
	applyFrom string
	applySave string
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>...",
	Short: "Apply a move sequence and print the result",
	Long: `Apply a sequence of moves in standard notation to a solved cube, or to
a saved position, and print the resulting state.

Notation is case-sensitive: R turns the right face, r the right two
layers. A trailing 2 doubles a move. Slices are M/E/S, whole-cube
rotations x/y/z, and ' marks the inverse.

Examples:
  termcube apply "R U R' U'"
  termcube apply --from checkpoint R U2 r
  termcube apply --save checkerboard "M2 E2 S2"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&applyFrom, "from", "", "Start from a saved position")
	applyCmd.Flags().StringVar(&applySave, "save", "", "Save the result under a name")
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := termcube.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	cube := termcube.New()
	if applyFrom != "" {
		cube, err = loadPosition(applyFrom)
		if err != nil {
			return err
		}
	}

	cube.Apply(moves...)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := renderOptions(cfg)
	if err != nil {
		return err
	}
	opts = append(opts, render.WithScale(cfg.UI.Scale))

	fmt.Print(render.New(opts...).Render(cube.Snapshot()))
	fmt.Printf("\nApplied: %s\n", termcube.FormatMoves(moves))

	if applySave != "" {
		if err := savePosition(applySave, cube); err != nil {
			return err
		}
		fmt.Printf("Saved position: %s\n", applySave)
	}

	return nil
}

// loadConfig loads the config file from the --config flag or the
// default path.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}
	return config.Load(path)
}

// renderOptions converts config settings into renderer options.
func renderOptions(cfg config.Config) ([]render.Option, error) {
	opts := []render.Option{render.WithLabels(cfg.UI.Labels)}

	if len(cfg.Colors) == 0 {
		return opts, nil
	}

	overrides := make(map[termcube.Color]lipgloss.Color, len(cfg.Colors))
	for letter, value := range cfg.Colors {
		sticker, err := termcube.ParseColor(letter)
		if err != nil {
			return nil, fmt.Errorf("config colors: unknown sticker letter %q", letter)
		}
		overrides[sticker] = lipgloss.Color(value)
	}

	return append(opts, render.WithColors(overrides)), nil
}
