package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/termcube"
	"github.com/seamusw/termcube/internal/render"
	"github.com/seamusw/termcube/internal/storage"
)

var posCmd = &cobra.Command{
	Use:   "pos",
	Short: "Manage saved positions",
	Long:  `List, show and delete cube positions saved with apply --save.`,
}

var posListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved positions",
	RunE:  runPosList,
}

var posShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved position",
	Args:  cobra.ExactArgs(1),
	RunE:  runPosShow,
}

var posRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved position",
	Args:  cobra.ExactArgs(1),
	RunE:  runPosRm,
}

func init() {
	rootCmd.AddCommand(posCmd)
	posCmd.AddCommand(posListCmd)
	posCmd.AddCommand(posShowCmd)
	posCmd.AddCommand(posRmCmd)
}

func runPosList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	positions, err := storage.NewPositionRepository(db).List()
	if err != nil {
		return err
	}

	if len(positions) == 0 {
		fmt.Println("No saved positions yet.")
		fmt.Println(`Save one with: termcube apply --save <name> "<moves>"`)
		return nil
	}

	fmt.Printf("%-24s  %-19s  %s\n", "Name", "Updated", "Stickers")
	fmt.Printf("%-24s  %-19s  %s\n", "----", "-------", "--------")
	for _, p := range positions {
		stickers := p.Stickers
		if len(stickers) > 18 {
			stickers = stickers[:18] + "..."
		}
		fmt.Printf("%-24s  %-19s  %s\n", p.Name, p.UpdatedAt.Format("2006-01-02 15:04:05"), stickers)
	}

	return nil
}

func runPosShow(cmd *cobra.Command, args []string) error {
	name := args[0]

	cube, err := loadPosition(name)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := renderOptions(cfg)
	if err != nil {
		return err
	}
	opts = append(opts, render.WithScale(cfg.UI.Scale))

	fmt.Println(name)
	fmt.Print(render.New(opts...).Render(cube.Snapshot()))

	return nil
}

func runPosRm(cmd *cobra.Command, args []string) error {
	name := args[0]

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	deleted, err := storage.NewPositionRepository(db).Delete(name)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("position not found: %s", name)
	}

	fmt.Printf("Deleted position: %s\n", name)
	return nil
}

// openDB opens the database from the --db flag or the default path and
// applies any pending migrations.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error

	if path := getDBPath(); path != "" {
		db, err = storage.Open(path)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// loadPosition restores a saved position into a fresh cube.
func loadPosition(name string) (*termcube.Cube, error) {
	db, err := openDB()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	pos, err := storage.NewPositionRepository(db).Get(name)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, fmt.Errorf("position not found: %s", name)
	}

	snap, err := termcube.ParseSnapshot(pos.Stickers)
	if err != nil {
		return nil, fmt.Errorf("position %q is corrupt: %w", name, err)
	}

	return termcube.FromSnapshot(snap), nil
}

// savePosition stores the cube's current state under a name.
func savePosition(name string, cube *termcube.Cube) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := storage.NewPositionRepository(db).Save(name, cube.Snapshot().Encode()); err != nil {
		return err
	}

	return nil
}
