package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/termcube/internal/storage"
)

var (
	exportName   string
	exportAll    bool
	exportFormat string
	exportOutput string
)

var posExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved positions",
	Long: `Export saved positions in text or JSON format.

Text format writes one 54-letter snapshot encoding per line; JSON keeps
names and timestamps alongside the encoding.

Examples:
  termcube pos export --all
  termcube pos export --name checkpoint --format json
  termcube pos export --all --format json -o positions.json`,
	RunE: runPosExport,
}

func init() {
	posCmd.AddCommand(posExportCmd)
	posExportCmd.Flags().StringVar(&exportName, "name", "", "Position to export")
	posExportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every saved position")
	posExportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	posExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

func runPosExport(cmd *cobra.Command, args []string) error {
	if exportName == "" && !exportAll {
		return fmt.Errorf("specify --name or --all")
	}

	// Open database
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewPositionRepository(db)

	var positions []storage.Position
	if exportAll {
		positions, err = repo.List()
		if err != nil {
			return fmt.Errorf("failed to list positions: %w", err)
		}
		if len(positions) == 0 {
			return fmt.Errorf("no saved positions")
		}
	} else {
		pos, err := repo.Get(exportName)
		if err != nil {
			return fmt.Errorf("failed to get position: %w", err)
		}
		if pos == nil {
			return fmt.Errorf("position not found: %s", exportName)
		}
		positions = []storage.Position{*pos}
	}

	// Format output
	var output string

	switch strings.ToLower(exportFormat) {
	case "txt":
		var lines []string
		for _, p := range positions {
			lines = append(lines, p.Stickers)
		}
		output = strings.Join(lines, "\n")

	case "json":
		type PositionJSON struct {
			Name      string `json:"name"`
			Stickers  string `json:"stickers"`
			CreatedAt string `json:"created_at"`
			UpdatedAt string `json:"updated_at"`
		}

		var positionsJSON []PositionJSON
		for _, p := range positions {
			positionsJSON = append(positionsJSON, PositionJSON{
				Name:      p.Name,
				Stickers:  p.Stickers,
				CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
				UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
			})
		}

		data, err := json.MarshalIndent(positionsJSON, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)

	default:
		return fmt.Errorf("unknown format: %s (use txt or json)", exportFormat)
	}

	// Write output
	if exportOutput == "" {
		fmt.Println(output)
	} else {
		// Ensure directory exists
		dir := filepath.Dir(exportOutput)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		fmt.Printf("Exported %d position(s) to %s\n", len(positions), exportOutput)
	}

	return nil
}
