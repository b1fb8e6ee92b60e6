package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	flagPageSize int
	flagNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "dataview <file>",
	Short: "Interactive explorer for CSV and JSON datasets",
	Long: `dataview loads a CSV, JSON array, or JSON Lines file and opens an
interactive session for filtering, sorting, paging, and exporting the data.

Type 'help' at the prompt for the command list.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&flagPageSize, "pagesize", 0, "initial rows per page (default 5)")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable per-type cell coloring")
}

func run(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load config: %v\n", err)
		config = &Config{}
	}

	filename := args[0]
	ds, err := loadFile(filename)
	if err != nil {
		return err
	}

	vs := NewViewState(ds)
	if size := initialPageSize(config); size != defaultPageSize {
		if err := vs.Pager().SetSize(size); err != nil {
			return err
		}
	}

	m := newModel(vs, config, filename, flagNoColor)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// initialPageSize picks the session's starting page size: flag, then
// config, then the default. Reset always goes back to the default.
func initialPageSize(config *Config) int {
	if flagPageSize > 0 {
		return flagPageSize
	}
	if config.PageSize > 0 {
		return config.PageSize
	}
	return defaultPageSize
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
