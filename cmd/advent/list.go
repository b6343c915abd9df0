package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"advent/pkg/input"
	"advent/pkg/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		problems := registry.Default.List()
		if len(problems) == 0 {
			return fmt.Errorf("no problems registered")
		}

		store := input.NewStore(cfg.DataDir)

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(
				lipgloss.NewStyle().
					Foreground(lipgloss.Color("240")),
			).
			Headers("problem", "name", "parts", "puzzle data")

		for _, p := range problems {
			puzzle := "-"
			if store.HasPuzzle(p.Year, p.Day) {
				puzzle = "yes"
			}
			t.Row(
				p.ID(),
				p.Name,
				fmt.Sprintf("%d", p.Parts()),
				puzzle,
			)
		}

		fmt.Fprintln(os.Stdout, t)
		return nil
	},
}
