package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Argeon482/Pet-Farm/internal/app"
)

func newTUICmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive planner",
		Long: "Open the interactive planner.\n\n" +
			"With --at the clock is simulated and n/N, > and W move time forward or back.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, _ := deps.Simulated()
			model := app.New(deps.Service, app.Options{
				Simulated: sim,
				StatePath: deps.StatePath,
				Logger:    deps.Logger,
			})
			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return err
			}
			return nil
		},
	}
}
