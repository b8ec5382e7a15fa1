package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"clockface/internal/engine2D"
	"clockface/internal/tui"
	"clockface/internal/utils"
)

func (a *app) newTermCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Show the clock in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ticker := a.newTicker(engine2D.ClockStateFromTime(a.clock.Now()))
			ticker.Start(ctx)
			defer ticker.Stop()

			model := tui.NewModel(a.renderer, ticker.State(), ticker.Updates())
			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithOutput(cmd.OutOrStdout()),
			)

			if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("terminal clock: %w", err)
			}
			utils.Debug("Terminal clock stopped at %s", ticker.State())
			return nil
		},
	}
}
