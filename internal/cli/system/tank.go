package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/driplog/drip/internal/cli"
	"github.com/driplog/drip/internal/tui"
)

// TankCmd launches the full-screen aquarium.
type TankCmd struct{}

func (c *TankCmd) Run(ctx *cli.Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Engine), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tank exited with an error: %w", err)
	}
	return nil
}
