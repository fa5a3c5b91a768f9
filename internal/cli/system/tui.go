package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/cli"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	opts := tui.Options{
		DefaultView:     constants.ViewMode(ctx.Config.DefaultView),
		DefaultPlatform: ctx.Config.DefaultPlatform,
	}
	p := tea.NewProgram(tui.NewModel(ctx.Store, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
