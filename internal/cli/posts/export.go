package posts

import (
	"fmt"
	"os"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/cli"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/ics"
)

type ExportCmd struct {
	Output string `help:"File to write the ICS payload to. Defaults to stdout." short:"o"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	posts, err := ctx.Store.GetAllPosts()
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}

	payload, err := ics.Export(posts)
	if err != nil {
		return fmt.Errorf("failed to export posts: %w", err)
	}

	if c.Output == "" {
		fmt.Print(payload)
		return nil
	}

	if err := os.WriteFile(c.Output, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}
	fmt.Printf("Exported %d post(s) to %s\n", len(posts), c.Output)
	return nil
}
