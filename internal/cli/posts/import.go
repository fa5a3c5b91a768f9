package posts

import (
	"fmt"
	"os"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/cli"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/ics"
)

type ImportCmd struct {
	File string `arg:"" help:"ICS file to import posts from."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", c.File, err)
	}
	defer f.Close()

	imported, err := ics.Import(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", c.File, err)
	}

	// Same UID wins: importing twice updates rather than duplicates.
	for _, post := range imported {
		if err := ctx.Store.UpdatePost(post); err != nil {
			return fmt.Errorf("failed to store post %s: %w", post.ID, err)
		}
	}

	fmt.Printf("Imported %d post(s) from %s\n", len(imported), c.File)
	return nil
}
