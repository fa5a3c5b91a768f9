package posts

import (
	"fmt"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/cli"
)

type DeleteCmd struct {
	ID string `arg:"" help:"ID of the post to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeletePost(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted post %s\n", c.ID)
	return nil
}
