package posts

import (
	"fmt"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/calgrid"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/cli"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
)

type ListCmd struct {
	Platform string `help:"Filter by platform, 'all' for everything." short:"p" default:"all"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	posts, err := ctx.Store.GetAllPosts()
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}

	sorted := calgrid.SortedByDate(posts, c.Platform)
	if len(sorted) == 0 {
		if c.Platform == constants.PlatformAll {
			fmt.Println("No posts scheduled.")
		} else {
			fmt.Printf("No posts scheduled for %s.\n", c.Platform)
		}
		return nil
	}

	for _, p := range sorted {
		clock := p.Time
		if clock == "" {
			clock = "--:--"
		}
		fmt.Printf("%-36s  %s %s  %-10s %-10s %s\n", p.ID, p.Date.Key(), clock, p.Platform, p.Status, p.Title)
	}
	return nil
}
