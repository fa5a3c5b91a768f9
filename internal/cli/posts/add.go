// Package posts holds the post management subcommands.
package posts

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/cli"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/models"
)

type AddCmd struct {
	Title    string `arg:"" help:"Post title."`
	Date     string `help:"Scheduled date (YYYY-MM-DD). Defaults to today." short:"d"`
	Time     string `help:"Display time (HH:MM)." short:"t"`
	Platform string `help:"Target platform." short:"p" default:"instagram"`
	Status   string `help:"Post status." enum:"scheduled,draft,published" default:"scheduled"`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD", c.Date)
	}
	if c.Time != "" {
		if _, err := time.Parse(constants.TimeFormat, c.Time); err != nil {
			return fmt.Errorf("invalid time %q, use HH:MM", c.Time)
		}
	}

	now := time.Now()
	post := models.Event{
		ID:        uuid.NewString(),
		Title:     c.Title,
		Date:      models.ParseEventDate(date),
		Time:      c.Time,
		Platform:  c.Platform,
		Status:    models.EventStatus(c.Status),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := ctx.Store.AddPost(post); err != nil {
		return fmt.Errorf("failed to add post: %w", err)
	}

	fmt.Printf("Added post %s on %s\n", post.ID, date)
	return nil
}
