package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/models"
)

type PostFormModel struct {
	Title    string
	Date     string
	Time     string
	Platform string
	Status   models.EventStatus
	Color    string
}

// NewPostForm builds the create/edit form. Date is required, time is an
// optional HH:MM display string.
func NewPostForm(fm *PostFormModel) *huh.Form {
	platformOptions := make([]huh.Option[string], len(constants.Platforms))
	for i, p := range constants.Platforms {
		platformOptions[i] = huh.NewOption(p, p)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(func(s string) error {
					if _, err := time.Parse(constants.DateFormat, s); err != nil {
						return fmt.Errorf("invalid date format, use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Time (HH:MM)").
				Description("Leave empty for an all-day post").
				Value(&fm.Time).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := time.Parse(constants.TimeFormat, s); err != nil {
						return fmt.Errorf("invalid time format, use HH:MM")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Platform").
				Options(platformOptions...).
				Value(&fm.Platform),
			huh.NewSelect[models.EventStatus]().
				Title("Status").
				Options(
					huh.NewOption("Scheduled", models.StatusScheduled),
					huh.NewOption("Draft", models.StatusDraft),
					huh.NewOption("Published", models.StatusPublished),
				).
				Value(&fm.Status),
			huh.NewInput().
				Title("Color").
				Description("Optional style token for the web frontend").
				Value(&fm.Color),
		),
	).WithTheme(huh.ThemeDracula())
}
