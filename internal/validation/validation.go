// Package validation detects schedule conflicts in the post collection:
// duplicate identities, unparseable dates, and same-slot collisions.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateID     ConflictType = "duplicate_id"
	ConflictInvalidDate     ConflictType = "invalid_date"
	ConflictInvalidTime     ConflictType = "invalid_time"
	ConflictSlotCollision   ConflictType = "slot_collision"
	ConflictUnknownPlatform ConflictType = "unknown_platform"
)

// Conflict is one detected problem.
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string   // YYYY-MM-DD day key, when applicable
	PostIDs     []string // IDs of the posts involved
}

// Result collects all detected conflicts.
type Result struct {
	Conflicts []Conflict
}

func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// ValidatePosts inspects the whole collection. It never fails: broken data
// becomes a conflict entry, not an error.
func ValidatePosts(posts []models.Event) Result {
	var result Result

	seen := make(map[string]string, len(posts)) // id -> title
	slots := make(map[string][]string)          // day|time|platform -> ids

	for _, p := range posts {
		if prev, ok := seen[p.ID]; ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("posts %q and %q share id %s", prev, p.Title, p.ID),
				PostIDs:     []string{p.ID},
			})
		}
		seen[p.ID] = p.Title

		if p.Date.Time().IsZero() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("post %q has unparseable date %q", p.Title, p.Date.String()),
				PostIDs:     []string{p.ID},
			})
			continue
		}

		if p.Time != "" {
			if _, err := time.Parse(constants.TimeFormat, p.Time); err != nil {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidTime,
					Description: fmt.Sprintf("post %q has unparseable time %q", p.Title, p.Time),
					Date:        p.Date.Key(),
					PostIDs:     []string{p.ID},
				})
			} else {
				key := p.Date.Key() + "|" + p.Time + "|" + strings.ToLower(p.Platform)
				slots[key] = append(slots[key], p.ID)
			}
		}

		if p.Platform != "" && !knownPlatform(p.Platform) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownPlatform,
				Description: fmt.Sprintf("post %q targets unknown platform %q", p.Title, p.Platform),
				Date:        p.Date.Key(),
				PostIDs:     []string{p.ID},
			})
		}
	}

	for key, ids := range slots {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictSlotCollision,
				Description: fmt.Sprintf("%d posts share the slot %s", len(ids), key),
				Date:        key[:len(constants.DateFormat)],
				PostIDs:     ids,
			})
		}
	}

	return result
}

// Platform checks are case-insensitive, matching how the calendar
// filters events.
func knownPlatform(platform string) bool {
	for _, p := range constants.Platforms {
		if strings.EqualFold(p, platform) {
			return true
		}
	}
	return false
}
