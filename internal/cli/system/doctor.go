package system

import (
	"errors"
	"fmt"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/cli"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/keyring"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/validation"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running health checks...")

	var failed bool

	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage: %v\n", err)
		failed = true
	} else {
		fmt.Printf("✓ Storage reachable at %s\n", ctx.Store.GetConfigPath())

		posts, err := ctx.Store.GetAllPosts()
		if err != nil {
			fmt.Printf("❌ Posts table: %v\n", err)
			failed = true
		} else {
			fmt.Printf("✓ %d post(s) stored\n", len(posts))
			result := validation.ValidatePosts(posts)
			if result.HasConflicts() {
				fmt.Printf("⚠ %d schedule conflict(s):\n", len(result.Conflicts))
				for _, c := range result.Conflicts {
					fmt.Printf("    %s\n", c.Description)
				}
			} else {
				fmt.Println("✓ No schedule conflicts")
			}
		}
	}

	if _, err := keyring.GetConnectionString(); err == nil {
		fmt.Println("✓ Connection string stored in OS keyring")
	} else if errors.Is(err, keyring.ErrNotFound) {
		fmt.Println("ℹ No connection string in OS keyring (SQLite mode)")
	} else {
		fmt.Printf("⚠ OS keyring not reachable: %v\n", err)
	}

	if failed {
		return errors.New("health checks failed")
	}
	fmt.Println("All checks passed")
	return nil
}
