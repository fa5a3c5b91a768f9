// Package cli holds the shared command context and helpers for the kong
// command tree.
package cli

import (
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/config"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Config config.Config
}
