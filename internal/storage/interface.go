// Package storage persists scheduled posts behind the Provider interface.
// Two implementations exist, SQLite for local single-user setups and
// Postgres for shared databases.
package storage

import (
	"embed"
	"io/fs"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/models"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationFiles embed.FS

func sqliteMigrations() fs.FS {
	sub, err := fs.Sub(migrationFiles, "migrations/sqlite")
	if err != nil {
		panic(err)
	}
	return sub
}

func postgresMigrations() fs.FS {
	sub, err := fs.Sub(migrationFiles, "migrations/postgres")
	if err != nil {
		panic(err)
	}
	return sub
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Posts
	AddPost(models.Event) error
	GetPost(id string) (models.Event, error)
	GetAllPosts() ([]models.Event, error)
	UpdatePost(models.Event) error
	DeletePost(id string) error
	// ReplacePosts swaps the whole collection atomically. The calendar
	// reports mutations as full snapshots, so this is the hot path.
	ReplacePosts([]models.Event) error

	// Utils
	GetConfigPath() string
}
