package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/migration"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/models"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.validateSchemaVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) runMigrations() error {
	runner := migration.NewRunner(s.db, sqliteMigrations(), migration.DialectSQLite)
	_, err := runner.ApplyMigrations(nil)
	return err
}

func (s *SQLiteStore) validateSchemaVersion() error {
	runner := migration.NewRunner(s.db, sqliteMigrations(), migration.DialectSQLite)
	return runner.ValidateVersion()
}

const postColumns = "id, title, date, time, platform, status, color, icon, created_at, updated_at"

func scanPost(row interface{ Scan(...any) error }) (models.Event, error) {
	var e models.Event
	var date, createdAt, updatedAt string

	err := row.Scan(
		&e.ID, &e.Title, &date, &e.Time, &e.Platform, &e.Status,
		&e.Color, &e.Icon, &createdAt, &updatedAt,
	)
	if err != nil {
		return models.Event{}, err
	}

	e.Date = models.ParseEventDate(date)
	if createdAt != "" {
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			e.CreatedAt = t
		}
	}
	if updatedAt != "" {
		if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
			e.UpdatedAt = t
		}
	}
	return e, nil
}

func postArgs(e models.Event) []any {
	var createdAt, updatedAt string
	if !e.CreatedAt.IsZero() {
		createdAt = e.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !e.UpdatedAt.IsZero() {
		updatedAt = e.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return []any{
		e.ID, e.Title, e.Date.String(), e.Time, e.Platform, string(e.Status),
		e.Color, e.Icon, createdAt, updatedAt,
	}
}

func (s *SQLiteStore) AddPost(post models.Event) error {
	return s.UpdatePost(post)
}

func (s *SQLiteStore) GetPost(id string) (models.Event, error) {
	row := s.db.QueryRow("SELECT "+postColumns+" FROM posts WHERE id = ?", id)
	e, err := scanPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Event{}, fmt.Errorf("post with id %s not found", id)
		}
		return models.Event{}, err
	}
	return e, nil
}

func (s *SQLiteStore) GetAllPosts() ([]models.Event, error) {
	rows, err := s.db.Query("SELECT " + postColumns + " FROM posts ORDER BY date, time, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.Event
	for rows.Next() {
		e, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, e)
	}
	return posts, rows.Err()
}

func (s *SQLiteStore) UpdatePost(post models.Event) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO posts (`+postColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		postArgs(post)...,
	)
	return err
}

func (s *SQLiteStore) DeletePost(id string) error {
	res, err := s.db.Exec("DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("post with id %s not found", id)
	}
	return nil
}

func (s *SQLiteStore) ReplacePosts(posts []models.Event) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM posts"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear posts: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO posts (` + postColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, post := range posts {
		if _, err := stmt.Exec(postArgs(post)...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert post %s: %w", post.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
