package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/migration"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/models"
)

type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

func (s *PostgresStore) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return s.validateSchemaVersion()
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) runMigrations() error {
	runner := migration.NewRunner(s.db, postgresMigrations(), migration.DialectPostgres)
	_, err := runner.ApplyMigrations(nil)
	return err
}

func (s *PostgresStore) validateSchemaVersion() error {
	runner := migration.NewRunner(s.db, postgresMigrations(), migration.DialectPostgres)
	return runner.ValidateVersion()
}

func (s *PostgresStore) AddPost(post models.Event) error {
	return s.UpdatePost(post)
}

func (s *PostgresStore) GetPost(id string) (models.Event, error) {
	row := s.db.QueryRow("SELECT "+postColumns+" FROM posts WHERE id = $1", id)
	e, err := scanPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Event{}, fmt.Errorf("post with id %s not found", id)
		}
		return models.Event{}, err
	}
	return e, nil
}

func (s *PostgresStore) GetAllPosts() ([]models.Event, error) {
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

func (s *PostgresStore) UpdatePost(post models.Event) error {
	_, err := s.db.Exec(`
		INSERT INTO posts (`+postColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, date = EXCLUDED.date, time = EXCLUDED.time,
			platform = EXCLUDED.platform, status = EXCLUDED.status,
			color = EXCLUDED.color, icon = EXCLUDED.icon,
			created_at = EXCLUDED.created_at, updated_at = EXCLUDED.updated_at`,
		postArgs(post)...,
	)
	return err
}

func (s *PostgresStore) DeletePost(id string) error {
	res, err := s.db.Exec("DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("post with id %s not found", id)
	}
	return nil
}

func (s *PostgresStore) ReplacePosts(posts []models.Event) error {
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
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`)
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

func (s *PostgresStore) GetConfigPath() string {
	return "postgres"
}
