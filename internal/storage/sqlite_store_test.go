package storage

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func samplePost(id, day string) models.Event {
	return models.Event{
		ID:       id,
		Title:    "Launch teaser",
		Date:     models.ParseEventDate(day),
		Time:     "10:00",
		Platform: "instagram",
		Status:   models.StatusScheduled,
		Color:    "bg-pink-500",
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	store := newTestStore(t)

	post := samplePost("p1", "2024-11-20")
	post.CreatedAt = time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC)
	if err := store.AddPost(post); err != nil {
		t.Fatalf("AddPost() error = %v", err)
	}

	got, err := store.GetPost("p1")
	if err != nil {
		t.Fatalf("GetPost() error = %v", err)
	}
	if got.Title != post.Title || got.Platform != post.Platform || got.Status != post.Status {
		t.Errorf("GetPost() = %+v, want %+v", got, post)
	}
	if got.Date.Key() != "2024-11-20" {
		t.Errorf("Date.Key() = %q, want 2024-11-20", got.Date.Key())
	}
	if !got.CreatedAt.Equal(post.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, post.CreatedAt)
	}
}

func TestSQLitePreservesISOTimestampDates(t *testing.T) {
	store := newTestStore(t)

	post := samplePost("p1", "2024-11-22T14:30:00Z")
	if err := store.AddPost(post); err != nil {
		t.Fatalf("AddPost() error = %v", err)
	}

	got, err := store.GetPost("p1")
	if err != nil {
		t.Fatalf("GetPost() error = %v", err)
	}
	if got.Date.String() != "2024-11-22T14:30:00Z" {
		t.Errorf("Date.String() = %q, raw form should survive storage", got.Date.String())
	}
	if got.Date.Key() != "2024-11-22" {
		t.Errorf("Date.Key() = %q, want 2024-11-22", got.Date.Key())
	}
}

func TestSQLiteUpdateAndDelete(t *testing.T) {
	store := newTestStore(t)

	post := samplePost("p1", "2024-11-20")
	if err := store.AddPost(post); err != nil {
		t.Fatalf("AddPost() error = %v", err)
	}

	post.Title = "Launch teaser v2"
	post.Date = models.ParseEventDate("2024-11-25")
	if err := store.UpdatePost(post); err != nil {
		t.Fatalf("UpdatePost() error = %v", err)
	}

	got, err := store.GetPost("p1")
	if err != nil {
		t.Fatalf("GetPost() error = %v", err)
	}
	if got.Title != "Launch teaser v2" || got.Date.Key() != "2024-11-25" {
		t.Errorf("update not persisted: %+v", got)
	}

	if err := store.DeletePost("p1"); err != nil {
		t.Fatalf("DeletePost() error = %v", err)
	}
	if _, err := store.GetPost("p1"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("GetPost() after delete error = %v, want not found", err)
	}
	if err := store.DeletePost("p1"); err == nil {
		t.Error("DeletePost() on missing id should error")
	}
}

func TestSQLiteReplacePosts(t *testing.T) {
	store := newTestStore(t)

	if err := store.AddPost(samplePost("old", "2024-11-01")); err != nil {
		t.Fatalf("AddPost() error = %v", err)
	}

	next := []models.Event{
		samplePost("a", "2024-11-20"),
		samplePost("b", "2024-11-22"),
	}
	if err := store.ReplacePosts(next); err != nil {
		t.Fatalf("ReplacePosts() error = %v", err)
	}

	all, err := store.GetAllPosts()
	if err != nil {
		t.Fatalf("GetAllPosts() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(all) = %d, want 2", len(all))
	}
	if all[0].ID != "a" || all[1].ID != "b" {
		t.Errorf("posts = %v, %v; want a then b", all[0].ID, all[1].ID)
	}
	if _, err := store.GetPost("old"); err == nil {
		t.Error("old post should be gone after ReplacePosts")
	}
}

func TestSQLiteLoadWithoutInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on missing database should error")
	}
}
