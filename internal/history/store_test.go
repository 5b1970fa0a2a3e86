package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveResultFillsIDAndTimestamp(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.SaveResult(ctx, Result{
		Score:      2,
		Total:      3,
		Category:   9,
		Difficulty: "easy",
		Type:       "multiple",
	})
	if err != nil {
		t.Fatalf("SaveResult: %v", err)
	}

	results, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	saved := results[0]
	if saved.ID == "" {
		t.Fatalf("ID was not generated")
	}
	if saved.PlayedAt.IsZero() {
		t.Fatalf("PlayedAt was not filled")
	}
	if saved.Score != 2 || saved.Total != 3 || saved.Category != 9 ||
		saved.Difficulty != "easy" || saved.Type != "multiple" {
		t.Fatalf("unexpected saved result: %+v", saved)
	}
}

func TestSaveResultRejectsNonPositiveTotal(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveResult(context.Background(), Result{Score: 0, Total: 0}); err == nil {
		t.Fatalf("expected error for zero total")
	}
}

func TestRecentOrdersNewestFirstAndHonorsLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := store.SaveResult(ctx, Result{
			ID:         string(rune('a' + i)),
			PlayedAt:   base.Add(time.Duration(i) * time.Hour),
			Score:      i,
			Total:      5,
			Difficulty: "any",
			Type:       "any",
		})
		if err != nil {
			t.Fatalf("SaveResult %d: %v", i, err)
		}
	}

	results, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i := 0; i < len(results)-1; i++ {
		if results[i].PlayedAt.Before(results[i+1].PlayedAt) {
			t.Fatalf("results not ordered newest first: %+v", results)
		}
	}
	if results[0].Score != 4 {
		t.Fatalf("newest result score = %d, want 4", results[0].Score)
	}
}

func TestRecentEmptyStore(t *testing.T) {
	store := newTestStore(t)

	results, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
