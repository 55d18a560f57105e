package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}
}

func TestStoreRecordHighScore(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		score   int
		written bool
		best    int
	}{
		{12, true, 12},
		{7, false, 12},
		{12, true, 12}, // equal scores still write
		{30, true, 30},
		{-1, false, 30},
	}

	for _, tc := range tests {
		written, err := store.RecordHighScore("snake", tc.score)
		if err != nil {
			t.Fatalf("RecordHighScore(%d) failed: %v", tc.score, err)
		}
		if written != tc.written {
			t.Errorf("RecordHighScore(%d) written = %v, expected %v", tc.score, written, tc.written)
		}

		best, err := store.HighScore("snake")
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if best != tc.best {
			t.Errorf("after %d: best = %d, expected %d", tc.score, best, tc.best)
		}
	}
}

func TestStoreVariantsAreSeparate(t *testing.T) {
	store := openTestStore(t)

	store.RecordHighScore("snake", 40)
	store.RecordHighScore("snake_wrap", 15)

	entries, err := store.AllHighScores()
	if err != nil {
		t.Fatalf("AllHighScores() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].GameID != "snake" || entries[0].Score != 40 {
		t.Errorf("first entry = %+v, expected snake/40", entries[0])
	}
	if entries[1].GameID != "snake_wrap" || entries[1].Score != 15 {
		t.Errorf("second entry = %+v, expected snake_wrap/15", entries[1])
	}
}

func TestStoreClearHighScore(t *testing.T) {
	store := openTestStore(t)

	store.RecordHighScore("snake", 10)
	store.RecordHighScore("snake_wrap", 20)

	if err := store.ClearHighScore("snake"); err != nil {
		t.Fatalf("ClearHighScore() failed: %v", err)
	}

	if high, _ := store.HighScore("snake"); high != 0 {
		t.Errorf("Expected cleared score to read 0, got %d", high)
	}
	if high, _ := store.HighScore("snake_wrap"); high != 20 {
		t.Errorf("Other variants should not be affected, got %d", high)
	}

	// A lower score is accepted again after clearing
	written, err := store.RecordHighScore("snake", 3)
	if err != nil || !written {
		t.Errorf("RecordHighScore after clear = %v, %v", written, err)
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.RecordHighScore("snake", 25)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("snake"); high != 25 {
		t.Errorf("Expected persisted score 25, got %d", high)
	}
}
