package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// save inserts a score on the default 8x8 board.
func save(t *testing.T, s *Store, gameID string, score int) {
	t.Helper()
	if _, err := s.SaveScore(gameID, score, 8, 8, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "gems", 12)
	save(t, store, "gems", 5)
	save(t, store, "gems", 30)
	save(t, store, "gems_instant", 50)

	scores, err := store.TopScores("gems", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 30 || scores[1].Score != 12 || scores[2].Score != 5 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	// Board metadata round-trips
	if scores[0].BoardW != 8 || scores[0].BoardH != 8 || scores[0].Seed != 1 {
		t.Errorf("Board metadata lost: %+v", scores[0])
	}

	instant, err := store.TopScores("gems_instant", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(instant) != 1 {
		t.Errorf("Expected 1 gems_instant score, got %d", len(instant))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "gems", (i+1)*10)
	}

	scores, err := store.TopScores("gems", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("gems")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "gems", 10)
	save(t, store, "gems", 30)
	save(t, store, "gems", 20)

	high, err = store.HighScore("gems")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "gems", 10)
	save(t, store, "gems", 20)
	save(t, store, "gems_instant", 30)

	if err := store.ClearScores("gems"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	gemsScores, _ := store.TopScores("gems", 10)
	if len(gemsScores) != 0 {
		t.Errorf("Expected 0 gems scores after clear, got %d", len(gemsScores))
	}

	instant, _ := store.TopScores("gems_instant", 10)
	if len(instant) != 1 {
		t.Error("gems_instant scores should not be affected by clearing gems")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		save(t, store, "gems", i)
	}

	scores, err := store.AllScores("gems")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "gems", 10)
	save(t, store, "gems", 20)
	save(t, store, "gems", 30)

	stats, err := store.GetGameStats("gems")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, want 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, want 20", stats.AvgScore)
	}
	if stats.TotalScore != 60 {
		t.Errorf("TotalScore = %d, want 60", stats.TotalScore)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "gems", 10)
	save(t, store, "gems_instant", 25)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(stats))
	}
	if stats["gems"].HighScore != 10 {
		t.Errorf("gems high score = %d, want 10", stats["gems"].HighScore)
	}
	if stats["gems_instant"].HighScore != 25 {
		t.Errorf("gems_instant high score = %d, want 25", stats["gems_instant"].HighScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
