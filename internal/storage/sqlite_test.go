package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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

func saveRun(t *testing.T, store *Store, gameID string, score int, outcome string) string {
	t.Helper()
	id, err := store.SaveRun(Run{GameID: gameID, Score: score, Outcome: outcome})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
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

	want := Run{
		GameID:    "xonix",
		Player:    "alice",
		Score:     1834,
		Area:      0.82,
		LivesLeft: 2,
		Outcome:   "won",
		Ticks:     5120,
		Duration:  95 * time.Second,
	}
	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() returned non-UUID id %q: %v", id, err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	want.ID = id
	got.CreatedAt = time.Time{}
	if *got != want {
		t.Errorf("RunByID() = %+v, want %+v", *got, want)
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("RunByID(unknown) = %v, %v; want nil, nil", missing, err)
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()

	got, err := store.SaveRun(Run{ID: id, GameID: "xonix", Outcome: "lost"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != id {
		t.Errorf("SaveRun() = %q, want %q", got, id)
	}
	if _, err := store.SaveRun(Run{ID: id, GameID: "xonix", Outcome: "lost"}); err == nil {
		t.Error("SaveRun() accepted a duplicate run ID")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "xonix", 100, "lost")
	saveRun(t, store, "xonix", 50, "lost")
	saveRun(t, store, "xonix", 200, "won")
	saveRun(t, store, "xonix_siege", 500, "won")

	scores, err := store.TopScores("xonix", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	top, err := store.TopScores("xonix", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 2 {
		t.Errorf("Expected 2 scores with limit, got %d", len(top))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	first := saveRun(t, store, "xonix", 10, "lost")
	saveRun(t, store, "xonix_siege", 20, "lost")
	last := saveRun(t, store, "xonix", 30, "won")

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != last {
		t.Errorf("Most recent run = %s, want %s", runs[0].ID, last)
	}
	for _, r := range runs {
		if r.ID == first {
			t.Error("Oldest run returned despite the limit")
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("xonix")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	saveRun(t, store, "xonix", 100, "lost")
	saveRun(t, store, "xonix", 300, "won")
	saveRun(t, store, "xonix", 200, "lost")

	high, err = store.HighScore("xonix")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "xonix", 100, "lost")
	saveRun(t, store, "xonix", 200, "lost")
	saveRun(t, store, "xonix_siege", 300, "won")

	if err := store.ClearScores("xonix"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("xonix", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 xonix scores after clear, got %d", len(classic))
	}
	siege, _ := store.TopScores("xonix_siege", 10)
	if len(siege) != 1 {
		t.Errorf("xonix_siege scores should not be affected by clearing xonix")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("xonix")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for unplayed game = %+v", empty)
	}

	store.SaveRun(Run{GameID: "xonix", Score: 100, Area: 0.4, Outcome: "lost"})
	store.SaveRun(Run{GameID: "xonix", Score: 300, Area: 0.85, Outcome: "won"})
	store.SaveRun(Run{GameID: "xonix_siege", Score: 50, Area: 0.1, Outcome: "lost"})

	stats, err := store.GetGameStats("xonix")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 || stats.HighScore != 300 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 || stats.BestArea != 0.85 {
		t.Errorf("avg/best = %v/%v, want 200/0.85", stats.AvgScore, stats.BestArea)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["xonix_siege"].GamesCount != 1 {
		t.Errorf("GetAllGamesStats() = %v", all)
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
