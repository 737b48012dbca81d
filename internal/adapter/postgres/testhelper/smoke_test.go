package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	lesson := SeedLesson(t, pool, "Smoke "+UniqueSuffix())

	var title string
	err := pool.QueryRow(
		context.Background(),
		`SELECT title FROM lessons WHERE id = $1`,
		lesson.ID,
	).Scan(&title)
	if err != nil {
		t.Fatalf("expected lesson in DB, got error: %v", err)
	}
	if title != lesson.Title {
		t.Fatalf("expected title %q, got %q", lesson.Title, title)
	}

	if n := CountWords(t, pool, lesson.ID); n != 0 {
		t.Fatalf("expected a fresh lesson to have no words, got %d", n)
	}
}
