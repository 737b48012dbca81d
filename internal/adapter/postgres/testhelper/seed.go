package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashcards/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedLesson inserts a lesson with the given title owned by a random user.
func SeedLesson(t *testing.T, pool *pgxpool.Pool, title string) domain.Lesson {
	t.Helper()
	return SeedLessonAt(t, pool, title, time.Now())
}

// SeedLessonAt is SeedLesson with an explicit creation time, for ordering tests.
func SeedLessonAt(t *testing.T, pool *pgxpool.Pool, title string, createdAt time.Time) domain.Lesson {
	t.Helper()

	l := domain.Lesson{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Title:        title,
		LanguageFrom: "japanese",
		LanguageTo:   "ukrainian",
		CreatedAt:    createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO lessons (id, user_id, title, language_from, language_to, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		l.ID, l.UserID, l.Title, l.LanguageFrom, l.LanguageTo, l.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLesson: %v", err)
	}

	return l
}

// CountWords returns the number of words stored for lessonID.
func CountWords(t *testing.T, pool *pgxpool.Pool, lessonID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM words WHERE lesson_id = $1`, lessonID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountWords: %v", err)
	}
	return n
}
