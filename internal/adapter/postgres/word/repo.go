// Package word implements the Word repository using PostgreSQL.
package word

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/flashcards/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards/internal/domain"
)

const table = "words"

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Insert stores one pair in the lesson. An unknown lesson maps to domain.ErrNotFound.
func (r *Repo) Insert(ctx context.Context, lessonID uuid.UUID, pair domain.WordPair) (*domain.Word, error) {
	sqlStr, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "lesson_id", "term", "translation").
		Values(uuid.New(), lessonID, pair.Term, pair.Translation).
		Suffix("RETURNING id, lesson_id, term, translation, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert word query: %w", err)
	}

	var w domain.Word
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sqlStr, args...).
		Scan(&w.ID, &w.LessonID, &w.Term, &w.Translation, &w.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "word", pair.Term)
	}
	return &w, nil
}

// CountByLesson returns how many words the lesson holds.
func (r *Repo) CountByLesson(ctx context.Context, lessonID uuid.UUID) (int, error) {
	sqlStr, args, err := postgres.Builder.
		Select("count(*)").
		From(table).
		Where(sq.Eq{"lesson_id": lessonID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count words query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}
