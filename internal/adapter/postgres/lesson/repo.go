// Package lesson implements the Lesson repository using PostgreSQL.
// Title lookups are case-insensitive; when several lessons match, the oldest wins.
package lesson

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/flashcards/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards/internal/domain"
)

const table = "lessons"

var columns = []string{"id", "user_id", "title", "description", "language_from", "language_to", "created_at"}

// Repo provides lesson persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new lesson repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// FindByTitleFragment returns the oldest lesson whose title contains fragment,
// ignoring case. Returns domain.ErrNotFound when nothing matches.
func (r *Repo) FindByTitleFragment(ctx context.Context, fragment string) (*domain.Lesson, error) {
	query := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.ILike{"title": postgres.Contains(fragment)}).
		OrderBy("created_at ASC", "id ASC").
		Limit(1)

	return r.getOne(ctx, query, fragment)
}

// FindByTitle returns the oldest lesson whose title equals title, ignoring case.
// Returns domain.ErrNotFound when nothing matches.
func (r *Repo) FindByTitle(ctx context.Context, title string) (*domain.Lesson, error) {
	query := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Expr("lower(title) = lower(?)", title)).
		OrderBy("created_at ASC", "id ASC").
		Limit(1)

	return r.getOne(ctx, query, title)
}

// Create inserts a lesson and returns the stored row. A zero ID is replaced
// with a fresh one.
func (r *Repo) Create(ctx context.Context, l *domain.Lesson) (*domain.Lesson, error) {
	id := l.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := postgres.Builder.
		Insert(table).
		Columns("id", "user_id", "title", "description", "language_from", "language_to").
		Values(id, l.UserID, l.Title, l.Description, l.LanguageFrom, l.LanguageTo).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create lesson query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sqlStr, args...)
	created, err := scanLesson(row)
	if err != nil {
		return nil, postgres.MapError(err, "lesson", l.Title)
	}
	return created, nil
}

// AnyOwnerID returns the user_id of the oldest lesson. Imports use it when no
// owner is given. Returns domain.ErrNotFound when there are no lessons.
func (r *Repo) AnyOwnerID(ctx context.Context) (uuid.UUID, error) {
	sqlStr, args, err := postgres.Builder.
		Select("user_id").
		From(table).
		OrderBy("created_at ASC", "id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build owner query: %w", err)
	}

	var owner uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(&owner); err != nil {
		return uuid.Nil, postgres.MapError(err, "lesson owner", "any")
	}
	return owner, nil
}

func (r *Repo) getOne(ctx context.Context, query sq.SelectBuilder, key string) (*domain.Lesson, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lesson query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sqlStr, args...)
	l, err := scanLesson(row)
	if err != nil {
		return nil, postgres.MapError(err, "lesson", key)
	}
	return l, nil
}

func scanLesson(row pgx.Row) (*domain.Lesson, error) {
	var l domain.Lesson
	if err := row.Scan(&l.ID, &l.UserID, &l.Title, &l.Description, &l.LanguageFrom, &l.LanguageTo, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

