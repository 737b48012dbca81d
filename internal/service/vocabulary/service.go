// Package vocabulary adds term/translation pairs to stored lessons.
package vocabulary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards/internal/config"
	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/pkg/ctxutil"
)

type lessonRepo interface {
	FindByTitleFragment(ctx context.Context, fragment string) (*domain.Lesson, error)
	FindByTitle(ctx context.Context, title string) (*domain.Lesson, error)
	Create(ctx context.Context, l *domain.Lesson) (*domain.Lesson, error)
	AnyOwnerID(ctx context.Context) (uuid.UUID, error)
}

type wordRepo interface {
	Insert(ctx context.Context, lessonID uuid.UUID, pair domain.WordPair) (*domain.Word, error)
	CountByLesson(ctx context.Context, lessonID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service resolves lessons and stores word pairs in them.
type Service struct {
	lessons lessonRepo
	words   wordRepo
	tx      txManager
	cfg     config.LessonConfig
	log     *slog.Logger
}

// NewService creates a new vocabulary service.
func NewService(
	log *slog.Logger,
	lessons lessonRepo,
	words wordRepo,
	tx txManager,
	cfg config.LessonConfig,
) *Service {
	return &Service{
		lessons: lessons,
		words:   words,
		tx:      tx,
		cfg:     cfg,
		log:     log.With("service", "vocabulary"),
	}
}

// insertPairs stores pairs one at a time in input order. A failed insert is
// recorded on its outcome and does not stop the rest.
func (s *Service) insertPairs(ctx context.Context, lesson *domain.Lesson, pairs []domain.WordPair) []PairOutcome {
	outcomes := make([]PairOutcome, 0, len(pairs))
	for _, pair := range pairs {
		w, err := s.words.Insert(ctx, lesson.ID, pair)
		if err != nil {
			s.log.WarnContext(ctx, "word insert failed",
				ctxutil.RunIDAttr(ctx),
				slog.String("lesson_id", lesson.ID.String()),
				slog.String("term", pair.Term),
				slog.String("error", err.Error()),
			)
		}
		outcomes = append(outcomes, PairOutcome{Pair: pair, Word: w, Err: err})
	}
	return outcomes
}

// countWords reads the lesson size after the inserts. A failed count is logged
// and reported as -1; the pairs are already stored at this point.
func (s *Service) countWords(ctx context.Context, lesson *domain.Lesson) int {
	n, err := s.words.CountByLesson(ctx, lesson.ID)
	if err != nil {
		s.log.WarnContext(ctx, "count words failed",
			ctxutil.RunIDAttr(ctx),
			slog.String("lesson_id", lesson.ID.String()),
			slog.String("error", err.Error()),
		)
		return -1
	}
	return n
}
