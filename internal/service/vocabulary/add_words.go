package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/pkg/ctxutil"
)

// AddWords looks up an existing lesson and stores the pairs in it.
// A missing lesson is reported as an error wrapping domain.ErrNotFound;
// insert failures are reported per pair on the Result.
func (s *Service) AddWords(ctx context.Context, input AddWordsInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ref := strings.TrimSpace(input.Lesson)

	var (
		lesson *domain.Lesson
		err    error
	)
	switch input.Match {
	case MatchExact:
		lesson, err = s.lessons.FindByTitle(ctx, ref)
	default:
		lesson, err = s.lessons.FindByTitleFragment(ctx, ref)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("lesson %q %w", ref, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("find lesson: %w", err)
	}

	result := &Result{
		Lesson:   lesson,
		Outcomes: s.insertPairs(ctx, lesson, input.Pairs),
	}
	result.WordCount = s.countWords(ctx, lesson)

	s.log.InfoContext(ctx, "words added",
		ctxutil.RunIDAttr(ctx),
		slog.String("lesson_id", lesson.ID.String()),
		slog.String("lesson", lesson.Title),
		slog.String("match", input.Match.String()),
		slog.Int("added", result.Added()),
		slog.Int("failed", result.Failed()),
	)

	return result, nil
}
