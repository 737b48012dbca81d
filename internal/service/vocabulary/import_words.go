package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/pkg/ctxutil"
)

// ImportWords stores pairs in the lesson titled input.Title, creating the
// lesson first when no title matches exactly.
func (s *Service) ImportWords(ctx context.Context, input ImportInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	result := &Result{}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, findErr := s.lessons.FindByTitle(txCtx, title)
		if findErr == nil {
			result.Lesson = existing
			return nil
		}
		if !errors.Is(findErr, domain.ErrNotFound) {
			return fmt.Errorf("find lesson: %w", findErr)
		}

		owner, ownerErr := s.resolveOwner(txCtx, input.OwnerID)
		if ownerErr != nil {
			return ownerErr
		}

		desc := s.cfg.ImportDescription
		created, createErr := s.lessons.Create(txCtx, &domain.Lesson{
			UserID:       owner,
			Title:        title,
			Description:  &desc,
			LanguageFrom: s.cfg.LanguageFrom,
			LanguageTo:   s.cfg.LanguageTo,
		})
		if createErr != nil {
			return fmt.Errorf("create lesson: %w", createErr)
		}

		result.Lesson = created
		result.Created = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Created {
		s.log.InfoContext(ctx, "lesson created",
			ctxutil.RunIDAttr(ctx),
			slog.String("lesson_id", result.Lesson.ID.String()),
			slog.String("user_id", result.Lesson.UserID.String()),
			slog.String("title", title),
		)
	}

	result.Outcomes = s.insertPairs(ctx, result.Lesson, input.Pairs)
	result.WordCount = s.countWords(ctx, result.Lesson)

	s.log.InfoContext(ctx, "words imported",
		ctxutil.RunIDAttr(ctx),
		slog.String("lesson_id", result.Lesson.ID.String()),
		slog.Int("added", result.Added()),
		slog.Int("failed", result.Failed()),
	)

	return result, nil
}

func (s *Service) resolveOwner(ctx context.Context, owner uuid.UUID) (uuid.UUID, error) {
	if owner != uuid.Nil {
		return owner, nil
	}

	fallback, err := s.lessons.AnyOwnerID(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, domain.NewValidationError("user_id", "required when no lessons exist")
		}
		return uuid.Nil, fmt.Errorf("find lesson owner: %w", err)
	}
	return fallback, nil
}
