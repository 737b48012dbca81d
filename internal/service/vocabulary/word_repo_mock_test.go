package vocabulary

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/flashcards/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	InsertFunc        func(ctx context.Context, lessonID uuid.UUID, pair domain.WordPair) (*domain.Word, error)
	CountByLessonFunc func(ctx context.Context, lessonID uuid.UUID) (int, error)

	calls struct {
		Insert []struct {
			Ctx      context.Context
			LessonID uuid.UUID
			Pair     domain.WordPair
		}
		CountByLesson []struct {
			Ctx      context.Context
			LessonID uuid.UUID
		}
	}
	lockInsert        sync.RWMutex
	lockCountByLesson sync.RWMutex
}

func (mock *wordRepoMock) Insert(ctx context.Context, lessonID uuid.UUID, pair domain.WordPair) (*domain.Word, error) {
	if mock.InsertFunc == nil {
		panic("wordRepoMock.InsertFunc: method is nil but wordRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LessonID uuid.UUID
		Pair     domain.WordPair
	}{Ctx: ctx, LessonID: lessonID, Pair: pair}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, lessonID, pair)
}

func (mock *wordRepoMock) InsertCalls() []struct {
	Ctx      context.Context
	LessonID uuid.UUID
	Pair     domain.WordPair
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *wordRepoMock) CountByLesson(ctx context.Context, lessonID uuid.UUID) (int, error) {
	if mock.CountByLessonFunc == nil {
		panic("wordRepoMock.CountByLessonFunc: method is nil but wordRepo.CountByLesson was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LessonID uuid.UUID
	}{Ctx: ctx, LessonID: lessonID}
	mock.lockCountByLesson.Lock()
	mock.calls.CountByLesson = append(mock.calls.CountByLesson, callInfo)
	mock.lockCountByLesson.Unlock()
	return mock.CountByLessonFunc(ctx, lessonID)
}

func (mock *wordRepoMock) CountByLessonCalls() []struct {
	Ctx      context.Context
	LessonID uuid.UUID
} {
	mock.lockCountByLesson.RLock()
	calls := mock.calls.CountByLesson
	mock.lockCountByLesson.RUnlock()
	return calls
}
