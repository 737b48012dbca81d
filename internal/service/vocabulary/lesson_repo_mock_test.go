package vocabulary

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/flashcards/internal/domain"
)

var _ lessonRepo = &lessonRepoMock{}

type lessonRepoMock struct {
	FindByTitleFragmentFunc func(ctx context.Context, fragment string) (*domain.Lesson, error)
	FindByTitleFunc         func(ctx context.Context, title string) (*domain.Lesson, error)
	CreateFunc              func(ctx context.Context, l *domain.Lesson) (*domain.Lesson, error)
	AnyOwnerIDFunc          func(ctx context.Context) (uuid.UUID, error)

	calls struct {
		FindByTitleFragment []struct {
			Ctx      context.Context
			Fragment string
		}
		FindByTitle []struct {
			Ctx   context.Context
			Title string
		}
		Create []struct {
			Ctx context.Context
			L   *domain.Lesson
		}
		AnyOwnerID []struct {
			Ctx context.Context
		}
	}
	lockFindByTitleFragment sync.RWMutex
	lockFindByTitle         sync.RWMutex
	lockCreate              sync.RWMutex
	lockAnyOwnerID          sync.RWMutex
}

func (mock *lessonRepoMock) FindByTitleFragment(ctx context.Context, fragment string) (*domain.Lesson, error) {
	if mock.FindByTitleFragmentFunc == nil {
		panic("lessonRepoMock.FindByTitleFragmentFunc: method is nil but lessonRepo.FindByTitleFragment was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Fragment string
	}{Ctx: ctx, Fragment: fragment}
	mock.lockFindByTitleFragment.Lock()
	mock.calls.FindByTitleFragment = append(mock.calls.FindByTitleFragment, callInfo)
	mock.lockFindByTitleFragment.Unlock()
	return mock.FindByTitleFragmentFunc(ctx, fragment)
}

func (mock *lessonRepoMock) FindByTitleFragmentCalls() []struct {
	Ctx      context.Context
	Fragment string
} {
	mock.lockFindByTitleFragment.RLock()
	calls := mock.calls.FindByTitleFragment
	mock.lockFindByTitleFragment.RUnlock()
	return calls
}

func (mock *lessonRepoMock) FindByTitle(ctx context.Context, title string) (*domain.Lesson, error) {
	if mock.FindByTitleFunc == nil {
		panic("lessonRepoMock.FindByTitleFunc: method is nil but lessonRepo.FindByTitle was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Title string
	}{Ctx: ctx, Title: title}
	mock.lockFindByTitle.Lock()
	mock.calls.FindByTitle = append(mock.calls.FindByTitle, callInfo)
	mock.lockFindByTitle.Unlock()
	return mock.FindByTitleFunc(ctx, title)
}

func (mock *lessonRepoMock) FindByTitleCalls() []struct {
	Ctx   context.Context
	Title string
} {
	mock.lockFindByTitle.RLock()
	calls := mock.calls.FindByTitle
	mock.lockFindByTitle.RUnlock()
	return calls
}

func (mock *lessonRepoMock) Create(ctx context.Context, l *domain.Lesson) (*domain.Lesson, error) {
	if mock.CreateFunc == nil {
		panic("lessonRepoMock.CreateFunc: method is nil but lessonRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.Lesson
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *lessonRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.Lesson
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *lessonRepoMock) AnyOwnerID(ctx context.Context) (uuid.UUID, error) {
	if mock.AnyOwnerIDFunc == nil {
		panic("lessonRepoMock.AnyOwnerIDFunc: method is nil but lessonRepo.AnyOwnerID was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockAnyOwnerID.Lock()
	mock.calls.AnyOwnerID = append(mock.calls.AnyOwnerID, callInfo)
	mock.lockAnyOwnerID.Unlock()
	return mock.AnyOwnerIDFunc(ctx)
}

func (mock *lessonRepoMock) AnyOwnerIDCalls() []struct {
	Ctx context.Context
} {
	mock.lockAnyOwnerID.RLock()
	calls := mock.calls.AnyOwnerID
	mock.lockAnyOwnerID.RUnlock()
	return calls
}
