package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/internal/service/glossary"
)

var _ glossaryService = &glossaryServiceMock{}

type glossaryServiceMock struct {
	ListFunc      func(ctx context.Context) ([]domain.GlossaryTerm, error)
	GetBySlugFunc func(ctx context.Context, slug string) (*domain.GlossaryTerm, error)
	CreateFunc    func(ctx context.Context, input glossary.TermInput) (*domain.GlossaryTerm, error)
	UpdateFunc    func(ctx context.Context, id uuid.UUID, input glossary.TermInput) (*domain.GlossaryTerm, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		Create []struct {
			Ctx   context.Context
			Input glossary.TermInput
		}
		Update []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input glossary.TermInput
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockList      sync.RWMutex
	lockGetBySlug sync.RWMutex
	lockCreate    sync.RWMutex
	lockUpdate    sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *glossaryServiceMock) List(ctx context.Context) ([]domain.GlossaryTerm, error) {
	if mock.ListFunc == nil {
		panic("glossaryServiceMock.ListFunc: method is nil but glossaryService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *glossaryServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *glossaryServiceMock) GetBySlug(ctx context.Context, slug string) (*domain.GlossaryTerm, error) {
	if mock.GetBySlugFunc == nil {
		panic("glossaryServiceMock.GetBySlugFunc: method is nil but glossaryService.GetBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{
		Ctx:  ctx,
		Slug: slug,
	}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, callInfo)
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *glossaryServiceMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	var calls []struct {
		Ctx  context.Context
		Slug string
	}
	mock.lockGetBySlug.RLock()
	calls = mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}

func (mock *glossaryServiceMock) Create(ctx context.Context, input glossary.TermInput) (*domain.GlossaryTerm, error) {
	if mock.CreateFunc == nil {
		panic("glossaryServiceMock.CreateFunc: method is nil but glossaryService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input glossary.TermInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *glossaryServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input glossary.TermInput
} {
	var calls []struct {
		Ctx   context.Context
		Input glossary.TermInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *glossaryServiceMock) Update(ctx context.Context, id uuid.UUID, input glossary.TermInput) (*domain.GlossaryTerm, error) {
	if mock.UpdateFunc == nil {
		panic("glossaryServiceMock.UpdateFunc: method is nil but glossaryService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input glossary.TermInput
	}{
		Ctx:   ctx,
		Id:    id,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *glossaryServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input glossary.TermInput
} {
	var calls []struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input glossary.TermInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *glossaryServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("glossaryServiceMock.DeleteFunc: method is nil but glossaryService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *glossaryServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
