package glossary

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

var _ termRepo = &termRepoMock{}

type termRepoMock struct {
	ListFunc      func(ctx context.Context) ([]domain.GlossaryTerm, error)
	GetBySlugFunc func(ctx context.Context, slug string) (*domain.GlossaryTerm, error)
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.GlossaryTerm, error)
	CreateFunc    func(ctx context.Context, t *domain.GlossaryTerm) (*domain.GlossaryTerm, error)
	UpdateFunc    func(ctx context.Context, t *domain.GlossaryTerm) (*domain.GlossaryTerm, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			T   *domain.GlossaryTerm
		}
		Update []struct {
			Ctx context.Context
			T   *domain.GlossaryTerm
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockList      sync.RWMutex
	lockGetBySlug sync.RWMutex
	lockGetByID   sync.RWMutex
	lockCreate    sync.RWMutex
	lockUpdate    sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *termRepoMock) List(ctx context.Context) ([]domain.GlossaryTerm, error) {
	if mock.ListFunc == nil {
		panic("termRepoMock.ListFunc: method is nil but termRepo.List was just called")
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

func (mock *termRepoMock) ListCalls() []struct {
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

func (mock *termRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.GlossaryTerm, error) {
	if mock.GetBySlugFunc == nil {
		panic("termRepoMock.GetBySlugFunc: method is nil but termRepo.GetBySlug was just called")
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

func (mock *termRepoMock) GetBySlugCalls() []struct {
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

func (mock *termRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.GlossaryTerm, error) {
	if mock.GetByIDFunc == nil {
		panic("termRepoMock.GetByIDFunc: method is nil but termRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *termRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *termRepoMock) Create(ctx context.Context, t *domain.GlossaryTerm) (*domain.GlossaryTerm, error) {
	if mock.CreateFunc == nil {
		panic("termRepoMock.CreateFunc: method is nil but termRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.GlossaryTerm
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *termRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.GlossaryTerm
} {
	var calls []struct {
		Ctx context.Context
		T   *domain.GlossaryTerm
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *termRepoMock) Update(ctx context.Context, t *domain.GlossaryTerm) (*domain.GlossaryTerm, error) {
	if mock.UpdateFunc == nil {
		panic("termRepoMock.UpdateFunc: method is nil but termRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.GlossaryTerm
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, t)
}

func (mock *termRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	T   *domain.GlossaryTerm
} {
	var calls []struct {
		Ctx context.Context
		T   *domain.GlossaryTerm
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *termRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("termRepoMock.DeleteFunc: method is nil but termRepo.Delete was just called")
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

func (mock *termRepoMock) DeleteCalls() []struct {
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
