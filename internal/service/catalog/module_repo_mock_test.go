package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

var _ moduleRepo = &moduleRepoMock{}

type moduleRepoMock struct {
	ListActiveFunc func(ctx context.Context, kind domain.EntityKind) ([]domain.Module, error)
	ListAllFunc    func(ctx context.Context, kind domain.EntityKind) ([]domain.Module, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Module, error)
	GetByNameFunc  func(ctx context.Context, kind domain.EntityKind, name string) (*domain.Module, error)
	CreateFunc     func(ctx context.Context, m *domain.Module) (*domain.Module, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, params domain.ModuleUpdateParams) (*domain.Module, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ListActive []struct {
			Ctx  context.Context
			Kind domain.EntityKind
		}
		ListAll []struct {
			Ctx  context.Context
			Kind domain.EntityKind
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByName []struct {
			Ctx  context.Context
			Kind domain.EntityKind
			Name string
		}
		Create []struct {
			Ctx context.Context
			M   *domain.Module
		}
		Update []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Params domain.ModuleUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockListActive sync.RWMutex
	lockListAll    sync.RWMutex
	lockGetByID    sync.RWMutex
	lockGetByName  sync.RWMutex
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *moduleRepoMock) ListActive(ctx context.Context, kind domain.EntityKind) ([]domain.Module, error) {
	if mock.ListActiveFunc == nil {
		panic("moduleRepoMock.ListActiveFunc: method is nil but moduleRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.EntityKind
	}{
		Ctx:  ctx,
		Kind: kind,
	}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx, kind)
}

func (mock *moduleRepoMock) ListActiveCalls() []struct {
	Ctx  context.Context
	Kind domain.EntityKind
} {
	var calls []struct {
		Ctx  context.Context
		Kind domain.EntityKind
	}
	mock.lockListActive.RLock()
	calls = mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *moduleRepoMock) ListAll(ctx context.Context, kind domain.EntityKind) ([]domain.Module, error) {
	if mock.ListAllFunc == nil {
		panic("moduleRepoMock.ListAllFunc: method is nil but moduleRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.EntityKind
	}{
		Ctx:  ctx,
		Kind: kind,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, kind)
}

func (mock *moduleRepoMock) ListAllCalls() []struct {
	Ctx  context.Context
	Kind domain.EntityKind
} {
	var calls []struct {
		Ctx  context.Context
		Kind domain.EntityKind
	}
	mock.lockListAll.RLock()
	calls = mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *moduleRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Module, error) {
	if mock.GetByIDFunc == nil {
		panic("moduleRepoMock.GetByIDFunc: method is nil but moduleRepo.GetByID was just called")
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

func (mock *moduleRepoMock) GetByIDCalls() []struct {
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

func (mock *moduleRepoMock) GetByName(ctx context.Context, kind domain.EntityKind, name string) (*domain.Module, error) {
	if mock.GetByNameFunc == nil {
		panic("moduleRepoMock.GetByNameFunc: method is nil but moduleRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.EntityKind
		Name string
	}{
		Ctx:  ctx,
		Kind: kind,
		Name: name,
	}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, kind, name)
}

func (mock *moduleRepoMock) GetByNameCalls() []struct {
	Ctx  context.Context
	Kind domain.EntityKind
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		Kind domain.EntityKind
		Name string
	}
	mock.lockGetByName.RLock()
	calls = mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *moduleRepoMock) Create(ctx context.Context, m *domain.Module) (*domain.Module, error) {
	if mock.CreateFunc == nil {
		panic("moduleRepoMock.CreateFunc: method is nil but moduleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Module
	}{
		Ctx: ctx,
		M:   m,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *moduleRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Module
} {
	var calls []struct {
		Ctx context.Context
		M   *domain.Module
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *moduleRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.ModuleUpdateParams) (*domain.Module, error) {
	if mock.UpdateFunc == nil {
		panic("moduleRepoMock.UpdateFunc: method is nil but moduleRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Params domain.ModuleUpdateParams
	}{
		Ctx:    ctx,
		Id:     id,
		Params: params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *moduleRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Params domain.ModuleUpdateParams
} {
	var calls []struct {
		Ctx    context.Context
		Id     uuid.UUID
		Params domain.ModuleUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *moduleRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("moduleRepoMock.DeleteFunc: method is nil but moduleRepo.Delete was just called")
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

func (mock *moduleRepoMock) DeleteCalls() []struct {
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
