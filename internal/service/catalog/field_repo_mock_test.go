package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

var _ fieldRepo = &fieldRepoMock{}

type fieldRepoMock struct {
	ListActiveByModulesFunc func(ctx context.Context, moduleIDs []uuid.UUID) ([]domain.Field, error)
	ListByModuleFunc        func(ctx context.Context, moduleID uuid.UUID) ([]domain.Field, error)
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Field, error)
	GetByKeyFunc            func(ctx context.Context, kind domain.EntityKind, key string) (*domain.Field, error)
	CountByModuleFunc       func(ctx context.Context, moduleID uuid.UUID) (int, error)
	CreateFunc              func(ctx context.Context, f *domain.Field) (*domain.Field, error)
	UpdateFunc              func(ctx context.Context, id uuid.UUID, params domain.FieldUpdateParams) (*domain.Field, error)

	calls struct {
		ListActiveByModules []struct {
			Ctx       context.Context
			ModuleIDs []uuid.UUID
		}
		ListByModule []struct {
			Ctx      context.Context
			ModuleID uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByKey []struct {
			Ctx  context.Context
			Kind domain.EntityKind
			Key  string
		}
		CountByModule []struct {
			Ctx      context.Context
			ModuleID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			F   *domain.Field
		}
		Update []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Params domain.FieldUpdateParams
		}
	}
	lockListActiveByModules sync.RWMutex
	lockListByModule        sync.RWMutex
	lockGetByID             sync.RWMutex
	lockGetByKey            sync.RWMutex
	lockCountByModule       sync.RWMutex
	lockCreate              sync.RWMutex
	lockUpdate              sync.RWMutex
}

func (mock *fieldRepoMock) ListActiveByModules(ctx context.Context, moduleIDs []uuid.UUID) ([]domain.Field, error) {
	if mock.ListActiveByModulesFunc == nil {
		panic("fieldRepoMock.ListActiveByModulesFunc: method is nil but fieldRepo.ListActiveByModules was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ModuleIDs []uuid.UUID
	}{
		Ctx:       ctx,
		ModuleIDs: moduleIDs,
	}
	mock.lockListActiveByModules.Lock()
	mock.calls.ListActiveByModules = append(mock.calls.ListActiveByModules, callInfo)
	mock.lockListActiveByModules.Unlock()
	return mock.ListActiveByModulesFunc(ctx, moduleIDs)
}

func (mock *fieldRepoMock) ListActiveByModulesCalls() []struct {
	Ctx       context.Context
	ModuleIDs []uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ModuleIDs []uuid.UUID
	}
	mock.lockListActiveByModules.RLock()
	calls = mock.calls.ListActiveByModules
	mock.lockListActiveByModules.RUnlock()
	return calls
}

func (mock *fieldRepoMock) ListByModule(ctx context.Context, moduleID uuid.UUID) ([]domain.Field, error) {
	if mock.ListByModuleFunc == nil {
		panic("fieldRepoMock.ListByModuleFunc: method is nil but fieldRepo.ListByModule was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ModuleID uuid.UUID
	}{
		Ctx:      ctx,
		ModuleID: moduleID,
	}
	mock.lockListByModule.Lock()
	mock.calls.ListByModule = append(mock.calls.ListByModule, callInfo)
	mock.lockListByModule.Unlock()
	return mock.ListByModuleFunc(ctx, moduleID)
}

func (mock *fieldRepoMock) ListByModuleCalls() []struct {
	Ctx      context.Context
	ModuleID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		ModuleID uuid.UUID
	}
	mock.lockListByModule.RLock()
	calls = mock.calls.ListByModule
	mock.lockListByModule.RUnlock()
	return calls
}

func (mock *fieldRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Field, error) {
	if mock.GetByIDFunc == nil {
		panic("fieldRepoMock.GetByIDFunc: method is nil but fieldRepo.GetByID was just called")
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

func (mock *fieldRepoMock) GetByIDCalls() []struct {
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

func (mock *fieldRepoMock) GetByKey(ctx context.Context, kind domain.EntityKind, key string) (*domain.Field, error) {
	if mock.GetByKeyFunc == nil {
		panic("fieldRepoMock.GetByKeyFunc: method is nil but fieldRepo.GetByKey was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.EntityKind
		Key  string
	}{
		Ctx:  ctx,
		Kind: kind,
		Key:  key,
	}
	mock.lockGetByKey.Lock()
	mock.calls.GetByKey = append(mock.calls.GetByKey, callInfo)
	mock.lockGetByKey.Unlock()
	return mock.GetByKeyFunc(ctx, kind, key)
}

func (mock *fieldRepoMock) GetByKeyCalls() []struct {
	Ctx  context.Context
	Kind domain.EntityKind
	Key  string
} {
	var calls []struct {
		Ctx  context.Context
		Kind domain.EntityKind
		Key  string
	}
	mock.lockGetByKey.RLock()
	calls = mock.calls.GetByKey
	mock.lockGetByKey.RUnlock()
	return calls
}

func (mock *fieldRepoMock) CountByModule(ctx context.Context, moduleID uuid.UUID) (int, error) {
	if mock.CountByModuleFunc == nil {
		panic("fieldRepoMock.CountByModuleFunc: method is nil but fieldRepo.CountByModule was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ModuleID uuid.UUID
	}{
		Ctx:      ctx,
		ModuleID: moduleID,
	}
	mock.lockCountByModule.Lock()
	mock.calls.CountByModule = append(mock.calls.CountByModule, callInfo)
	mock.lockCountByModule.Unlock()
	return mock.CountByModuleFunc(ctx, moduleID)
}

func (mock *fieldRepoMock) CountByModuleCalls() []struct {
	Ctx      context.Context
	ModuleID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		ModuleID uuid.UUID
	}
	mock.lockCountByModule.RLock()
	calls = mock.calls.CountByModule
	mock.lockCountByModule.RUnlock()
	return calls
}

func (mock *fieldRepoMock) Create(ctx context.Context, f *domain.Field) (*domain.Field, error) {
	if mock.CreateFunc == nil {
		panic("fieldRepoMock.CreateFunc: method is nil but fieldRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   *domain.Field
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *fieldRepoMock) CreateCalls() []struct {
	Ctx context.Context
	F   *domain.Field
} {
	var calls []struct {
		Ctx context.Context
		F   *domain.Field
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *fieldRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.FieldUpdateParams) (*domain.Field, error) {
	if mock.UpdateFunc == nil {
		panic("fieldRepoMock.UpdateFunc: method is nil but fieldRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Params domain.FieldUpdateParams
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

func (mock *fieldRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Params domain.FieldUpdateParams
} {
	var calls []struct {
		Ctx    context.Context
		Id     uuid.UUID
		Params domain.FieldUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
