package comparison

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

var _ systemRepo = &systemRepoMock{}

type systemRepoMock struct {
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.System, error)
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.System, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockGetByID  sync.RWMutex
	lockGetByIDs sync.RWMutex
}

func (mock *systemRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.System, error) {
	if mock.GetByIDFunc == nil {
		panic("systemRepoMock.GetByIDFunc: method is nil but systemRepo.GetByID was just called")
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

func (mock *systemRepoMock) GetByIDCalls() []struct {
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

func (mock *systemRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.System, error) {
	if mock.GetByIDsFunc == nil {
		panic("systemRepoMock.GetByIDsFunc: method is nil but systemRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *systemRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Ids []uuid.UUID
	}
	mock.lockGetByIDs.RLock()
	calls = mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}
