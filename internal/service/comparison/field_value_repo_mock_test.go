package comparison

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

var _ fieldValueRepo = &fieldValueRepoMock{}

type fieldValueRepoMock struct {
	ListByEntitiesFunc func(ctx context.Context, entityIDs []uuid.UUID) (map[uuid.UUID][]domain.FieldValue, error)

	calls struct {
		ListByEntities []struct {
			Ctx       context.Context
			EntityIDs []uuid.UUID
		}
	}
	lockListByEntities sync.RWMutex
}

func (mock *fieldValueRepoMock) ListByEntities(ctx context.Context, entityIDs []uuid.UUID) (map[uuid.UUID][]domain.FieldValue, error) {
	if mock.ListByEntitiesFunc == nil {
		panic("fieldValueRepoMock.ListByEntitiesFunc: method is nil but fieldValueRepo.ListByEntities was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		EntityIDs []uuid.UUID
	}{
		Ctx:       ctx,
		EntityIDs: entityIDs,
	}
	mock.lockListByEntities.Lock()
	mock.calls.ListByEntities = append(mock.calls.ListByEntities, callInfo)
	mock.lockListByEntities.Unlock()
	return mock.ListByEntitiesFunc(ctx, entityIDs)
}

func (mock *fieldValueRepoMock) ListByEntitiesCalls() []struct {
	Ctx       context.Context
	EntityIDs []uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		EntityIDs []uuid.UUID
	}
	mock.lockListByEntities.RLock()
	calls = mock.calls.ListByEntities
	mock.lockListByEntities.RUnlock()
	return calls
}
