package draft

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

var _ draftRepo = &draftRepoMock{}

type draftRepoMock struct {
	SaveFunc    func(ctx context.Context, d domain.FormDraft) (bool, error)
	DiscardFunc func(ctx context.Context, userID uuid.UUID, entityKey string, seq int64) (bool, error)
	GetFunc     func(ctx context.Context, userID uuid.UUID, entityKey string) (*domain.FormDraft, error)

	calls struct {
		Save []struct {
			Ctx context.Context
			D   domain.FormDraft
		}
		Discard []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			EntityKey string
			Seq       int64
		}
		Get []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			EntityKey string
		}
	}
	lockSave    sync.RWMutex
	lockDiscard sync.RWMutex
	lockGet     sync.RWMutex
}

func (mock *draftRepoMock) Save(ctx context.Context, d domain.FormDraft) (bool, error) {
	if mock.SaveFunc == nil {
		panic("draftRepoMock.SaveFunc: method is nil but draftRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.FormDraft
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, d)
}

func (mock *draftRepoMock) SaveCalls() []struct {
	Ctx context.Context
	D   domain.FormDraft
} {
	var calls []struct {
		Ctx context.Context
		D   domain.FormDraft
	}
	mock.lockSave.RLock()
	calls = mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *draftRepoMock) Discard(ctx context.Context, userID uuid.UUID, entityKey string, seq int64) (bool, error) {
	if mock.DiscardFunc == nil {
		panic("draftRepoMock.DiscardFunc: method is nil but draftRepo.Discard was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		EntityKey string
		Seq       int64
	}{
		Ctx:       ctx,
		UserID:    userID,
		EntityKey: entityKey,
		Seq:       seq,
	}
	mock.lockDiscard.Lock()
	mock.calls.Discard = append(mock.calls.Discard, callInfo)
	mock.lockDiscard.Unlock()
	return mock.DiscardFunc(ctx, userID, entityKey, seq)
}

func (mock *draftRepoMock) DiscardCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	EntityKey string
	Seq       int64
} {
	var calls []struct {
		Ctx       context.Context
		UserID    uuid.UUID
		EntityKey string
		Seq       int64
	}
	mock.lockDiscard.RLock()
	calls = mock.calls.Discard
	mock.lockDiscard.RUnlock()
	return calls
}

func (mock *draftRepoMock) Get(ctx context.Context, userID uuid.UUID, entityKey string) (*domain.FormDraft, error) {
	if mock.GetFunc == nil {
		panic("draftRepoMock.GetFunc: method is nil but draftRepo.Get was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		EntityKey string
	}{
		Ctx:       ctx,
		UserID:    userID,
		EntityKey: entityKey,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, entityKey)
}

func (mock *draftRepoMock) GetCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	EntityKey string
} {
	var calls []struct {
		Ctx       context.Context
		UserID    uuid.UUID
		EntityKey string
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
