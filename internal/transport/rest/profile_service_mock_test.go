package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	MeFunc func(ctx context.Context) (*domain.User, error)

	calls struct {
		Me []struct {
			Ctx context.Context
		}
	}
	lockMe sync.RWMutex
}

func (mock *profileServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("profileServiceMock.MeFunc: method is nil but profileService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *profileServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockMe.RLock()
	calls = mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}
