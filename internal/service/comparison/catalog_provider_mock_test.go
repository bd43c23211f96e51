package comparison

import (
	"context"
	"sync"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

var _ catalogProvider = &catalogProviderMock{}

type catalogProviderMock struct {
	CatalogFunc func(ctx context.Context, kind domain.EntityKind) (domain.Catalog, error)

	calls struct {
		Catalog []struct {
			Ctx  context.Context
			Kind domain.EntityKind
		}
	}
	lockCatalog sync.RWMutex
}

func (mock *catalogProviderMock) Catalog(ctx context.Context, kind domain.EntityKind) (domain.Catalog, error) {
	if mock.CatalogFunc == nil {
		panic("catalogProviderMock.CatalogFunc: method is nil but catalogProvider.Catalog was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.EntityKind
	}{
		Ctx:  ctx,
		Kind: kind,
	}
	mock.lockCatalog.Lock()
	mock.calls.Catalog = append(mock.calls.Catalog, callInfo)
	mock.lockCatalog.Unlock()
	return mock.CatalogFunc(ctx, kind)
}

func (mock *catalogProviderMock) CatalogCalls() []struct {
	Ctx  context.Context
	Kind domain.EntityKind
} {
	var calls []struct {
		Ctx  context.Context
		Kind domain.EntityKind
	}
	mock.lockCatalog.RLock()
	calls = mock.calls.Catalog
	mock.lockCatalog.RUnlock()
	return calls
}
