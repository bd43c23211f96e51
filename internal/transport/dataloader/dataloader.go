// Package dataloader provides per-request loaders that batch field value
// lookups for system listings into single SQL calls. Loaders call the
// repository directly; callers are responsible for visibility checks on
// the systems whose values they load.
package dataloader

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type fieldValueRepo interface {
	ListByEntities(ctx context.Context, entityIDs []uuid.UUID) (map[uuid.UUID][]domain.FieldValue, error)
}

// Loaders holds the per-request loader instances.
type Loaders struct {
	FieldValuesBySystemID *dataloader.Loader[uuid.UUID, []domain.FieldValue]
}

// NewLoaders creates a fresh set of loaders. Results are cached for the
// lifetime of the returned value, so create one per request.
func NewLoaders(values fieldValueRepo) *Loaders {
	return &Loaders{
		FieldValuesBySystemID: newLoader(newFieldValuesBatchFn(values)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

func newFieldValuesBatchFn(repo fieldValueRepo) dataloader.BatchFunc[uuid.UUID, []domain.FieldValue] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.FieldValue] {
		grouped, err := repo.ListByEntities(ctx, keys)
		if err != nil {
			return errorResults[[]domain.FieldValue](len(keys), err)
		}
		return mapResults(keys, grouped, emptySlice[domain.FieldValue])
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func emptySlice[T any]() []T {
	return []T{}
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext returns the request's Loaders, or nil when the middleware
// is not installed.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// Middleware instantiates per-request loaders and stores them in the context.
func Middleware(values fieldValueRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(values))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

var errNoLoaders = errors.New("dataloader: loaders not found in context")

// LoadFieldValues returns the stored field values keyed by system id,
// batching concurrent calls within the request.
func LoadFieldValues(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.FieldValue, error) {
	out := make(map[uuid.UUID][]domain.FieldValue, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	l := FromContext(ctx)
	if l == nil {
		return nil, errNoLoaders
	}

	values, errs := l.FieldValuesBySystemID.LoadMany(ctx, ids)()
	for i, id := range ids {
		if len(errs) > i && errs[i] != nil {
			return nil, errs[i]
		}
		out[id] = values[i]
	}
	return out, nil
}
