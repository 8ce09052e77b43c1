package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vitalwatch/backend/internal/vitals"
	"github.com/vitalwatch/backend/internal/vitals/repository"
)

// ErrStoreUnavailable wraps any backing-store failure. The gateway converts
// it to a generic 500; the cause stays in the server logs.
var ErrStoreUnavailable = errors.New("vitals store unavailable")

// Service exposes the two read operations of the query gateway.
type Service interface {
	Recent(ctx context.Context, limit int) ([]vitals.VitalReading, error)
	ForUser(ctx context.Context, uid string) ([]vitals.VitalReading, error)
}

type storeService struct {
	store repository.Store
}

// New returns a Service over the given store.
func New(store repository.Store) Service {
	return &storeService{store: store}
}

func (s *storeService) Recent(ctx context.Context, limit int) ([]vitals.VitalReading, error) {
	out, err := s.store.FetchRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if out == nil {
		out = []vitals.VitalReading{}
	}
	return out, nil
}

func (s *storeService) ForUser(ctx context.Context, uid string) ([]vitals.VitalReading, error) {
	out, err := s.store.FetchByUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if out == nil {
		out = []vitals.VitalReading{}
	}
	return out, nil
}
