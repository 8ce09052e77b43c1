package repository

import (
	"context"

	"github.com/vitalwatch/backend/internal/vitals"
)

// Store reads vital readings from the backing store. Implementations are
// read-only; readings are written by sensor ingestion outside this service.
type Store interface {
	// FetchRecent returns up to limit most-recently-inserted readings across
	// all users, oldest of the window first.
	FetchRecent(ctx context.Context, limit int) ([]vitals.VitalReading, error)
	// FetchByUser returns every reading whose userId equals uid, in one
	// round trip (no pagination).
	FetchByUser(ctx context.Context, uid string) ([]vitals.VitalReading, error)
}
