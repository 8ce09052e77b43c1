package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/vitalwatch/backend/internal/vitals"
)

// MemoryRepo keeps readings in insertion order. Used for unit tests and for
// credential-less development runs.
type MemoryRepo struct {
	mu       sync.RWMutex
	readings []vitals.VitalReading
	seq      int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Add appends a reading, assigning a store key when the caller left ID empty,
// and returns the key. Only tests and dev seeding write through this.
func (m *MemoryRepo) Add(rec vitals.VitalReading) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	if rec.ID == "" {
		rec.ID = fmt.Sprintf("vr_%06d", m.seq)
	}
	m.readings = append(m.readings, rec)
	return rec.ID
}

func (m *MemoryRepo) FetchRecent(ctx context.Context, limit int) ([]vitals.VitalReading, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	start := 0
	if len(m.readings) > limit {
		start = len(m.readings) - limit
	}
	out := make([]vitals.VitalReading, len(m.readings)-start)
	copy(out, m.readings[start:])
	return out, nil
}

func (m *MemoryRepo) FetchByUser(ctx context.Context, uid string) ([]vitals.VitalReading, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []vitals.VitalReading{}
	for _, r := range m.readings {
		if r.UserID == uid {
			out = append(out, r)
		}
	}
	return out, nil
}
