package core

import (
	"context"
	"sync"
)

// DefaultHistoryLimit caps History results when no limit is given.
const DefaultHistoryLimit = 50

// ImportLog stores the outcome of every import.
// Implementations must be safe for concurrent use.
type ImportLog interface {
	// Record appends one entry.
	Record(ctx context.Context, entry ImportEntry) error

	// List returns the newest entries first. An empty template matches
	// every template; limit <= 0 means DefaultHistoryLimit.
	List(ctx context.Context, template string, limit int) ([]ImportEntry, error)
}

// MemoryImportLog is an ImportLog kept in process memory. It retains at
// most capacity entries and drops the oldest beyond that.
type MemoryImportLog struct {
	mu       sync.RWMutex
	entries  []ImportEntry
	capacity int
}

// NewMemoryImportLog creates an in-memory log holding up to capacity
// entries. A non-positive capacity keeps 1000.
func NewMemoryImportLog(capacity int) *MemoryImportLog {
	if capacity <= 0 {
		capacity = 1000
	}
	return &MemoryImportLog{capacity: capacity}
}

// Record implements ImportLog.
func (m *MemoryImportLog) Record(ctx context.Context, entry ImportEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, entry)
	if over := len(m.entries) - m.capacity; over > 0 {
		m.entries = append([]ImportEntry(nil), m.entries[over:]...)
	}
	return nil
}

// List implements ImportLog.
func (m *MemoryImportLog) List(ctx context.Context, template string, limit int) ([]ImportEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]ImportEntry, 0, min(limit, len(m.entries)))
	for i := len(m.entries) - 1; i >= 0 && len(result) < limit; i-- {
		if template == "" || m.entries[i].Template == template {
			result = append(result, m.entries[i])
		}
	}
	return result, nil
}
