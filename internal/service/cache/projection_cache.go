package cache

import (
	"sync"

	"QuoteBoard/internal/domain/models"
)

// ProjectionKey identifies a derived projection. Snapshot identity is the
// engine's snapshot sequence number; a memo entry is valid only for the exact
// (snapshot, searchTerm, sortConfig) triple.
type ProjectionKey struct {
	SnapshotSeq uint64
	Term        string
	Sort        models.SortConfig
}

// ProjectionCache memoizes the most recent projection. Callers must treat the
// returned slice as read-only.
type ProjectionCache struct {
	mu   sync.Mutex
	key  ProjectionKey
	rows []models.QuoteRecord
	ok   bool
}

func NewProjectionCache() *ProjectionCache {
	return &ProjectionCache{}
}

func (c *ProjectionCache) Get(key ProjectionKey) ([]models.QuoteRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ok || c.key != key {
		return nil, false
	}
	return c.rows, true
}

func (c *ProjectionCache) Put(key ProjectionKey, rows []models.QuoteRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = key
	c.rows = rows
	c.ok = true
}
