package nocodb

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// resolver caches title → ID lookups so callers can address bases, tables
// and columns by name without paying a meta round-trip on every call.
// Entries are invalidated by the Client when it creates or deletes the
// corresponding resource; out-of-band schema changes need InvalidateCache.
type resolver struct {
	mu      sync.Mutex
	bases   map[string]string // base title -> id
	tables  map[string]string // baseID + "/" + table title -> id
	columns map[string]string // tableID + "/" + column title -> id
}

func newResolver() *resolver {
	return &resolver{
		bases:   make(map[string]string),
		tables:  make(map[string]string),
		columns: make(map[string]string),
	}
}

func (r *resolver) get(m map[string]string, key string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := m[key]
	return id, ok
}

func (r *resolver) put(m map[string]string, key, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m[key] = id
}

func (r *resolver) invalidateBases() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bases = make(map[string]string)
}

func (r *resolver) invalidateTables(baseID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.tables {
		if len(key) > len(baseID) && key[:len(baseID)] == baseID && key[len(baseID)] == '/' {
			delete(r.tables, key)
		}
	}
}

func (r *resolver) invalidateColumns(tableID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.columns {
		if len(key) > len(tableID) && key[:len(tableID)] == tableID && key[len(tableID)] == '/' {
			delete(r.columns, key)
		}
	}
}

func (r *resolver) invalidateAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bases = make(map[string]string)
	r.tables = make(map[string]string)
	r.columns = make(map[string]string)
}

// InvalidateCache drops every cached title → ID mapping. Call it after the
// schema has been changed by another client.
func (c *Client) InvalidateCache() { c.resolver.invalidateAll() }

// BaseIDByTitle resolves a base title to its ID, caching the result.
// When several bases share the title the first match wins and a warning is
// logged.
func (c *Client) BaseIDByTitle(ctx context.Context, title string) (string, error) {
	if id, ok := c.resolver.get(c.resolver.bases, title); ok {
		return id, nil
	}
	bases, err := c.ListBases(ctx)
	if err != nil {
		return "", err
	}
	var matches []Base
	for _, b := range bases {
		if b.Title == title {
			matches = append(matches, b)
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("base %q not found: %w", title, ErrNotFound)
	}
	if len(matches) > 1 {
		log.Warn().Str("title", title).Int("count", len(matches)).Msg("duplicate base titles, using first match")
	}
	c.resolver.put(c.resolver.bases, title, matches[0].ID)
	return matches[0].ID, nil
}

// TableIDByTitle resolves a table title within a base to its ID, caching
// the result.
func (c *Client) TableIDByTitle(ctx context.Context, baseID, title string) (string, error) {
	key := baseID + "/" + title
	if id, ok := c.resolver.get(c.resolver.tables, key); ok {
		return id, nil
	}
	tables, err := c.ListTables(ctx, baseID)
	if err != nil {
		return "", err
	}
	for _, t := range tables {
		if t.Title == title {
			c.resolver.put(c.resolver.tables, key, t.ID)
			return t.ID, nil
		}
	}
	return "", fmt.Errorf("table %q not found in base %s: %w", title, baseID, ErrNotFound)
}

// ColumnIDByTitle resolves a column title within a table to its ID, caching
// the result.
func (c *Client) ColumnIDByTitle(ctx context.Context, tableID, title string) (string, error) {
	key := tableID + "/" + title
	if id, ok := c.resolver.get(c.resolver.columns, key); ok {
		return id, nil
	}
	table, err := c.GetTable(ctx, tableID)
	if err != nil {
		return "", err
	}
	for _, col := range table.Columns {
		if col.Title == title {
			c.resolver.put(c.resolver.columns, key, col.ID)
			return col.ID, nil
		}
	}
	return "", fmt.Errorf("column %q not found in table %s: %w", title, tableID, ErrNotFound)
}
