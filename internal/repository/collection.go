// Package repository maps entity collections onto the collection
// store. Every write is a whole-collection replace: read the
// collection, mutate in memory, write it back (last write wins).
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/acadexa/testcenter-api/pkg/store"
)

// ErrNotFound is returned when a record id does not resolve.
var ErrNotFound = errors.New("record not found")

func loadAll[T any](ctx context.Context, s store.Store, name string) ([]T, error) {
	doc, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(doc) == 0 {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(doc, &items); err != nil {
		return nil, fmt.Errorf("decode %s collection: %w", name, err)
	}
	return items, nil
}

func saveAll[T any](ctx context.Context, s store.Store, name string, items []T) error {
	if items == nil {
		items = []T{}
	}
	doc, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s collection: %w", name, err)
	}
	return s.Put(ctx, name, doc)
}
