// Package memstore keeps the catalogue in process memory. It backs
// STORE_DRIVER=memory and the handler tests.
package memstore

import (
	"context"
	"sync"

	"library-service/internal/domain/checkable"
	"library-service/internal/infra"
)

type CheckableStore struct {
	mu     sync.RWMutex
	byISBN map[string]checkable.Checkable
	order  []string
}

func NewCheckableStore() *CheckableStore {
	return &CheckableStore{byISBN: make(map[string]checkable.Checkable)}
}

func (s *CheckableStore) FindAll(_ context.Context) ([]checkable.Checkable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]checkable.Checkable, 0, len(s.order))
	for _, isbn := range s.order {
		out = append(out, s.byISBN[isbn])
	}
	return out, nil
}

func (s *CheckableStore) FindByISBN(_ context.Context, isbn string) (checkable.Checkable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byISBN[isbn]
	if !ok {
		return checkable.Checkable{}, infra.WrapRepoErr("checkable not found", nil, infra.KindNotFound)
	}
	return c, nil
}

func (s *CheckableStore) FindByKind(_ context.Context, kind checkable.Kind) (checkable.Checkable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, isbn := range s.order {
		if c := s.byISBN[isbn]; c.Kind() == kind {
			return c, nil
		}
	}
	return checkable.Checkable{}, infra.WrapRepoErr("no checkable of kind", nil, infra.KindNotFound)
}

func (s *CheckableStore) Save(_ context.Context, c checkable.Checkable) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byISBN[c.ISBN()]; ok {
		return infra.WrapRepoErr("checkable already exists", nil, infra.KindDuplicateKey)
	}
	s.byISBN[c.ISBN()] = c
	s.order = append(s.order, c.ISBN())
	return nil
}
