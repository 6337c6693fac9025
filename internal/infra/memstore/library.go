package memstore

import (
	"context"
	"sync"

	"library-service/internal/domain/library"
	"library-service/internal/infra"

	"github.com/google/uuid"
)

// LibraryStore hands out clones so callers never share state with the store.
// Patrons are shared across libraries and the latest saved details win.
type LibraryStore struct {
	mu          sync.RWMutex
	byName      map[string]*library.Library
	order       []string
	patrons     map[uuid.UUID]library.Patron
	cardIDs     map[uuid.UUID]struct{}
	checkoutIDs map[uuid.UUID]struct{}
}

func NewLibraryStore() *LibraryStore {
	return &LibraryStore{
		byName:      make(map[string]*library.Library),
		patrons:     make(map[uuid.UUID]library.Patron),
		cardIDs:     make(map[uuid.UUID]struct{}),
		checkoutIDs: make(map[uuid.UUID]struct{}),
	}
}

func (s *LibraryStore) FindAll(_ context.Context) ([]*library.Library, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*library.Library, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name].WithPatrons(s.patrons))
	}
	return out, nil
}

func (s *LibraryStore) FindByName(_ context.Context, name string) (*library.Library, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lib, ok := s.byName[name]
	if !ok {
		return nil, infra.WrapRepoErr("library not found", nil, infra.KindNotFound)
	}
	return lib.WithPatrons(s.patrons), nil
}

func (s *LibraryStore) Save(_ context.Context, lib *library.Library) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[lib.Name()]; ok {
		return infra.WrapRepoErr("library already exists", nil, infra.KindDuplicateKey)
	}
	if err := s.checkIDsFree(lib); err != nil {
		return err
	}

	for _, card := range lib.Cards() {
		s.cardIDs[card.ID()] = struct{}{}
		for _, co := range card.Checkouts() {
			s.checkoutIDs[co.ID()] = struct{}{}
		}
	}
	for _, p := range lib.Patrons() {
		s.patrons[p.ID()] = p
	}
	s.byName[lib.Name()] = lib.Clone()
	s.order = append(s.order, lib.Name())
	return nil
}

func (s *LibraryStore) checkIDsFree(lib *library.Library) error {
	for _, card := range lib.Cards() {
		if _, ok := s.cardIDs[card.ID()]; ok {
			return infra.WrapRepoErr("library cards id already in use", nil, infra.KindIDInUse)
		}
		for _, co := range card.Checkouts() {
			if _, ok := s.checkoutIDs[co.ID()]; ok {
				return infra.WrapRepoErr("checkouts id already in use", nil, infra.KindIDInUse)
			}
		}
	}
	return nil
}
