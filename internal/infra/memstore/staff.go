package memstore

import (
	"context"
	"sync"

	"library-service/internal/domain/staff"
	"library-service/internal/infra"
)

type StaffStore struct {
	mu         sync.RWMutex
	byUsername map[string]staff.Staff
}

func NewStaffStore() *StaffStore {
	return &StaffStore{byUsername: make(map[string]staff.Staff)}
}

func (s *StaffStore) FindByUsername(_ context.Context, username string) (*staff.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	member, ok := s.byUsername[username]
	if !ok {
		return nil, infra.WrapRepoErr("staff not found", nil, infra.KindNotFound)
	}
	return &member, nil
}

func (s *StaffStore) Save(_ context.Context, member *staff.Staff) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUsername[member.Username()]; ok {
		return infra.WrapRepoErr("staff already exists", nil, infra.KindDuplicateKey)
	}
	s.byUsername[member.Username()] = *member
	return nil
}
