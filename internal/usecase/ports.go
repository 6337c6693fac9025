//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/mock_ports.go -package=usecasemock

package usecase

import (
	"context"

	"library-service/internal/domain/checkable"
	"library-service/internal/domain/library"
	"library-service/internal/domain/staff"
)

// Stores report misses as infra.KindNotFound and rejected inserts as
// infra.KindDuplicateKey. Save must be an atomic insert-if-absent on the identifier.

type CheckableRepository interface {
	FindAll(ctx context.Context) ([]checkable.Checkable, error)
	FindByISBN(ctx context.Context, isbn string) (checkable.Checkable, error)
	// FindByKind returns the first checkable of kind in store order.
	FindByKind(ctx context.Context, kind checkable.Kind) (checkable.Checkable, error)
	Save(ctx context.Context, c checkable.Checkable) error
}

type LibraryRepository interface {
	FindAll(ctx context.Context) ([]*library.Library, error)
	FindByName(ctx context.Context, name string) (*library.Library, error)
	Save(ctx context.Context, lib *library.Library) error
}

type StaffRepository interface {
	FindByUsername(ctx context.Context, username string) (*staff.Staff, error)
	Save(ctx context.Context, s *staff.Staff) error
}
