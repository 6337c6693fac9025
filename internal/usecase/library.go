//go:generate mockgen -source=library.go -destination=../../tests/mock/usecase/mock_library.go -package=usecasemock

package usecase

import (
	"context"

	"library-service/internal/domain/library"
	"library-service/internal/infra"
	"library-service/internal/pkg/clock"
	"library-service/internal/pkg/errs"
	"library-service/internal/usecase/readmodel"
)

type LibraryService interface {
	GetLibraries(ctx context.Context) ([]*library.Library, error)
	GetLibraryByName(ctx context.Context, name string) (*library.Library, error)
	Save(ctx context.Context, lib *library.Library) error
	GetCheckableAmount(ctx context.Context, libraryName, isbn string) (library.CheckableAmount, error)
	GetLibrariesWithAvailableCheckout(ctx context.Context, isbn string) ([]readmodel.LibraryAvailableCheckouts, error)
	GetOverdueCheckouts(ctx context.Context, libraryName string) ([]readmodel.OverdueCheckout, error)
}

type libraryServiceImpl struct {
	repo       LibraryRepository
	checkables CheckableService
	clock      clock.Clock
}

func NewLibraryService(repo LibraryRepository, checkables CheckableService, clk clock.Clock) LibraryService {
	return &libraryServiceImpl{
		repo:       repo,
		checkables: checkables,
		clock:      clk,
	}
}

func (s *libraryServiceImpl) GetLibraries(ctx context.Context) ([]*library.Library, error) {
	return s.repo.FindAll(ctx)
}

func (s *libraryServiceImpl) GetLibraryByName(ctx context.Context, name string) (*library.Library, error) {
	lib, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Newf(errs.ErrLibraryNotFound, "Library with the name: %s was not found", name)
		}
		return nil, err
	}
	return lib, nil
}

func (s *libraryServiceImpl) Save(ctx context.Context, lib *library.Library) error {
	libraries, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, l := range libraries {
		if l.Name() == lib.Name() {
			return libraryExists(lib.Name())
		}
	}

	if err := s.repo.Save(ctx, lib); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return libraryExists(lib.Name())
		}
		if infra.IsKind(err, infra.KindIDInUse) {
			return errs.Newf(errs.ErrResourceExists, "Library: %s reuses a card or checkout id that is already in use", lib.Name())
		}
		return err
	}
	return nil
}

func (s *libraryServiceImpl) GetCheckableAmount(ctx context.Context, libraryName, isbn string) (library.CheckableAmount, error) {
	lib, err := s.GetLibraryByName(ctx, libraryName)
	if err != nil {
		return library.CheckableAmount{}, err
	}

	c, err := s.checkables.GetByISBN(ctx, isbn)
	if err != nil {
		return library.CheckableAmount{}, err
	}

	if amount, ok := lib.AmountOf(isbn); ok {
		return amount, nil
	}

	// not stocked: a zero entry that is never persisted
	return library.NewCheckableAmount(c, 0)
}

func (s *libraryServiceImpl) GetLibrariesWithAvailableCheckout(ctx context.Context, isbn string) ([]readmodel.LibraryAvailableCheckouts, error) {
	c, err := s.checkables.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}

	libraries, err := s.GetLibraries(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]readmodel.LibraryAvailableCheckouts, 0)
	for _, lib := range libraries {
		for _, amount := range lib.Checkables() {
			if amount.ISBN() == c.ISBN() && amount.Amount() > 0 {
				available = append(available, readmodel.LibraryAvailableCheckouts{
					Amount:      amount.Amount(),
					LibraryName: lib.Name(),
				})
			}
		}
	}
	return available, nil
}

func (s *libraryServiceImpl) GetOverdueCheckouts(ctx context.Context, libraryName string) ([]readmodel.OverdueCheckout, error) {
	lib, err := s.GetLibraryByName(ctx, libraryName)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	overdue := make([]readmodel.OverdueCheckout, 0)
	for _, card := range lib.Cards() {
		for _, co := range card.Checkouts() {
			if co.IsOverdueAt(now) {
				overdue = append(overdue, readmodel.OverdueCheckout{
					Patron:   card.Patron(),
					Checkout: co,
				})
			}
		}
	}
	return overdue, nil
}

func libraryExists(name string) error {
	return errs.Newf(errs.ErrResourceExists, "Library with name: %s already exists!", name)
}
