//go:generate mockgen -source=checkable.go -destination=../../tests/mock/usecase/mock_checkable.go -package=usecasemock

package usecase

import (
	"context"

	"library-service/internal/domain/checkable"
	"library-service/internal/infra"
	"library-service/internal/pkg/errs"
)

type CheckableService interface {
	GetAll(ctx context.Context) ([]checkable.Checkable, error)
	GetByISBN(ctx context.Context, isbn string) (checkable.Checkable, error)
	GetByKind(ctx context.Context, kind checkable.Kind) (checkable.Checkable, error)
	Save(ctx context.Context, c checkable.Checkable) error
}

type checkableServiceImpl struct {
	repo CheckableRepository
}

func NewCheckableService(repo CheckableRepository) CheckableService {
	return &checkableServiceImpl{repo: repo}
}

func (s *checkableServiceImpl) GetAll(ctx context.Context) ([]checkable.Checkable, error) {
	return s.repo.FindAll(ctx)
}

func (s *checkableServiceImpl) GetByISBN(ctx context.Context, isbn string) (checkable.Checkable, error) {
	c, err := s.repo.FindByISBN(ctx, isbn)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return checkable.Checkable{}, checkableNotFound(isbn)
		}
		return checkable.Checkable{}, err
	}
	return c, nil
}

func (s *checkableServiceImpl) GetByKind(ctx context.Context, kind checkable.Kind) (checkable.Checkable, error) {
	c, err := s.repo.FindByKind(ctx, kind)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return checkable.Checkable{}, errs.Newf(errs.ErrCheckableNotFound, "Checkable of kind: %s was not found", kind)
		}
		return checkable.Checkable{}, err
	}
	return c, nil
}

func (s *checkableServiceImpl) Save(ctx context.Context, c checkable.Checkable) error {
	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.ISBN() == c.ISBN() {
			return checkableExists(c.ISBN())
		}
	}

	if err := s.repo.Save(ctx, c); err != nil {
		// a concurrent save can win between the scan and the insert
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return checkableExists(c.ISBN())
		}
		return err
	}
	return nil
}

func checkableNotFound(isbn string) error {
	return errs.Newf(errs.ErrCheckableNotFound, "Checkable with isbn: %s was not found", isbn)
}

func checkableExists(isbn string) error {
	return errs.Newf(errs.ErrResourceExists, "Checkable with isbn: %s already exists!", isbn)
}
