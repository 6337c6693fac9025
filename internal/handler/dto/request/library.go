package request

import (
	"context"
	"time"

	"library-service/internal/domain/checkable"
	"library-service/internal/domain/library"

	"github.com/google/uuid"
)

type CreateLibraryRequest struct {
	Name       string                   `yaml:"name" json:"name" binding:"required,max=255"`
	Checkables []CheckableAmountRequest `yaml:"checkables" json:"checkables" binding:"omitempty,dive"`
	Cards      []LibraryCardRequest     `yaml:"cards" json:"cards" binding:"omitempty,dive"`
}

type CheckableAmountRequest struct {
	ISBN   string `yaml:"isbn" json:"isbn" binding:"required,max=64"`
	Amount *int   `yaml:"amount" json:"amount" binding:"required,min=0"`
}

type LibraryCardRequest struct {
	ID        *uuid.UUID        `yaml:"id,omitempty" json:"id,omitempty"`
	Patron    PatronRequest     `yaml:"patron" json:"patron" binding:"required"`
	Checkouts []CheckoutRequest `yaml:"checkouts" json:"checkouts" binding:"omitempty,dive"`
}

type PatronRequest struct {
	ID    *uuid.UUID `yaml:"id,omitempty" json:"id,omitempty"`
	Name  string     `yaml:"name" json:"name" binding:"required,max=255"`
	Email string     `yaml:"email,omitempty" json:"email,omitempty" binding:"omitempty,email"`
}

type CheckoutRequest struct {
	ID      *uuid.UUID `yaml:"id,omitempty" json:"id,omitempty"`
	ISBN    string     `yaml:"isbn" json:"isbn" binding:"required,max=64"`
	DueDate time.Time  `yaml:"due_date" json:"due_date" binding:"required"`
}

// CheckableResolver looks a catalogue entry up by isbn.
type CheckableResolver func(ctx context.Context, isbn string) (checkable.Checkable, error)

// ToDomain builds the aggregate, resolving every referenced isbn through resolve.
func (r *CreateLibraryRequest) ToDomain(ctx context.Context, resolve CheckableResolver) (*library.Library, error) {
	lib, err := library.NewLibrary(r.Name)
	if err != nil {
		return nil, err
	}

	for _, a := range r.Checkables {
		c, err := resolve(ctx, a.ISBN)
		if err != nil {
			return nil, err
		}
		n := 0
		if a.Amount != nil {
			n = *a.Amount
		}
		amount, err := library.NewCheckableAmount(c, n)
		if err != nil {
			return nil, err
		}
		if err := lib.AddCheckable(amount); err != nil {
			return nil, err
		}
	}

	for _, cr := range r.Cards {
		patron, err := library.NewPatron(idOrNil(cr.Patron.ID), cr.Patron.Name, cr.Patron.Email)
		if err != nil {
			return nil, err
		}

		checkouts := make([]library.Checkout, 0, len(cr.Checkouts))
		for _, co := range cr.Checkouts {
			c, err := resolve(ctx, co.ISBN)
			if err != nil {
				return nil, err
			}
			checkout, err := library.NewCheckout(idOrNil(co.ID), c, co.DueDate)
			if err != nil {
				return nil, err
			}
			checkouts = append(checkouts, checkout)
		}

		card, err := library.NewLibraryCard(idOrNil(cr.ID), patron, checkouts...)
		if err != nil {
			return nil, err
		}
		if err := lib.AddCard(card); err != nil {
			return nil, err
		}
	}

	return lib, nil
}

func idOrNil(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}
