package library

import (
	"net/mail"
	"strings"
	"time"

	"library-service/internal/domain/checkable"
	"library-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyPatronName   = errs.Mark(errs.New("patron name cannot be empty"), errs.ErrDomainValidation)
	ErrInvalidEmail      = errs.Mark(errs.New("invalid patron email"), errs.ErrDomainValidation)
	ErrMissingDueDate    = errs.Mark(errs.New("checkout requires a due date"), errs.ErrDomainValidation)
	ErrDuplicateCheckout = errs.Mark(errs.New("checkout already recorded"), errs.ErrDomainValidation)
)

type Patron struct {
	id    uuid.UUID
	name  string
	email string
}

// NewPatron assigns a fresh id when id is uuid.Nil. Email is optional.
func NewPatron(id uuid.UUID, name, email string) (Patron, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Patron{}, ErrEmptyPatronName
	}
	email = strings.TrimSpace(email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return Patron{}, ErrInvalidEmail
		}
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return Patron{id: id, name: name, email: email}, nil
}

func (p Patron) ID() uuid.UUID       { return p.id }
func (p Patron) Name() string        { return p.name }
func (p Patron) Email() string       { return p.email }
func (p Patron) IsZero() bool        { return p == Patron{} }
func (p Patron) Equal(o Patron) bool { return p == o }

type Checkout struct {
	id        uuid.UUID
	checkable checkable.Checkable
	dueDate   time.Time
}

func NewCheckout(id uuid.UUID, c checkable.Checkable, dueDate time.Time) (Checkout, error) {
	if c.IsZero() {
		return Checkout{}, ErrMissingCheckable
	}
	if dueDate.IsZero() {
		return Checkout{}, ErrMissingDueDate
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return Checkout{id: id, checkable: c, dueDate: dueDate}, nil
}

func (c Checkout) ID() uuid.UUID                  { return c.id }
func (c Checkout) Checkable() checkable.Checkable { return c.checkable }
func (c Checkout) DueDate() time.Time             { return c.dueDate }

// IsOverdueAt is strict: a checkout due exactly at now is not overdue.
func (c Checkout) IsOverdueAt(now time.Time) bool {
	return c.dueDate.Before(now)
}

func (c Checkout) Equal(o Checkout) bool {
	return c.id == o.id && c.checkable == o.checkable && c.dueDate.Equal(o.dueDate)
}

type LibraryCard struct {
	id        uuid.UUID
	patron    Patron
	checkouts []Checkout
}

func NewLibraryCard(id uuid.UUID, patron Patron, checkouts ...Checkout) (LibraryCard, error) {
	if patron.IsZero() {
		return LibraryCard{}, ErrEmptyPatronName
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	card := LibraryCard{id: id, patron: patron}
	for _, co := range checkouts {
		for _, existing := range card.checkouts {
			if existing.ID() == co.ID() {
				return LibraryCard{}, ErrDuplicateCheckout
			}
		}
		card.checkouts = append(card.checkouts, co)
	}
	return card, nil
}

func (c LibraryCard) ID() uuid.UUID  { return c.id }
func (c LibraryCard) Patron() Patron { return c.patron }

func (c LibraryCard) Checkouts() []Checkout {
	out := make([]Checkout, len(c.checkouts))
	copy(out, c.checkouts)
	return out
}

func (c LibraryCard) hasCheckout(id uuid.UUID) bool {
	for _, co := range c.checkouts {
		if co.id == id {
			return true
		}
	}
	return false
}

func (c LibraryCard) Equal(o LibraryCard) bool {
	if c.id != o.id || c.patron != o.patron || len(c.checkouts) != len(o.checkouts) {
		return false
	}
	for i := range c.checkouts {
		if !c.checkouts[i].Equal(o.checkouts[i]) {
			return false
		}
	}
	return true
}
