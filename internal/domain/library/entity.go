package library

import (
	"strings"

	"library-service/internal/domain/checkable"
	"library-service/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxLibraryNameLength = 255

var (
	ErrEmptyLibraryName     = errs.Mark(errs.New("library name cannot be empty"), errs.ErrDomainValidation)
	ErrLibraryNameTooLong   = errs.Mark(errs.New("library name is too long (max 255 characters)"), errs.ErrDomainValidation)
	ErrNegativeAmount       = errs.Mark(errs.New("checkable amount cannot be negative"), errs.ErrDomainValidation)
	ErrMissingCheckable     = errs.Mark(errs.New("checkable is required"), errs.ErrDomainValidation)
	ErrDuplicateCheckable   = errs.Mark(errs.New("library already stocks this checkable"), errs.ErrDomainValidation)
	ErrDuplicateLibraryCard = errs.Mark(errs.New("library card already registered"), errs.ErrDomainValidation)
	ErrConflictingPatron    = errs.Mark(errs.New("patron id already used with different details"), errs.ErrDomainValidation)
)

// CheckableAmount is how many copies of one checkable a library holds.
type CheckableAmount struct {
	checkable checkable.Checkable
	amount    int
}

func NewCheckableAmount(c checkable.Checkable, amount int) (CheckableAmount, error) {
	if c.IsZero() {
		return CheckableAmount{}, ErrMissingCheckable
	}
	if amount < 0 {
		return CheckableAmount{}, ErrNegativeAmount
	}
	return CheckableAmount{checkable: c, amount: amount}, nil
}

func (a CheckableAmount) Checkable() checkable.Checkable { return a.checkable }
func (a CheckableAmount) Amount() int                    { return a.amount }
func (a CheckableAmount) ISBN() string                   { return a.checkable.ISBN() }

func (a CheckableAmount) Equal(other CheckableAmount) bool { return a == other }

type Library struct {
	name       string
	checkables []CheckableAmount
	cards      []LibraryCard
}

func NewLibrary(name string) (*Library, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyLibraryName
	}
	if len(name) > MaxLibraryNameLength {
		return nil, ErrLibraryNameTooLong
	}
	return &Library{name: name}, nil
}

// AddCheckable keeps at most one entry per isbn.
func (l *Library) AddCheckable(amount CheckableAmount) error {
	if _, ok := l.AmountOf(amount.ISBN()); ok {
		return ErrDuplicateCheckable
	}
	l.checkables = append(l.checkables, amount)
	return nil
}

// AddCard rejects a reused card id, a checkout id already on another card,
// and a patron id already registered with different details.
func (l *Library) AddCard(card LibraryCard) error {
	for _, existing := range l.cards {
		if existing.ID() == card.ID() {
			return ErrDuplicateLibraryCard
		}
		if existing.patron.id == card.patron.id && existing.patron != card.patron {
			return ErrConflictingPatron
		}
		for _, co := range card.checkouts {
			if existing.hasCheckout(co.ID()) {
				return ErrDuplicateCheckout
			}
		}
	}
	l.cards = append(l.cards, card)
	return nil
}

// Patrons lists each distinct patron once, in card order.
func (l *Library) Patrons() []Patron {
	seen := make(map[uuid.UUID]struct{}, len(l.cards))
	out := make([]Patron, 0, len(l.cards))
	for _, c := range l.cards {
		if _, ok := seen[c.patron.id]; ok {
			continue
		}
		seen[c.patron.id] = struct{}{}
		out = append(out, c.patron)
	}
	return out
}

// WithPatrons returns a clone whose cards carry the patron details found in
// current. Patrons missing from current are left as they are.
func (l *Library) WithPatrons(current map[uuid.UUID]Patron) *Library {
	out := l.Clone()
	for i, c := range out.cards {
		if p, ok := current[c.patron.id]; ok {
			out.cards[i].patron = p
		}
	}
	return out
}

// AmountOf returns the stocked entry for isbn, if any.
func (l *Library) AmountOf(isbn string) (CheckableAmount, bool) {
	for _, a := range l.checkables {
		if a.ISBN() == isbn {
			return a, true
		}
	}
	return CheckableAmount{}, false
}

func (l *Library) Name() string { return l.name }

func (l *Library) Checkables() []CheckableAmount {
	out := make([]CheckableAmount, len(l.checkables))
	copy(out, l.checkables)
	return out
}

func (l *Library) Cards() []LibraryCard {
	out := make([]LibraryCard, len(l.cards))
	copy(out, l.cards)
	return out
}

func (l *Library) CardByID(id uuid.UUID) (LibraryCard, bool) {
	for _, c := range l.cards {
		if c.ID() == id {
			return c, true
		}
	}
	return LibraryCard{}, false
}

// Clone returns a library that shares no slices with l.
func (l *Library) Clone() *Library {
	return &Library{
		name:       l.name,
		checkables: l.Checkables(),
		cards:      l.Cards(),
	}
}

func (l *Library) Equal(o *Library) bool {
	if l == nil || o == nil {
		return l == o
	}
	if l.name != o.name || len(l.checkables) != len(o.checkables) || len(l.cards) != len(o.cards) {
		return false
	}
	for i := range l.checkables {
		if l.checkables[i] != o.checkables[i] {
			return false
		}
	}
	for i := range l.cards {
		if !l.cards[i].Equal(o.cards[i]) {
			return false
		}
	}
	return true
}
