//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"library-service/internal/domain/checkable"
	"library-service/internal/domain/library"
	reqdto "library-service/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stock struct {
	checkable checkable.Checkable
	amount    int
}

type card struct {
	id        uuid.UUID
	patron    library.Patron
	checkouts []library.Checkout
}

type LibraryBuilder struct {
	name   string
	stock  []stock
	cards  []card
	errors []error
}

func NewLibraryBuilder(name string) *LibraryBuilder {
	return &LibraryBuilder{name: name}
}

func (b *LibraryBuilder) WithStock(c checkable.Checkable, amount int) *LibraryBuilder {
	b.stock = append(b.stock, stock{checkable: c, amount: amount})
	return b
}

// WithCard adds a card for a new patron holding one checkout per due date, all of c.
func (b *LibraryBuilder) WithCard(patronName string, c checkable.Checkable, dueDates ...time.Time) *LibraryBuilder {
	patron, err := library.NewPatron(uuid.Nil, patronName, "")
	if err != nil {
		b.errors = append(b.errors, err)
		return b
	}
	cd := card{id: uuid.New(), patron: patron}
	for _, due := range dueDates {
		co, err := library.NewCheckout(uuid.Nil, c, due)
		if err != nil {
			b.errors = append(b.errors, err)
			continue
		}
		cd.checkouts = append(cd.checkouts, co)
	}
	b.cards = append(b.cards, cd)
	return b
}

func (b *LibraryBuilder) Build(t *testing.T) *library.Library {
	t.Helper()
	require.Empty(t, b.errors)

	lib, err := library.NewLibrary(b.name)
	require.NoError(t, err)
	for _, s := range b.stock {
		amount, err := library.NewCheckableAmount(s.checkable, s.amount)
		require.NoError(t, err)
		require.NoError(t, lib.AddCheckable(amount))
	}
	for _, cd := range b.cards {
		lc, err := library.NewLibraryCard(cd.id, cd.patron, cd.checkouts...)
		require.NoError(t, err)
		require.NoError(t, lib.AddCard(lc))
	}
	return lib
}

// BuildDTO renders the library as a create payload with the ids kept.
func (b *LibraryBuilder) BuildDTO() reqdto.CreateLibraryRequest {
	req := reqdto.CreateLibraryRequest{Name: b.name}
	for _, s := range b.stock {
		amount := s.amount
		req.Checkables = append(req.Checkables, reqdto.CheckableAmountRequest{ISBN: s.checkable.ISBN(), Amount: &amount})
	}
	for _, cd := range b.cards {
		cardID := cd.id
		patronID := cd.patron.ID()
		cr := reqdto.LibraryCardRequest{
			ID:     &cardID,
			Patron: reqdto.PatronRequest{ID: &patronID, Name: cd.patron.Name(), Email: cd.patron.Email()},
		}
		for _, co := range cd.checkouts {
			coID := co.ID()
			cr.Checkouts = append(cr.Checkouts, reqdto.CheckoutRequest{ID: &coID, ISBN: co.Checkable().ISBN(), DueDate: co.DueDate()})
		}
		req.Cards = append(req.Cards, cr)
	}
	return req
}
