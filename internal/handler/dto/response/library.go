package response

import (
	"time"

	"library-service/internal/domain/library"
	"library-service/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CheckableAmountResponse struct {
	Checkable CheckableResponse `json:"checkable"`
	Amount    int               `json:"amount"`
}

type PatronResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
}

type CheckoutResponse struct {
	ID        uuid.UUID         `json:"id"`
	Checkable CheckableResponse `json:"checkable"`
	DueDate   time.Time         `json:"due_date"`
}

type LibraryCardResponse struct {
	ID        uuid.UUID          `json:"id"`
	Patron    PatronResponse     `json:"patron"`
	Checkouts []CheckoutResponse `json:"checkouts"`
}

type LibraryResponse struct {
	Name       string                    `json:"name"`
	Checkables []CheckableAmountResponse `json:"checkables"`
	Cards      []LibraryCardResponse     `json:"cards"`
}

type LibraryAvailabilityResponse struct {
	LibraryName string `json:"library_name"`
	Amount      int    `json:"amount"`
}

type OverdueCheckoutResponse struct {
	Patron   PatronResponse   `json:"patron"`
	Checkout CheckoutResponse `json:"checkout"`
}

func FromCheckableAmount(a library.CheckableAmount) CheckableAmountResponse {
	return CheckableAmountResponse{Checkable: FromCheckable(a.Checkable()), Amount: a.Amount()}
}

func FromPatron(p library.Patron) PatronResponse {
	return PatronResponse{ID: p.ID(), Name: p.Name(), Email: p.Email()}
}

func FromCheckout(co library.Checkout) CheckoutResponse {
	return CheckoutResponse{ID: co.ID(), Checkable: FromCheckable(co.Checkable()), DueDate: co.DueDate()}
}

func FromLibrary(lib *library.Library) LibraryResponse {
	res := LibraryResponse{
		Name:       lib.Name(),
		Checkables: make([]CheckableAmountResponse, 0),
		Cards:      make([]LibraryCardResponse, 0),
	}
	for _, a := range lib.Checkables() {
		res.Checkables = append(res.Checkables, FromCheckableAmount(a))
	}
	for _, card := range lib.Cards() {
		cr := LibraryCardResponse{
			ID:        card.ID(),
			Patron:    FromPatron(card.Patron()),
			Checkouts: make([]CheckoutResponse, 0),
		}
		for _, co := range card.Checkouts() {
			cr.Checkouts = append(cr.Checkouts, FromCheckout(co))
		}
		res.Cards = append(res.Cards, cr)
	}
	return res
}

func FromLibraries(libs []*library.Library) []LibraryResponse {
	res := make([]LibraryResponse, len(libs))
	for i, lib := range libs {
		res[i] = FromLibrary(lib)
	}
	return res
}

// FromAvailability copies the read model field by field; the shapes match.
func FromAvailability(items []readmodel.LibraryAvailableCheckouts) ([]LibraryAvailabilityResponse, error) {
	res := make([]LibraryAvailabilityResponse, 0, len(items))
	if err := copier.Copy(&res, &items); err != nil {
		return nil, err
	}
	return res, nil
}

func FromOverdueCheckouts(items []readmodel.OverdueCheckout) []OverdueCheckoutResponse {
	res := make([]OverdueCheckoutResponse, len(items))
	for i, it := range items {
		res[i] = OverdueCheckoutResponse{Patron: FromPatron(it.Patron), Checkout: FromCheckout(it.Checkout)}
	}
	return res
}
