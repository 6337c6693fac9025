package readmodel

import (
	"library-service/internal/domain/library"
)

// LibraryAvailableCheckouts is one library that can lend a checkable right now.
type LibraryAvailableCheckouts struct {
	Amount      int
	LibraryName string
}

type OverdueCheckout struct {
	Patron   library.Patron
	Checkout library.Checkout
}
