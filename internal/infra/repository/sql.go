package repository

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers the postgres dialect
	"github.com/doug-martin/goqu/v9/exp"
)

const dialectPostgres = "postgres"

const (
	tableCheckables        = "checkables"
	tableLibraries         = "libraries"
	tableLibraryCheckables = "library_checkables"
	tablePatrons           = "patrons"
	tableLibraryCards      = "library_cards"
	tableCheckouts         = "checkouts"
	tableStaff             = "staff"
)

const (
	colISBN         = "isbn"
	colKind         = "kind"
	colTitle        = "title"
	colAuthor       = "author"
	colMediaType    = "media_type"
	colPosition     = "position"
	colName         = "name"
	colLibraryName  = "library_name"
	colAmount       = "amount"
	colID           = "id"
	colEmail        = "email"
	colPatronID     = "patron_id"
	colCardID       = "card_id"
	colDueDate      = "due_date"
	colUsername     = "username"
	colPasswordHash = "password_hash"
	colRole         = "role"
)

var builder = goqu.Dialect(dialectPostgres)

// qualified returns "table.column" as an identifier.
func qualified(table, column string) exp.IdentifierExpression {
	return goqu.T(table).Col(column)
}
