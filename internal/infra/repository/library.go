package repository

import (
	"context"
	"time"

	"library-service/internal/domain/library"
	"library-service/internal/infra"
	"library-service/internal/infra/db"
	"library-service/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type LibraryRepository struct {
	pool db.Pool
}

func NewLibraryRepository(pool db.Pool) *LibraryRepository {
	return &LibraryRepository{pool: pool}
}

func (r *LibraryRepository) FindAll(ctx context.Context) ([]*library.Library, error) {
	return r.load(ctx, nil)
}

func (r *LibraryRepository) FindByName(ctx context.Context, name string) (*library.Library, error) {
	libs, err := r.load(ctx, &name)
	if err != nil {
		return nil, err
	}
	if len(libs) == 0 {
		return nil, infra.WrapRepoErr("library not found", nil, infra.KindNotFound)
	}
	return libs[0], nil
}

// Save writes the whole aggregate in one transaction. The library name is
// claimed first so a concurrent save of the same name fails as a duplicate.
func (r *LibraryRepository) Save(ctx context.Context, lib *library.Library) error {
	return db.RunInTx(ctx, r.pool, func(ctx context.Context, tx db.DBTX) error {
		claimed, err := insertLibrary(ctx, tx, lib.Name())
		if err != nil {
			return err
		}
		if !claimed {
			return infra.WrapRepoErr("library already exists", nil, infra.KindDuplicateKey)
		}

		if err := insertLibraryCheckables(ctx, tx, lib); err != nil {
			return err
		}
		return insertCards(ctx, tx, lib)
	})
}

func insertLibrary(ctx context.Context, tx db.DBTX, name string) (bool, error) {
	query, args, err := builder.
		Insert(tableLibraries).
		Rows(goqu.Record{colName: name}).
		OnConflict(goqu.DoNothing()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build library insert", err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert library", err)
	}
	return tag.RowsAffected() == 1, nil
}

func insertLibraryCheckables(ctx context.Context, tx db.DBTX, lib *library.Library) error {
	amounts := lib.Checkables()
	if len(amounts) == 0 {
		return nil
	}

	rows := make([]any, 0, len(amounts))
	for i, a := range amounts {
		rows = append(rows, goqu.Record{
			colLibraryName: lib.Name(),
			colISBN:        a.ISBN(),
			colAmount:      a.Amount(),
			colPosition:    i,
		})
	}
	return execInsert(ctx, tx, builder.Insert(tableLibraryCheckables).Rows(rows...), "library checkables")
}

func insertCards(ctx context.Context, tx db.DBTX, lib *library.Library) error {
	cards := lib.Cards()
	if len(cards) == 0 {
		return nil
	}

	cardRows := make([]any, 0, len(cards))
	checkoutRows := make([]any, 0)
	for i, card := range cards {
		p := card.Patron()
		cardRows = append(cardRows, goqu.Record{
			colID:          card.ID(),
			colLibraryName: lib.Name(),
			colPatronID:    p.ID(),
			colPosition:    i,
		})
		for j, co := range card.Checkouts() {
			checkoutRows = append(checkoutRows, goqu.Record{
				colID:       co.ID(),
				colCardID:   card.ID(),
				colISBN:     co.Checkable().ISBN(),
				colDueDate:  co.DueDate(),
				colPosition: j,
			})
		}
	}

	// one row per patron id; ON CONFLICT DO UPDATE may touch a row only once
	distinct := lib.Patrons()
	patrons := make([]any, 0, len(distinct))
	for _, p := range distinct {
		patrons = append(patrons, goqu.Record{
			colID:    p.ID(),
			colName:  p.Name(),
			colEmail: pgconv.OptionalText(p.Email()),
		})
	}

	// a patron may hold cards in several libraries; the latest details win
	upsertPatrons := builder.Insert(tablePatrons).Rows(patrons...).OnConflict(
		goqu.DoUpdate(colID, goqu.Record{
			colName:  goqu.I("excluded." + colName),
			colEmail: goqu.I("excluded." + colEmail),
		}),
	)
	if err := execInsert(ctx, tx, upsertPatrons, "patrons"); err != nil {
		return err
	}
	if err := execInsert(ctx, tx, builder.Insert(tableLibraryCards).Rows(cardRows...), "library cards"); err != nil {
		return err
	}
	if len(checkoutRows) == 0 {
		return nil
	}
	return execInsert(ctx, tx, builder.Insert(tableCheckouts).Rows(checkoutRows...), "checkouts")
}

func execInsert(ctx context.Context, tx db.DBTX, ds *goqu.InsertDataset, what string) error {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build insert for "+what, err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		switch {
		case pgconv.IsForeignKeyViolation(err):
			return infra.WrapRepoErr("failed to insert "+what, err, infra.KindForeignKeyViolated)
		case pgconv.IsUniqueViolation(err):
			return infra.WrapRepoErr(what+" id already in use", err, infra.KindIDInUse)
		}
		return infra.WrapRepoErr("failed to insert "+what, err)
	}
	return nil
}

// load assembles libraries (optionally one by name) from four ordered queries.
func (r *LibraryRepository) load(ctx context.Context, name *string) ([]*library.Library, error) {
	libs, byName, err := r.loadLibraries(ctx, name)
	if err != nil || len(libs) == 0 {
		return libs, err
	}

	if err := r.loadCheckables(ctx, name, byName); err != nil {
		return nil, err
	}

	checkouts, err := r.loadCheckouts(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := r.loadCards(ctx, name, byName, checkouts); err != nil {
		return nil, err
	}
	return libs, nil
}

func scopeByLibrary(table string, name *string) []exp.Expression {
	if name == nil {
		return nil
	}
	return []exp.Expression{qualified(table, colLibraryName).Eq(*name)}
}

func (r *LibraryRepository) loadLibraries(ctx context.Context, name *string) ([]*library.Library, map[string]*library.Library, error) {
	ds := builder.From(tableLibraries).Select(colName).Order(goqu.I(colPosition).Asc()).Prepared(true)
	if name != nil {
		ds = ds.Where(goqu.Ex{colName: *name})
	}
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to build library query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to list libraries", err)
	}
	defer rows.Close()

	libs := make([]*library.Library, 0)
	byName := make(map[string]*library.Library)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, nil, infra.WrapRepoErr("failed to scan library", err)
		}
		lib, err := library.NewLibrary(n)
		if err != nil {
			return nil, nil, infra.WrapRepoErr("stored library is invalid", err)
		}
		libs = append(libs, lib)
		byName[n] = lib
	}
	if err := rows.Err(); err != nil {
		return nil, nil, infra.WrapRepoErr("failed to iterate libraries", err)
	}
	return libs, byName, nil
}

func (r *LibraryRepository) loadCheckables(ctx context.Context, name *string, byName map[string]*library.Library) error {
	query, args, err := builder.
		From(tableLibraryCheckables).
		InnerJoin(goqu.T(tableCheckables), goqu.On(qualified(tableLibraryCheckables, colISBN).Eq(qualified(tableCheckables, colISBN)))).
		Select(
			qualified(tableLibraryCheckables, colLibraryName),
			qualified(tableLibraryCheckables, colAmount),
			qualified(tableCheckables, colISBN),
			qualified(tableCheckables, colKind),
			qualified(tableCheckables, colTitle),
			qualified(tableCheckables, colAuthor),
			qualified(tableCheckables, colMediaType),
		).
		Where(scopeByLibrary(tableLibraryCheckables, name)...).
		Order(qualified(tableLibraryCheckables, colLibraryName).Asc(), qualified(tableLibraryCheckables, colPosition).Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build library checkables query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to load library checkables", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			libName, isbn, kind, title string
			amount                     int
			author, mediaType          pgtype.Text
		)
		if err := rows.Scan(&libName, &amount, &isbn, &kind, &title, &author, &mediaType); err != nil {
			return infra.WrapRepoErr("failed to scan library checkable", err)
		}
		c, err := toCheckable(isbn, kind, title, author, mediaType)
		if err != nil {
			return err
		}
		a, err := library.NewCheckableAmount(c, amount)
		if err != nil {
			return infra.WrapRepoErr("stored checkable amount is invalid", err)
		}
		if lib, ok := byName[libName]; ok {
			if err := lib.AddCheckable(a); err != nil {
				return infra.WrapRepoErr("stored library is inconsistent", err)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate library checkables", err)
	}
	return nil
}

func (r *LibraryRepository) loadCheckouts(ctx context.Context, name *string) (map[uuid.UUID][]library.Checkout, error) {
	query, args, err := builder.
		From(tableCheckouts).
		InnerJoin(goqu.T(tableLibraryCards), goqu.On(qualified(tableCheckouts, colCardID).Eq(qualified(tableLibraryCards, colID)))).
		InnerJoin(goqu.T(tableCheckables), goqu.On(qualified(tableCheckouts, colISBN).Eq(qualified(tableCheckables, colISBN)))).
		Select(
			qualified(tableCheckouts, colID),
			qualified(tableCheckouts, colCardID),
			qualified(tableCheckouts, colDueDate),
			qualified(tableCheckables, colISBN),
			qualified(tableCheckables, colKind),
			qualified(tableCheckables, colTitle),
			qualified(tableCheckables, colAuthor),
			qualified(tableCheckables, colMediaType),
		).
		Where(scopeByLibrary(tableLibraryCards, name)...).
		Order(qualified(tableCheckouts, colCardID).Asc(), qualified(tableCheckouts, colPosition).Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build checkouts query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load checkouts", err)
	}
	defer rows.Close()

	byCard := make(map[uuid.UUID][]library.Checkout)
	for rows.Next() {
		var (
			id, cardID        uuid.UUID
			dueDate           time.Time
			isbn, kind, title string
			author, mediaType pgtype.Text
		)
		if err := rows.Scan(&id, &cardID, &dueDate, &isbn, &kind, &title, &author, &mediaType); err != nil {
			return nil, infra.WrapRepoErr("failed to scan checkout", err)
		}
		c, err := toCheckable(isbn, kind, title, author, mediaType)
		if err != nil {
			return nil, err
		}
		co, err := library.NewCheckout(id, c, dueDate)
		if err != nil {
			return nil, infra.WrapRepoErr("stored checkout is invalid", err)
		}
		byCard[cardID] = append(byCard[cardID], co)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate checkouts", err)
	}
	return byCard, nil
}

func (r *LibraryRepository) loadCards(ctx context.Context, name *string, byName map[string]*library.Library, checkouts map[uuid.UUID][]library.Checkout) error {
	query, args, err := builder.
		From(tableLibraryCards).
		InnerJoin(goqu.T(tablePatrons), goqu.On(qualified(tableLibraryCards, colPatronID).Eq(qualified(tablePatrons, colID)))).
		Select(
			qualified(tableLibraryCards, colID),
			qualified(tableLibraryCards, colLibraryName),
			qualified(tablePatrons, colID),
			qualified(tablePatrons, colName),
			qualified(tablePatrons, colEmail),
		).
		Where(scopeByLibrary(tableLibraryCards, name)...).
		Order(qualified(tableLibraryCards, colLibraryName).Asc(), qualified(tableLibraryCards, colPosition).Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build library cards query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to load library cards", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cardID, patronID    uuid.UUID
			libName, patronName string
			email               pgtype.Text
		)
		if err := rows.Scan(&cardID, &libName, &patronID, &patronName, &email); err != nil {
			return infra.WrapRepoErr("failed to scan library card", err)
		}
		patron, err := library.NewPatron(patronID, patronName, pgconv.StringFromPgtype(email))
		if err != nil {
			return infra.WrapRepoErr("stored patron is invalid", err)
		}
		card, err := library.NewLibraryCard(cardID, patron, checkouts[cardID]...)
		if err != nil {
			return infra.WrapRepoErr("stored library card is invalid", err)
		}
		if lib, ok := byName[libName]; ok {
			if err := lib.AddCard(card); err != nil {
				return infra.WrapRepoErr("stored library is inconsistent", err)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate library cards", err)
	}
	return nil
}
