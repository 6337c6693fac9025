package repository

import (
	"context"

	"library-service/internal/domain/checkable"
	"library-service/internal/infra"
	"library-service/internal/infra/db"
	"library-service/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CheckableRepository struct {
	db db.DBTX
}

func NewCheckableRepository(dbtx db.DBTX) *CheckableRepository {
	return &CheckableRepository{db: dbtx}
}

func checkableSelect() *goqu.SelectDataset {
	return builder.
		From(tableCheckables).
		Select(colISBN, colKind, colTitle, colAuthor, colMediaType).
		Order(goqu.I(colPosition).Asc()).
		Prepared(true)
}

func (r *CheckableRepository) FindAll(ctx context.Context) ([]checkable.Checkable, error) {
	query, args, err := checkableSelect().ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build checkable query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list checkables", err)
	}
	defer rows.Close()

	result := make([]checkable.Checkable, 0)
	for rows.Next() {
		c, err := scanCheckable(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate checkables", err)
	}
	return result, nil
}

func (r *CheckableRepository) FindByISBN(ctx context.Context, isbn string) (checkable.Checkable, error) {
	query, args, err := checkableSelect().Where(goqu.Ex{colISBN: isbn}).ToSQL()
	if err != nil {
		return checkable.Checkable{}, infra.WrapRepoErr("failed to build checkable query", err)
	}
	return r.findOne(ctx, query, args, "checkable not found")
}

func (r *CheckableRepository) FindByKind(ctx context.Context, kind checkable.Kind) (checkable.Checkable, error) {
	query, args, err := checkableSelect().Where(goqu.Ex{colKind: kind.String()}).Limit(1).ToSQL()
	if err != nil {
		return checkable.Checkable{}, infra.WrapRepoErr("failed to build checkable query", err)
	}
	return r.findOne(ctx, query, args, "no checkable of kind")
}

func (r *CheckableRepository) findOne(ctx context.Context, query string, args []any, notFoundMsg string) (checkable.Checkable, error) {
	c, err := scanCheckable(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return checkable.Checkable{}, infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
		}
		return checkable.Checkable{}, err
	}
	return c, nil
}

// Save inserts c unless its isbn is already taken.
func (r *CheckableRepository) Save(ctx context.Context, c checkable.Checkable) error {
	query, args, err := builder.
		Insert(tableCheckables).
		Rows(goqu.Record{
			colISBN:      c.ISBN(),
			colKind:      c.Kind().String(),
			colTitle:     c.Title(),
			colAuthor:    pgconv.OptionalText(c.Author()),
			colMediaType: pgconv.OptionalText(c.MediaType().String()),
		}).
		OnConflict(goqu.DoNothing()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build checkable insert", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to insert checkable", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("checkable already exists", nil, infra.KindDuplicateKey)
	}
	return nil
}

func scanCheckable(row pgx.Row) (checkable.Checkable, error) {
	var (
		isbn, kind, title string
		author, mediaType pgtype.Text
	)
	if err := row.Scan(&isbn, &kind, &title, &author, &mediaType); err != nil {
		if pgconv.IsNoRows(err) {
			return checkable.Checkable{}, err
		}
		return checkable.Checkable{}, infra.WrapRepoErr("failed to scan checkable", err)
	}
	return toCheckable(isbn, kind, title, author, mediaType)
}

func toCheckable(isbn, kind, title string, author, mediaType pgtype.Text) (checkable.Checkable, error) {
	c, err := checkable.New(
		checkable.Kind(kind),
		isbn,
		title,
		pgconv.StringFromPgtype(author),
		checkable.MediaType(pgconv.StringFromPgtype(mediaType)),
	)
	if err != nil {
		return checkable.Checkable{}, infra.WrapRepoErr("stored checkable is invalid", err)
	}
	return c, nil
}
