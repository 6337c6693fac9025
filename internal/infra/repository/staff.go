package repository

import (
	"context"

	"library-service/internal/domain/staff"
	"library-service/internal/infra"
	"library-service/internal/infra/db"
	"library-service/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type StaffRepository struct {
	db db.DBTX
}

func NewStaffRepository(dbtx db.DBTX) *StaffRepository {
	return &StaffRepository{db: dbtx}
}

func (r *StaffRepository) FindByUsername(ctx context.Context, username string) (*staff.Staff, error) {
	query, args, err := builder.
		From(tableStaff).
		Select(colID, colUsername, colPasswordHash, colRole).
		Where(goqu.Ex{colUsername: username}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build staff query", err)
	}

	var (
		id                   uuid.UUID
		name, hash, roleText string
	)
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id, &name, &hash, &roleText); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff by username", err)
	}

	member, err := staff.NewStaff(id, name, hash, staff.Role(roleText))
	if err != nil {
		return nil, infra.WrapRepoErr("stored staff is invalid", err)
	}
	return member, nil
}

func (r *StaffRepository) Save(ctx context.Context, s *staff.Staff) error {
	query, args, err := builder.
		Insert(tableStaff).
		Rows(goqu.Record{
			colID:           s.ID(),
			colUsername:     s.Username(),
			colPasswordHash: s.PasswordHash(),
			colRole:         s.Role().String(),
		}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build staff insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("staff already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert staff", err)
	}
	return nil
}
