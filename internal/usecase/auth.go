//go:generate mockgen -source=auth.go -destination=../../tests/mock/usecase/mock_auth.go -package=usecasemock

package usecase

import (
	"context"
	"errors"

	"library-service/internal/domain/staff"
	"library-service/internal/infra"
	"library-service/internal/pkg/errs"
	"library-service/internal/pkg/jwt"
	"library-service/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrTokenGeneration = errors.New("token generation failed")
	ErrTokenValidation = errors.New("token validation failed")
)

type LoginResult struct {
	Token    string
	StaffID  uuid.UUID
	Username string
	Role     staff.Role
}

type AuthUseCase interface {
	Login(ctx context.Context, username, plainPassword string) (*LoginResult, error)
	Register(ctx context.Context, username, plainPassword string, role staff.Role) (*staff.Staff, error)
}

type authUseCaseImpl struct {
	staffRepo  StaffRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(staffRepo StaffRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		staffRepo:  staffRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, username, plainPassword string) (*LoginResult, error) {
	member, err := a.staffRepo.FindByUsername(ctx, username)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(member.PasswordHash(), plainPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(member.ID(), member.Role())
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &LoginResult{
		Token:    token,
		StaffID:  member.ID(),
		Username: member.Username(),
		Role:     member.Role(),
	}, nil
}

// Register is used by the seed command; there is no public sign-up endpoint.
func (a *authUseCaseImpl) Register(ctx context.Context, username, plainPassword string, role staff.Role) (*staff.Staff, error) {
	if err := staff.ValidatePlainPassword(plainPassword); err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(plainPassword)
	if err != nil {
		return nil, err
	}

	member, err := staff.NewStaff(uuid.Nil, username, hash, role)
	if err != nil {
		return nil, err
	}

	if err := a.staffRepo.Save(ctx, member); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Newf(errs.ErrResourceExists, "Staff with username: %s already exists!", member.Username())
		}
		return nil, err
	}
	return member, nil
}
