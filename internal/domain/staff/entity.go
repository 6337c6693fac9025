package staff

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidUsername   = errors.New("username must be 3-64 characters of letters, digits, '.', '_' or '-'")
	ErrInvalidRole       = errors.New("invalid role")
	ErrEmptyPasswordHash = errors.New("password hash cannot be empty")
	ErrPasswordTooWeak   = errors.New("password must be at least 8 characters long")
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._\-]{3,64}$`)

// Staff is a library employee allowed to change the catalogue.
type Staff struct {
	id           uuid.UUID
	username     string
	passwordHash string
	role         Role
}

func NewStaff(id uuid.UUID, username, passwordHash string, role Role) (*Staff, error) {
	username = strings.TrimSpace(username)
	if !usernameRegex.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	if passwordHash == "" {
		return nil, ErrEmptyPasswordHash
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Staff{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
	}, nil
}

func (s *Staff) ID() uuid.UUID        { return s.id }
func (s *Staff) Username() string     { return s.username }
func (s *Staff) PasswordHash() string { return s.passwordHash }
func (s *Staff) Role() Role           { return s.role }

// ValidatePlainPassword checks a password before it is hashed.
func ValidatePlainPassword(p string) error {
	if len(p) < 8 {
		return ErrPasswordTooWeak
	}
	return nil
}
