package password

import (
	"library-service/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errs.New("password hashing failed")
	ErrComparisonFailed = errs.New("password comparison failed")
	ErrInvalidPassword  = errs.New("invalid password")
)

const (
	DefaultCost = bcrypt.DefaultCost
	// MaxLength is bcrypt's input limit in bytes; longer input is rejected, not truncated.
	MaxLength = 72
)

func HashPassword(plain string) (string, error) {
	return HashPasswordWithCost(plain, DefaultCost)
}

// HashPasswordWithCost lets tests trade strength for speed.
func HashPasswordWithCost(plain string, cost int) (string, error) {
	if plain == "" || len(plain) > MaxLength {
		return "", ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "bcrypt"), ErrHashingFailed)
	}
	return string(hashed), nil
}

// ComparePassword returns ErrComparisonFailed for a wrong password and
// ErrInvalidPassword when either side is empty.
func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return errs.Wrap(err, "compare password hash")
	}
}
