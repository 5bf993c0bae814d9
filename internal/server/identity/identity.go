// Package identity is the credential collaborator: it owns password policy,
// hashing and the account records. Callers only send email+password and get
// back success or failure plus a stable user id.
package identity

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"colorsrest/internal/server/models"
	"colorsrest/internal/server/passhash"
	"colorsrest/internal/server/repository"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike, so a caller cannot tell which part failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

const minPasswordLength = 6

// PolicyError accumulates every password policy rule the candidate violated.
type PolicyError struct {
	Violations []string
}

func (e *PolicyError) Error() string {
	return strings.Join(e.Violations, " ")
}

// Service verifies and creates accounts against a user repository.
type Service struct {
	users repository.UserRepository
}

func New(users repository.UserRepository) *Service {
	return &Service{users: users}
}

// checkPolicy applies the password strength rules: minimum length, mixed
// case, at least one digit and one non-alphanumeric character.
func checkPolicy(password string) error {
	var violations []string
	if len(password) < minPasswordLength {
		violations = append(violations, "Passwords must be at least 6 characters.")
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if !lower {
		violations = append(violations, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if !upper {
		violations = append(violations, "Passwords must have at least one uppercase ('A'-'Z').")
	}
	if !digit {
		violations = append(violations, "Passwords must have at least one digit ('0'-'9').")
	}
	if !symbol {
		violations = append(violations, "Passwords must have at least one non alphanumeric character.")
	}
	if len(violations) > 0 {
		return &PolicyError{Violations: violations}
	}
	return nil
}

// Register creates a new account. It fails with a PolicyError when the
// password is too weak and with repository.ErrDuplicateEmail when the email
// already has an account.
func (s *Service) Register(ctx context.Context, email, password string) (models.User, error) {
	if email == "" {
		return models.User{}, errors.New("email required")
	}
	if err := checkPolicy(password); err != nil {
		return models.User{}, err
	}
	phc, err := passhash.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	return s.users.CreateUser(ctx, email, phc)
}

// Verify checks email+password against the stored hash. Any failure is
// reported as ErrInvalidCredentials.
func (s *Service) Verify(ctx context.Context, email, password string) (models.User, error) {
	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	ok, err := passhash.VerifyPassword(u.PasswordHash, password)
	if err != nil || !ok {
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}
