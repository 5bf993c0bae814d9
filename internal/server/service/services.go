package service

import (
	"context"

	"colorsrest/internal/server/models"
	"colorsrest/internal/server/repository"
	"colorsrest/internal/server/token"
)

// CredentialStore is the identity collaborator contract: it owns password
// policy, hashing and account records. Production implementation is
// identity.Service.
type CredentialStore interface {
	Register(ctx context.Context, email, password string) (models.User, error)
	Verify(ctx context.Context, email, password string) (models.User, error)
}

// ValidationError carries the accumulated field violations of a rejected
// Color candidate.
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string { return "validation failed" }

type Services struct {
	Auth   *AuthService
	Colors *ColorsService
}

func NewServices(colors repository.ColorsRepository, creds CredentialStore, tokens *token.Manager) *Services {
	return &Services{
		Auth:   &AuthService{creds: creds, tokens: tokens},
		Colors: &ColorsService{repo: colors},
	}
}

// AuthService implements the credential flow: register with auto-login,
// login, and stateless token verification for the middleware.
type AuthService struct {
	creds  CredentialStore
	tokens *token.Manager
}

// Register creates the account and immediately issues a token, so a fresh
// registration is already authenticated.
func (a *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	u, err := a.creds.Register(ctx, email, password)
	if err != nil {
		return "", err
	}
	return a.tokens.Issue(u.Email, u.ID)
}

// Login verifies the credentials and issues a token. The failure is the
// collaborator's generic one whether the email or the password was wrong.
func (a *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := a.creds.Verify(ctx, email, password)
	if err != nil {
		return "", err
	}
	return a.tokens.Issue(u.Email, u.ID)
}

func (a *AuthService) VerifyToken(raw string) (token.Claims, error) {
	return a.tokens.Verify(raw)
}

// ColorsService orchestrates validation and the color store.
type ColorsService struct {
	repo repository.ColorsRepository
}

func (s *ColorsService) List(ctx context.Context) ([]models.Color, error) {
	return s.repo.List(ctx)
}

func (s *ColorsService) Get(ctx context.Context, id int) (models.Color, error) {
	return s.repo.Get(ctx, id)
}

func (s *ColorsService) GetByName(ctx context.Context, name string) (models.Color, error) {
	return s.repo.GetByName(ctx, name)
}

// Add validates the candidate before touching the store. A client-supplied
// Id is not a field rule; the store rejects it with repository.ErrConflict.
func (s *ColorsService) Add(ctx context.Context, c models.Color) (models.Color, error) {
	if fields := c.Validate(); fields != nil {
		return models.Color{}, &ValidationError{Fields: fields}
	}
	return s.repo.Add(ctx, c)
}

// Delete reports whether a record existed; a miss is not an error.
func (s *ColorsService) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.Delete(ctx, id)
}
