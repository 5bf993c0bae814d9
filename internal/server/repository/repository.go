package repository

import (
	"context"

	"colorsrest/internal/server/models"
)

// ColorsRepository is the persistence contract for Color records. One
// production implementation (sqlite) and one in-memory test double exist;
// handlers and services depend only on this interface.
type ColorsRepository interface {
	// List returns every color. An empty store yields an empty slice, not an
	// error.
	List(ctx context.Context) ([]models.Color, error)
	// Get returns the color with the given id or ErrNotFound.
	Get(ctx context.Context, id int) (models.Color, error)
	// GetByName returns the first color whose Nom matches exactly
	// (case-sensitive) or ErrNotFound.
	GetByName(ctx context.Context, name string) (models.Color, error)
	// Add persists the color and assigns its Id. A non-zero Id on the input
	// is rejected with ErrConflict.
	Add(ctx context.Context, c models.Color) (models.Color, error)
	// Delete removes the color with the given id. It reports whether a
	// record existed; a miss is not an error.
	Delete(ctx context.Context, id int) (bool, error)
	// Update is declared for contract completeness and always returns
	// ErrNotSupported.
	Update(ctx context.Context, c models.Color) error
}

// UserRepository is the persistence contract for credential records.
type UserRepository interface {
	// CreateUser stores a new credential record. A duplicate email is
	// rejected with ErrDuplicateEmail.
	CreateUser(ctx context.Context, email, passwordHash string) (models.User, error)
	// GetUserByEmail returns the credential record for email or ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}
