// Package memory provides an in-memory store used as a test double for the
// sqlite repository. It implements the same contracts with the same sentinel
// errors so handlers and services can be exercised without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"colorsrest/internal/server/models"
	"colorsrest/internal/server/repository"
)

type Repository struct {
	mu     sync.Mutex
	nextID int
	colors map[int]models.Color
	users  map[string]models.User
}

func New() *Repository {
	return &Repository{
		nextID: 1,
		colors: map[int]models.Color{},
		users:  map[string]models.User{},
	}
}

// Seed inserts colors directly, assigning ids, bypassing the Add conflict
// rule. Test setup only.
func (r *Repository) Seed(colors ...models.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range colors {
		c.Id = r.nextID
		r.nextID++
		r.colors[c.Id] = c
	}
}

func (r *Repository) List(_ context.Context) ([]models.Color, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Color, 0, len(r.colors))
	for _, c := range r.colors {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

func (r *Repository) Get(_ context.Context, id int) (models.Color, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.colors[id]
	if !ok {
		return models.Color{}, repository.ErrNotFound
	}
	return c, nil
}

func (r *Repository) GetByName(_ context.Context, name string) (models.Color, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int, 0, len(r.colors))
	for id := range r.colors {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if r.colors[id].Nom == name {
			return r.colors[id], nil
		}
	}
	return models.Color{}, repository.ErrNotFound
}

func (r *Repository) Add(_ context.Context, c models.Color) (models.Color, error) {
	if c.Id != 0 {
		return models.Color{}, repository.ErrConflict
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c.Id = r.nextID
	r.nextID++
	r.colors[c.Id] = c
	return c, nil
}

func (r *Repository) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.colors[id]; !ok {
		return false, nil
	}
	delete(r.colors, id)
	return true, nil
}

func (r *Repository) Update(_ context.Context, _ models.Color) error {
	return repository.ErrNotSupported
}

func (r *Repository) CreateUser(_ context.Context, email, passwordHash string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[email]; ok {
		return models.User{}, repository.ErrDuplicateEmail
	}
	u := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.users[email] = u
	return u, nil
}

func (r *Repository) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}
