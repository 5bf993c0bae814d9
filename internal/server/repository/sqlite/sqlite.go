package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"colorsrest/internal/server/models"
	"colorsrest/internal/server/repository"
)

// Repository is the production store backed by SQLite. It implements both
// repository.ColorsRepository and repository.UserRepository.
type Repository struct {
	db *sql.DB
}

// New opens the database, creates the schema and seeds the default colors
// when the colors table is empty.
func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS colors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nom TEXT NOT NULL,
			rgb TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
	`); err != nil {
		return nil, err
	}
	r := &Repository{db: db}
	if err := r.seed(); err != nil {
		return nil, err
	}
	return r, nil
}

// seed inserts the default palette into an empty table.
func (r *Repository) seed() error {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM colors`).Scan(&n); err != nil {
		return err
	}
	if n != 0 {
		return nil
	}
	for _, c := range []models.Color{
		{Nom: "vermell", Rgb: "#FF0000"},
		{Nom: "verd", Rgb: "#00FF00"},
		{Nom: "blau", Rgb: "#0000FF"},
	} {
		if _, err := r.db.Exec(`INSERT INTO colors(nom, rgb) VALUES(?,?)`, c.Nom, c.Rgb); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) Close() error { return r.db.Close() }

// Colors

func (r *Repository) List(ctx context.Context) ([]models.Color, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, nom, rgb FROM colors ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.Color{}
	for rows.Next() {
		var c models.Color
		if err := rows.Scan(&c.Id, &c.Nom, &c.Rgb); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repository) Get(ctx context.Context, id int) (models.Color, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, nom, rgb FROM colors WHERE id = ?`, id)
	var c models.Color
	if err := row.Scan(&c.Id, &c.Nom, &c.Rgb); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Color{}, repository.ErrNotFound
		}
		return models.Color{}, err
	}
	return c, nil
}

func (r *Repository) GetByName(ctx context.Context, name string) (models.Color, error) {
	// BINARY forces a case-sensitive match regardless of column collation.
	row := r.db.QueryRowContext(ctx, `SELECT id, nom, rgb FROM colors WHERE nom = ? COLLATE BINARY ORDER BY id LIMIT 1`, name)
	var c models.Color
	if err := row.Scan(&c.Id, &c.Nom, &c.Rgb); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Color{}, repository.ErrNotFound
		}
		return models.Color{}, err
	}
	return c, nil
}

func (r *Repository) Add(ctx context.Context, c models.Color) (models.Color, error) {
	if c.Id != 0 {
		return models.Color{}, repository.ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `INSERT INTO colors(nom, rgb) VALUES(?,?)`, c.Nom, c.Rgb)
	if err != nil {
		return models.Color{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Color{}, err
	}
	c.Id = int(id)
	return c, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM colors WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *Repository) Update(_ context.Context, _ models.Color) error {
	return repository.ErrNotSupported
}

// Users

func (r *Repository) CreateUser(ctx context.Context, email, passwordHash string) (models.User, error) {
	u := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO users(id,email,password_hash,created_at) VALUES(?,?,?,?)`,
		u.ID, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.User{}, repository.ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE email = ?`, email)
	var u models.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, repository.ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}
