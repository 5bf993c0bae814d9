package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorsrest/internal/server/identity"
	"colorsrest/internal/server/models"
	"colorsrest/internal/server/repository"
	"colorsrest/internal/server/repository/memory"
	"colorsrest/internal/server/token"
)

func newTestServices() (*Services, *memory.Repository) {
	repo := memory.New()
	tokens := token.New(token.Config{Key: "test-key", Issuer: "colorsrest", ExpireDays: 30})
	return NewServices(repo, identity.New(repo), tokens), repo
}

func TestRegisterAutoLogin(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	raw, err := svcs.Auth.Register(ctx, "user@example.com", "Secret123!")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := svcs.Auth.VerifyToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Subject)
	assert.NotEmpty(t, claims.UserID)
}

func TestLoginIssuesToken(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	_, err := svcs.Auth.Register(ctx, "user@example.com", "Secret123!")
	require.NoError(t, err)

	raw, err := svcs.Auth.Login(ctx, "user@example.com", "Secret123!")
	require.NoError(t, err)

	claims, err := svcs.Auth.VerifyToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Subject)
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	_, err := svcs.Auth.Register(ctx, "user@example.com", "Secret123!")
	require.NoError(t, err)

	_, wrongPassword := svcs.Auth.Login(ctx, "user@example.com", "Wrong123!")
	_, unknownEmail := svcs.Auth.Login(ctx, "nobody@example.com", "Secret123!")
	assert.ErrorIs(t, wrongPassword, identity.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, identity.ErrInvalidCredentials)
}

func TestGetByNameReturnsFirstMatch(t *testing.T) {
	svcs, repo := newTestServices()
	ctx := context.Background()

	repo.Seed(
		models.Color{Nom: "vermell", Rgb: "#FF0000"},
		models.Color{Nom: "vermell", Rgb: "#EE0000"},
	)

	got, err := svcs.Colors.GetByName(ctx, "vermell")
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", got.Rgb, "first match by id order wins")

	// exact, case-sensitive match only
	_, err = svcs.Colors.GetByName(ctx, "Vermell")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAddValidatesBeforeStore(t *testing.T) {
	svcs, repo := newTestServices()
	ctx := context.Background()

	_, err := svcs.Colors.Add(ctx, models.Color{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields["Nom"], models.NomRequiredError)
	assert.Contains(t, verr.Fields["Rgb"], models.RgbRequiredError)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "invalid candidate must never reach the store")
}

func TestAddStoresValidColor(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	created, err := svcs.Colors.Add(ctx, models.Color{Nom: "magenta", Rgb: "#FF00FF"})
	require.NoError(t, err)
	assert.NotZero(t, created.Id)

	got, err := svcs.Colors.Get(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "magenta", got.Nom)
	assert.Equal(t, "#FF00FF", got.Rgb)
}

func TestAddWithClientIdIsStoreConflict(t *testing.T) {
	svcs, _ := newTestServices()

	_, err := svcs.Colors.Add(context.Background(), models.Color{Id: 25, Nom: "fail", Rgb: "#CACACA"})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestDeleteReportsExistenceOnly(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	created, err := svcs.Colors.Add(ctx, models.Color{Nom: "groc", Rgb: "#FFFF00"})
	require.NoError(t, err)

	existed, err := svcs.Colors.Delete(ctx, created.Id)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = svcs.Colors.Delete(ctx, 99999)
	require.NoError(t, err)
	assert.False(t, existed)
}
