package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewStore_EmptyDirRejected(t *testing.T) {
	_, err := NewStore("")
	assert.Error(t, err)
}

func TestCartRepository_RoundTrip(t *testing.T) {
	repo := NewCartRepository(newTestStore(t))
	ctx := context.Background()

	cart := entity.NewCart()
	require.NoError(t, cart.AddItem(1, "Urea 50kg", 100.0, 10, "Green Agro", ""))
	require.NoError(t, cart.AddItem(2, "DAP 25kg", 50.0, 11, "Kumar Fertilizers", ""))

	require.NoError(t, repo.Save(ctx, cart))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)
	assert.Equal(t, cart.Items, loaded.Items)
}

func TestCartRepository_MissingFileIsNotFound(t *testing.T) {
	repo := NewCartRepository(newTestStore(t))

	_, err := repo.Load(context.Background())

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCartRepository_CorruptFileIsNotFound(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cart.json"), []byte("{not json"), 0o600))

	repo := NewCartRepository(store)
	_, err = repo.Load(context.Background())

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCartRepository_DeleteIsIdempotent(t *testing.T) {
	repo := NewCartRepository(newTestStore(t))
	ctx := context.Background()

	cart := entity.NewCart()
	require.NoError(t, cart.AddItem(1, "Urea 50kg", 100.0, 10, "Green Agro", ""))
	require.NoError(t, repo.Save(ctx, cart))

	assert.NoError(t, repo.Delete(ctx))
	assert.NoError(t, repo.Delete(ctx))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCartRepository_SaveOverwrites(t *testing.T) {
	repo := NewCartRepository(newTestStore(t))
	ctx := context.Background()

	first := entity.NewCart()
	require.NoError(t, first.AddItem(1, "Urea 50kg", 100.0, 10, "Green Agro", ""))
	require.NoError(t, repo.Save(ctx, first))

	second := entity.NewCart()
	require.NoError(t, second.AddItem(2, "DAP 25kg", 50.0, 11, "Kumar Fertilizers", ""))
	require.NoError(t, repo.Save(ctx, second))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, int64(2), loaded.Items[0].InventoryID)
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	repo := NewSessionRepository(newTestStore(t))
	ctx := context.Background()

	session := &entity.Session{AccessToken: "tok-123", Role: entity.RoleShopOwner}
	require.NoError(t, repo.Save(ctx, session))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", loaded.AccessToken)
	assert.Equal(t, entity.RoleShopOwner, loaded.Role)
}

func TestSessionRepository_EmptyTokenRejectedOnSave(t *testing.T) {
	repo := NewSessionRepository(newTestStore(t))

	assert.Error(t, repo.Save(context.Background(), &entity.Session{Role: entity.RoleFarmer}))
	assert.Error(t, repo.Save(context.Background(), nil))
}

func TestSessionRepository_DeleteLogsOut(t *testing.T) {
	repo := NewSessionRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Session{AccessToken: "tok", Role: entity.RoleFarmer}))
	require.NoError(t, repo.Delete(ctx))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
