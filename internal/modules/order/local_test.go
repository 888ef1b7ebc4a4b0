package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eambler/cabracurado-backend/internal/localstore"
	"github.com/eambler/cabracurado-backend/internal/modules/client"
)

func newLocalRepo(t *testing.T) (Repository, *localstore.Store) {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	return NewLocalRepository(store), store
}

func TestLocalCreateNumbersFrom1001(t *testing.T) {
	repo, _ := newLocalRepo(t)
	ctx := context.Background()

	first := &Order{Number: "CC-1111", Status: StatusPending, Items: []*Item{{ProductID: 1, Quantity: 1}}}
	require.NoError(t, repo.Create(ctx, first))
	second := &Order{Number: "CC-2222", Status: StatusPending}
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, int64(1001), first.ID)
	assert.Equal(t, int64(1002), second.ID)
	assert.Equal(t, first.ID, first.Items[0].OrderID)
}

func TestLocalGetByIDAttachesClientName(t *testing.T) {
	repo, store := newLocalRepo(t)
	ctx := context.Background()

	require.NoError(t, store.Save(client.Collection, []*client.Client{
		{ID: 7, Email: "ana@example.cl", Name: "Ana"},
	}))

	known := &Order{ClientID: 7, Number: "CC-1111", Status: StatusPending}
	require.NoError(t, repo.Create(ctx, known))
	orphan := &Order{ClientID: 404, Number: "CC-2222", Status: StatusPending}
	require.NoError(t, repo.Create(ctx, orphan))

	got, err := repo.GetByID(ctx, known.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.ClientName)

	got, err = repo.GetByID(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anonimo", got.ClientName)
}

func TestLocalUpdateStatus(t *testing.T) {
	repo, _ := newLocalRepo(t)
	ctx := context.Background()

	o := &Order{Number: "CC-1111", Status: StatusPending}
	require.NoError(t, repo.Create(ctx, o))

	require.NoError(t, repo.UpdateStatus(ctx, o.ID, StatusCompleted))
	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, 404, StatusCompleted), ErrNotFound)
}
