package subscription

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eambler/cabracurado-backend/internal/localstore"
	"github.com/eambler/cabracurado-backend/internal/modules/client"
)

func newTestService(t *testing.T) (Service, *localstore.Store) {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	clients := client.NewService(client.NewLocalRepository(store))
	return NewService(NewLocalRepository(store), clients), store
}

func TestSubscribeCreatesActiveSubscription(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	pack, err := s.CreatePack(ctx, CreatePackRequest{Name: "Caja mensual"})
	require.NoError(t, err)
	assert.True(t, pack.Active)

	sub, err := s.Subscribe(ctx, SubscribeRequest{
		Email:  "ana@example.cl",
		Name:   "Ana",
		PackID: pack.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusActive, sub.Status)
	assert.NotZero(t, sub.ClientID)
	assert.False(t, sub.StartDate.IsZero())
}

func TestSubscribeUnknownPack(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Subscribe(context.Background(), SubscribeRequest{
		Email:  "ana@example.cl",
		PackID: 404,
	})
	assert.ErrorIs(t, err, ErrPackNotFound)
}

func TestSubscribeRequiresEmail(t *testing.T) {
	s, _ := newTestService(t)
	_, err := s.Subscribe(context.Background(), SubscribeRequest{PackID: 1})
	assert.Error(t, err)
}

func TestSubscribeReusesExistingClient(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	pack, err := s.CreatePack(ctx, CreatePackRequest{Name: "Caja mensual"})
	require.NoError(t, err)

	first, err := s.Subscribe(ctx, SubscribeRequest{Email: "ana@example.cl", Name: "Ana", PackID: pack.ID})
	require.NoError(t, err)
	second, err := s.Subscribe(ctx, SubscribeRequest{Email: "ana@example.cl", Name: "Ana", PackID: pack.ID})
	require.NoError(t, err)
	assert.Equal(t, first.ClientID, second.ClientID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestListSubscribersJoinsClientAndPack(t *testing.T) {
	s, store := newTestService(t)
	ctx := context.Background()

	pack, err := s.CreatePack(ctx, CreatePackRequest{Name: "Caja premium"})
	require.NoError(t, err)

	_, err = s.Subscribe(ctx, SubscribeRequest{Email: "ana@example.cl", Name: "Ana", PackID: pack.ID})
	require.NoError(t, err)

	// A subscription whose references no longer resolve falls back to
	// placeholder values.
	repo := NewLocalRepository(store)
	require.NoError(t, repo.CreateSubscription(ctx, &Subscription{ClientID: 404, PackID: 404, Status: StatusActive}))

	subscribers, err := s.ListSubscribers(ctx)
	require.NoError(t, err)
	require.Len(t, subscribers, 2)

	assert.Equal(t, "Ana", subscribers[0].Name)
	assert.Equal(t, "ana@example.cl", subscribers[0].Email)
	assert.Equal(t, "Caja premium", subscribers[0].Plan)

	assert.Equal(t, "Unknown", subscribers[1].Name)
	assert.Equal(t, "N/A", subscribers[1].Email)
	assert.Equal(t, "N/A", subscribers[1].Plan)
}

func TestPackLifecycle(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	pack, err := s.CreatePack(ctx, CreatePackRequest{Name: "Caja mensual"})
	require.NoError(t, err)

	name := "Caja quincenal"
	inactive := false
	updated, err := s.UpdatePack(ctx, pack.ID, PackPatch{Name: &name, Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Caja quincenal", updated.Name)
	assert.False(t, updated.Active)

	active := true
	onlyActive, err := s.ListPacks(ctx, &active)
	require.NoError(t, err)
	assert.Empty(t, onlyActive)

	require.NoError(t, s.DeletePack(ctx, pack.ID))
	all, err := s.ListPacks(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}
