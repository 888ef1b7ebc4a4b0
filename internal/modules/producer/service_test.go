package producer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eambler/cabracurado-backend/internal/localstore"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	return NewService(NewLocalRepository(store))
}

func TestCreateDefaultsToActive(t *testing.T) {
	s := newTestService(t)

	p, err := s.CreateProducer(context.Background(), CreateProducerRequest{
		Name:      "Lacteos del Sur",
		Location:  "Osorno",
		Specialty: "Queso de cabra",
	})
	require.NoError(t, err)
	assert.True(t, p.Active)
	assert.NotZero(t, p.ID)
}

func TestCreateRequiresName(t *testing.T) {
	s := newTestService(t)
	_, err := s.CreateProducer(context.Background(), CreateProducerRequest{Location: "Osorno"})
	assert.Error(t, err)
}

func TestListFiltersByActive(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	inactive := false
	_, err := s.CreateProducer(ctx, CreateProducerRequest{Name: "Activo"})
	require.NoError(t, err)
	_, err = s.CreateProducer(ctx, CreateProducerRequest{Name: "Retirado", Active: &inactive})
	require.NoError(t, err)

	active := true
	got, err := s.ListProducers(ctx, &active)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Activo", got[0].Name)

	all, err := s.ListProducers(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateAppliesOnlySetFields(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	p, err := s.CreateProducer(ctx, CreateProducerRequest{Name: "Lacteos del Sur", Location: "Osorno"})
	require.NoError(t, err)

	location := "Valdivia"
	updated, err := s.UpdateProducer(ctx, p.ID, Patch{Location: &location})
	require.NoError(t, err)
	assert.Equal(t, "Valdivia", updated.Location)
	assert.Equal(t, "Lacteos del Sur", updated.Name)
}

func TestUpdateNotFound(t *testing.T) {
	s := newTestService(t)
	name := "nuevo"
	_, err := s.UpdateProducer(context.Background(), 404, Patch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteThenGet(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	p, err := s.CreateProducer(ctx, CreateProducerRequest{Name: "Lacteos del Sur"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProducer(ctx, p.ID))
	_, err = s.GetProducer(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
