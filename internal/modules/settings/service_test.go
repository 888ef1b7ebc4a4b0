package settings

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

func TestSetOverwrites(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "whatsapp", "+56911111111"))
	require.NoError(t, s.Set(ctx, "whatsapp", "+56922222222"))

	got, err := s.Get(ctx, "whatsapp")
	require.NoError(t, err)
	assert.Equal(t, "+56922222222", got)
}

func TestGetUnsetKey(t *testing.T) {
	s := newTestService(t)

	_, err := s.Get(context.Background(), "instagram_url")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAllFillsUnsetWithEmpty(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "instagram_url", "https://instagram.com/cabracurado"))

	values, err := s.GetAll(ctx, KnownKeys)
	require.NoError(t, err)
	assert.Len(t, values, len(KnownKeys))
	assert.Equal(t, "https://instagram.com/cabracurado", values["instagram_url"])
	assert.Equal(t, "", values["mp_access_token"])
}

func TestSetAll(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.SetAll(ctx, map[string]string{
		"compra_minima":  "15000",
		"email_contacto": "hola@cabracurado.cl",
	}))

	got, err := s.Get(ctx, "compra_minima")
	require.NoError(t, err)
	assert.Equal(t, "15000", got)
}

func TestSetRejectsEmptyKey(t *testing.T) {
	s := newTestService(t)
	assert.Error(t, s.Set(context.Background(), "", "value"))
}
