package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashgreen/infrastructure/storage"
)

func TestStore(t *testing.T) {
	store := New()

	_, err := store.Get("dashgreen_sales")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	value := []byte(`[]`)
	require.NoError(t, store.Set("dashgreen_sales", value))
	value[0] = 'x'

	got, err := store.Get("dashgreen_sales")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	require.NoError(t, store.Delete("dashgreen_sales"))
	require.NoError(t, store.Delete("dashgreen_sales"))

	_, err = store.Get("dashgreen_sales")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}
