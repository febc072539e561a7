package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectValueQuery(t *testing.T) {
	query, args, err := selectValueQuery("dashgreen_sales")
	require.NoError(t, err)

	assert.Equal(t, "SELECT record_value FROM app_state WHERE record_key = $1", query)
	assert.Equal(t, []interface{}{"dashgreen_sales"}, args)
}

func TestUpsertValueQuery(t *testing.T) {
	value := []byte(`{"2024-01-10":40}`)

	query, args, err := upsertValueQuery("dashgreen_investments", value)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO app_state")
	assert.Contains(t, query, "$1")
	assert.Contains(t, query, "$2")
	assert.Contains(t, query, "ON CONFLICT (record_key) DO UPDATE SET")
	assert.Equal(t, []interface{}{"dashgreen_investments", value}, args)
}

func TestDeleteValueQuery(t *testing.T) {
	query, args, err := deleteValueQuery("dashgreen_user")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM app_state WHERE record_key = $1", query)
	assert.Equal(t, []interface{}{"dashgreen_user"}, args)
}
