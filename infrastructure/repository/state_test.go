package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashgreen/infrastructure/storage"
	"github.com/vfg2006/dashgreen/infrastructure/storage/memory"
	"github.com/vfg2006/dashgreen/internal/domain"
)

func newTestRepository() (StateRepository, *memory.Store, Keys) {
	kv := memory.New()
	keys := NewKeys("dashgreen")
	return NewStateRepository(kv, keys), kv, keys
}

func TestNewKeys(t *testing.T) {
	assert.Equal(t, Keys{
		Sales:       "dashgreen_sales",
		Investments: "dashgreen_investments",
		DateFilter:  "dashgreen_date_filter",
		User:        "dashgreen_user",
	}, NewKeys(""))

	assert.Equal(t, "loja_sales", NewKeys("loja").Sales)
}

func TestStateRepositorySales(t *testing.T) {
	repo, kv, keys := newTestRepository()

	_, err := repo.LoadSales()
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	date := time.Date(2024, 1, 10, 3, 0, 0, 0, time.UTC)
	sales := []*domain.Sale{
		{ID: "a", Date: date, Amount: 100, Product: 2, Customer: "Ana", PaymentStatus: domain.Paid},
		{ID: "b", Date: date, Amount: 50, Product: 1, Customer: "Bruno", TrackingCode: "BR1", PaymentStatus: domain.Unpaid},
	}
	require.NoError(t, repo.SaveSales(sales))

	loaded, err := repo.LoadSales()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "a", loaded[0].ID)
	assert.True(t, date.Equal(loaded[0].Date))
	assert.Equal(t, "BR1", loaded[1].TrackingCode)
	assert.Equal(t, domain.Unpaid, loaded[1].PaymentStatus)

	raw, err := kv.Get(keys.Sales)
	require.NoError(t, err)
	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &records))
	require.Len(t, records, 2)
	assert.Equal(t, "paid", records[0]["paymentStatus"])
	assert.NotContains(t, records[0], "trackingCode")
	assert.Equal(t, "BR1", records[1]["trackingCode"])
}

func TestStateRepositoryLeFormatoDoNavegador(t *testing.T) {
	repo, kv, keys := newTestRepository()

	legacy := `[{"id":"0b7f","date":"2024-01-10T03:00:00.000Z","amount":100,"product":2,"customer":"Ana","paymentStatus":"paid"},null]`
	require.NoError(t, kv.Set(keys.Sales, []byte(legacy)))

	loaded, err := repo.LoadSales()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, time.Date(2024, 1, 10, 3, 0, 0, 0, time.UTC), loaded[0].Date.UTC())
	assert.Equal(t, "", loaded[0].TrackingCode)
}

func TestStateRepositoryJSONCorrompido(t *testing.T) {
	repo, kv, keys := newTestRepository()

	require.NoError(t, kv.Set(keys.Sales, []byte(`[{"id":`)))
	require.NoError(t, kv.Set(keys.Investments, []byte(`nao-e-json`)))

	_, err := repo.LoadSales()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrKeyNotFound)

	_, err = repo.LoadInvestments()
	assert.Error(t, err)
}

func TestStateRepositoryInvestments(t *testing.T) {
	repo, _, _ := newTestRepository()

	_, err := repo.LoadInvestments()
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, repo.SaveInvestments(domain.DailyInvestments{"2024-01-10": 40, "2024-01-11": -5}))

	loaded, err := repo.LoadInvestments()
	require.NoError(t, err)
	assert.Equal(t, domain.DailyInvestments{"2024-01-10": 40, "2024-01-11": -5}, loaded)

	require.NoError(t, repo.SaveInvestments(nil))
	loaded, err = repo.LoadInvestments()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStateRepositoryDateFilter(t *testing.T) {
	repo, kv, keys := newTestRepository()

	filter, err := repo.LoadDateFilter()
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	assert.Equal(t, domain.AllDates, filter)

	require.NoError(t, repo.SaveDateFilter(domain.Last7Days))
	raw, err := kv.Get(keys.DateFilter)
	require.NoError(t, err)
	assert.Equal(t, "last7Days", string(raw))

	filter, err = repo.LoadDateFilter()
	require.NoError(t, err)
	assert.Equal(t, domain.Last7Days, filter)

	require.NoError(t, kv.Set(keys.DateFilter, []byte{}))
	filter, err = repo.LoadDateFilter()
	require.NoError(t, err)
	assert.Equal(t, domain.AllDates, filter)
}

func TestSessionRepository(t *testing.T) {
	kv := memory.New()
	repo := NewSessionRepository(kv, NewKeys("dashgreen"))

	_, err := repo.LoadUser()
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, repo.SaveUser(&domain.User{Username: "Guilherme Gomes"}))

	user, err := repo.LoadUser()
	require.NoError(t, err)
	assert.Equal(t, &domain.User{Username: "Guilherme Gomes"}, user)

	require.NoError(t, repo.DeleteUser())
	_, err = repo.LoadUser()
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}
