package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashgreen/infrastructure/storage/file"
	"github.com/vfg2006/dashgreen/infrastructure/storage/memory"
	"github.com/vfg2006/dashgreen/internal/config"
	"github.com/vfg2006/dashgreen/internal/domain"
	"github.com/vfg2006/dashgreen/pkg/log"
)

var brt = time.FixedZone("BRT", -3*60*60)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	log.SilenceForTests()
	os.Exit(m.Run())
}

func testConfig(driver, path string) *config.Config {
	return &config.Config{
		App: config.App{
			LogLevel:       "debug",
			SaleIDStrategy: "nanoid",
			Location:       brt,
		},
		Storage: config.Storage{
			Driver:    driver,
			Path:      path,
			KeyPrefix: "dashgreen",
		},
		Auth: config.Auth{Username: "Guilherme Gomes", Password: "1701215"},
	}
}

func fixedClock() time.Time {
	return time.Date(2024, 1, 10, 12, 0, 0, 0, brt)
}

func TestNewComArmazenamentoEmMemoria(t *testing.T) {
	app, err := New(context.Background(), testConfig(config.MemoryDriver, ""), WithClock(fixedClock))
	require.NoError(t, err)
	defer app.Close()

	assert.IsType(t, &memory.Store{}, app.Storage())

	sale := app.Store.AddSale(domain.SaleFormData{
		Amount:        100,
		Product:       2,
		Customer:      "Ana",
		Date:          time.Date(2024, 1, 10, 9, 0, 0, 0, brt),
		PaymentStatus: domain.Paid,
	})
	assert.Len(t, sale.ID, 16)

	app.Store.UpdateDailyInvestment("2024-01-10", 40)
	dashboard := app.Insights.GetDashboard(app.Insights.SelectDate(fixedClock()))

	assert.Equal(t, 150.0, dashboard.Metrics.ROI)
	assert.True(t, app.Session.Login("Guilherme Gomes", "1701215"))
}

func TestNewComArmazenamentoEmArquivoMantemEstado(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(config.FileDriver, dir)

	first, err := New(context.Background(), cfg, WithClock(fixedClock))
	require.NoError(t, err)
	first.Store.AddSale(domain.SaleFormData{Amount: 10, Product: 1, Customer: "Ana", Date: fixedClock(), PaymentStatus: domain.Pending})
	first.Store.SetDateFilter(domain.Today)
	require.NoError(t, first.Close())

	second, err := New(context.Background(), cfg, WithClock(fixedClock))
	require.NoError(t, err)

	assert.IsType(t, &file.Store{}, second.Storage())
	assert.Len(t, second.Store.Sales(), 1)
	assert.Equal(t, domain.Today, second.Store.DateFilter())
	assert.FileExists(t, filepath.Join(dir, "dashgreen_sales.json"))
}

func TestNewComStorageInjetado(t *testing.T) {
	kv := memory.New()

	app, err := New(context.Background(), testConfig(config.PostgresDriver, ""), WithStorage(kv))
	require.NoError(t, err)

	app.Store.UpdateDailyInvestment("2024-01-10", 40)

	_, err = kv.Get("dashgreen_investments")
	assert.NoError(t, err)
}

func TestOpenStorageDriverInvalido(t *testing.T) {
	_, _, err := OpenStorage(context.Background(), testConfig("redis", ""))

	assert.Error(t, err)
}

func TestNewSemConfiguracao(t *testing.T) {
	_, err := New(context.Background(), nil)

	assert.Error(t, err)
}

func TestNewConfiguraNivelDeLog(t *testing.T) {
	defer logrus.SetLevel(logrus.DebugLevel)

	cfg := testConfig(config.MemoryDriver, "")
	cfg.App.LogLevel = "warn"

	_, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	// Nível vazio não altera o logger
	cfg.App.LogLevel = ""
	_, err = New(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}
