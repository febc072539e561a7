// Package dashgreen é a porta de entrada do núcleo do painel de vendas
// para interfaces construídas fora deste módulo.
package dashgreen

import (
	"context"

	"github.com/vfg2006/dashgreen/internal/app"
	"github.com/vfg2006/dashgreen/internal/config"
	"github.com/vfg2006/dashgreen/internal/domain"
	"github.com/vfg2006/dashgreen/internal/usecases/filtering"
)

type (
	Config = config.Config
	App    = app.App
	Option = app.Option
	Clock  = filtering.Clock

	Sale          = domain.Sale
	SaleFormData  = domain.SaleFormData
	SaleFormInput = domain.SaleFormInput
	PaymentStatus = domain.PaymentStatus
	DateFilter    = domain.DateFilter
	User          = domain.User

	SaleField        = domain.SaleField
	SaleUpdate       = domain.SaleUpdate
	SetAmount        = domain.SetAmount
	SetProduct       = domain.SetProduct
	SetCustomer      = domain.SetCustomer
	SetTrackingCode  = domain.SetTrackingCode
	SetPaymentStatus = domain.SetPaymentStatus

	DailyInvestments  = domain.DailyInvestments
	DashboardMetrics  = domain.DashboardMetrics
	DailyPoint        = domain.DailyPoint
	Selection         = domain.Selection
	DashboardQuery    = domain.DashboardQuery
	DashboardResponse = domain.DashboardResponse
	ViewKind          = domain.ViewKind
)

const (
	Paid    = domain.Paid
	Pending = domain.Pending
	Unpaid  = domain.Unpaid

	AllDates   = domain.AllDates
	Today      = domain.Today
	Yesterday  = domain.Yesterday
	Last7Days  = domain.Last7Days
	Last30Days = domain.Last30Days

	AmountField        = domain.AmountField
	ProductField       = domain.ProductField
	CustomerField      = domain.CustomerField
	TrackingCodeField  = domain.TrackingCodeField
	PaymentStatusField = domain.PaymentStatusField

	SelectedDateView = domain.SelectedDateView
	AllSalesView     = domain.AllSalesView
	FilteredView     = domain.FilteredView
)

var (
	NewSaleFormData     = domain.NewSaleFormData
	SaleUpdateFromInput = domain.SaleUpdateFromInput
	ParsePaymentStatus  = domain.ParsePaymentStatus
	WithClock           = app.WithClock
	WithStorage         = app.WithStorage
)

// Open monta o painel com a configuração informada; o nível de log vem de cfg.App.LogLevel
func Open(ctx context.Context, cfg *Config, opts ...Option) (*App, error) {
	return app.New(ctx, cfg, opts...)
}

// OpenFromEnv lê .env e variáveis de ambiente e monta o painel
func OpenFromEnv(ctx context.Context, opts ...Option) (*App, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	return app.New(ctx, cfg, opts...)
}
