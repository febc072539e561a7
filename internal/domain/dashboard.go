package domain

import "time"

// ViewKind identifica o cabeçalho da tabela de vendas
type ViewKind string

const (
	SelectedDateView ViewKind = "selected_date"
	AllSalesView     ViewKind = "all"
	FilteredView     ViewKind = "filtered"
)

// Selection é o recorte de período ativo: um dia escolhido ou um filtro nomeado
type Selection struct {
	Date   *time.Time
	Filter DateFilter
}

// DashboardQuery é o estado de tela que não é persistido
type DashboardQuery struct {
	SelectedDate *time.Time
	Search       string
}

type DashboardResponse struct {
	View           ViewKind          `json:"view"`
	Selection      Selection         `json:"selection"`
	DisplayedSales []*Sale           `json:"displayed_sales"`
	TableSales     []*Sale           `json:"table_sales"`
	Metrics        *DashboardMetrics `json:"metrics"`
	DailySeries    []*DailyPoint     `json:"daily_series"`
}
