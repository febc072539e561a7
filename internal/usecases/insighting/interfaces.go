package insighting

import (
	"time"

	"github.com/vfg2006/dashgreen/internal/domain"
)

// Insighter define a interface para os indicadores do painel
type Insighter interface {
	// Metrics calcula os indicadores das vendas exibidas com o investimento do período
	Metrics(sales []*domain.Sale, selection domain.Selection) *domain.DashboardMetrics

	// PeriodInvestment resolve o investimento total do recorte ativo
	PeriodInvestment(selection domain.Selection, displayed []*domain.Sale) float64

	// GetDashboard monta a visão completa do painel para o estado de tela informado
	GetDashboard(query domain.DashboardQuery) *domain.DashboardResponse

	// SelectDate fixa um dia no painel e volta o filtro nomeado para "all"
	SelectDate(date time.Time) domain.DashboardQuery

	// DailySeries agrupa as vendas por dia para o gráfico
	DailySeries(sales []*domain.Sale) []*domain.DailyPoint
}
