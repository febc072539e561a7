package domain

// DashboardMetrics são os indicadores exibidos no topo do painel
type DashboardMetrics struct {
	TotalSales      float64 `json:"total_sales"`
	PaidSales       float64 `json:"paid_sales"`
	TotalCustomers  int     `json:"total_customers"`
	TotalProducts   int     `json:"total_products"`
	TotalInvestment float64 `json:"total_investment"`
	Profit          float64 `json:"profit"`
	ROI             float64 `json:"roi"`
}

// CalculateDashboardMetrics agrega as vendas realizadas (não pagas ficam de fora)
// e calcula o ROI sobre o investimento do período
func CalculateDashboardMetrics(sales []*Sale, totalInvestment float64) *DashboardMetrics {
	metrics := &DashboardMetrics{
		TotalInvestment: totalInvestment,
	}

	customers := make(map[string]struct{})
	for _, sale := range sales {
		if sale == nil || !sale.Realized() {
			continue
		}

		metrics.TotalSales += sale.Amount
		metrics.TotalProducts += sale.Product
		customers[sale.Customer] = struct{}{}

		if sale.PaymentStatus == Paid {
			metrics.PaidSales += sale.Amount
		}
	}

	metrics.TotalCustomers = len(customers)
	metrics.Profit = metrics.TotalSales - totalInvestment
	metrics.ROI = CalculateROI(metrics.TotalSales, totalInvestment)

	return metrics
}

// CalculateROI retorna o retorno percentual; investimento não positivo resulta em 0
func CalculateROI(totalSales, totalInvestment float64) float64 {
	if totalInvestment <= 0 {
		return 0
	}
	return ((totalSales - totalInvestment) / totalInvestment) * 100
}

// DailyPoint é um ponto do gráfico diário de vendas
type DailyPoint struct {
	Date       string  `json:"date"`
	Sales      float64 `json:"sales"`
	Investment float64 `json:"investment"`
	Profit     float64 `json:"profit"`
}
