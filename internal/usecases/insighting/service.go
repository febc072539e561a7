package insighting

import (
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/dashgreen/internal/domain"
	"github.com/vfg2006/dashgreen/internal/usecases/filtering"
	"github.com/vfg2006/dashgreen/internal/usecases/selling"
	"github.com/vfg2006/dashgreen/pkg/log"
)

var _ Insighter = (*Service)(nil)

// Service lê a loja de vendas e calcula os indicadores; nunca altera o estado,
// exceto em SelectDate
type Service struct {
	store   selling.SalesStore
	filters *filtering.Engine
	logger  log.Logger
}

// NewService cria uma nova instância do serviço de insights
func NewService(store selling.SalesStore, filters *filtering.Engine) *Service {
	if filters == nil {
		filters = filtering.NewEngine(nil, nil)
	}

	return &Service{
		store:   store,
		filters: filters,
		logger:  log.ForComponent("metrics_engine"),
	}
}

func (s *Service) Metrics(sales []*domain.Sale, selection domain.Selection) *domain.DashboardMetrics {
	return domain.CalculateDashboardMetrics(sales, s.PeriodInvestment(selection, sales))
}

// PeriodInvestment segue três regras, nesta ordem:
// dia selecionado usa o investimento daquele dia;
// filtro nomeado soma todos os dias do calendário desde o corte até hoje;
// "all" (ou token desconhecido) soma os dias que possuem vendas exibidas.
func (s *Service) PeriodInvestment(selection domain.Selection, displayed []*domain.Sale) float64 {
	if selection.Date != nil {
		return s.store.GetDailyInvestment(s.filters.DateKey(*selection.Date))
	}

	if cutoff, ok := s.filters.Cutoff(selection.Filter); ok {
		now := s.filters.Now()

		var total float64
		for _, date := range generateDateRange(&cutoff, &now) {
			total += s.store.GetDailyInvestment(s.filters.DateKey(date))
		}
		return total
	}

	// Dias sem vendas exibidas ficam de fora mesmo que tenham investimento
	seen := make(map[string]struct{})
	var total float64
	for _, sale := range displayed {
		if sale == nil {
			continue
		}
		key := s.filters.DateKey(sale.Date)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		total += s.store.GetDailyInvestment(key)
	}

	return total
}

func (s *Service) GetDashboard(query domain.DashboardQuery) *domain.DashboardResponse {
	selection := domain.Selection{
		Date:   query.SelectedDate,
		Filter: s.store.DateFilter(),
	}

	displayed := s.displayedSales(selection)
	response := &domain.DashboardResponse{
		View:           viewKind(selection),
		Selection:      selection,
		DisplayedSales: displayed,
		TableSales:     searchByCustomer(displayed, query.Search),
		Metrics:        s.Metrics(displayed, selection),
		DailySeries:    s.DailySeries(displayed),
	}

	s.logger.WithFields(log.Fields{
		"view":      response.View,
		"displayed": len(response.DisplayedSales),
		"table":     len(response.TableSales),
	}).Debug("Painel calculado")

	return response
}

func (s *Service) SelectDate(date time.Time) domain.DashboardQuery {
	s.store.SetDateFilter(domain.AllDates)

	selected := filtering.StartOfDay(date, s.filters.Location())
	s.logger.WithField(log.DateKeyField, s.filters.DateKey(selected)).Debug("Dia selecionado no painel")

	return domain.DashboardQuery{SelectedDate: &selected}
}

// DailySeries soma as vendas de cada dia (inclusive não pagas) e cruza com o investimento diário
func (s *Service) DailySeries(sales []*domain.Sale) []*domain.DailyPoint {
	points := make(map[string]*domain.DailyPoint)
	for _, sale := range sales {
		if sale == nil {
			continue
		}

		key := s.filters.DateKey(sale.Date)
		point, ok := points[key]
		if !ok {
			point = &domain.DailyPoint{
				Date:       key,
				Investment: s.store.GetDailyInvestment(key),
			}
			points[key] = point
		}
		point.Sales += sale.Amount
	}

	series := make([]*domain.DailyPoint, 0, len(points))
	for _, point := range points {
		point.Profit = point.Sales - point.Investment
		series = append(series, point)
	}

	// Chaves YYYY-MM-DD ordenam cronologicamente como texto
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	return series
}

func (s *Service) displayedSales(selection domain.Selection) []*domain.Sale {
	filtered := s.store.FilteredSales()
	if selection.Date == nil {
		return filtered
	}

	displayed := make([]*domain.Sale, 0, len(filtered))
	for _, sale := range filtered {
		if filtering.SameDay(sale.Date, *selection.Date, s.filters.Location()) {
			displayed = append(displayed, sale)
		}
	}
	return displayed
}

func viewKind(selection domain.Selection) domain.ViewKind {
	switch {
	case selection.Date != nil:
		return domain.SelectedDateView
	case selection.Filter == domain.AllDates:
		return domain.AllSalesView
	default:
		return domain.FilteredView
	}
}

// searchByCustomer filtra pelo nome do cliente sem diferenciar maiúsculas
func searchByCustomer(sales []*domain.Sale, term string) []*domain.Sale {
	if term == "" {
		return sales
	}

	term = strings.ToLower(term)
	found := make([]*domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if strings.Contains(strings.ToLower(sale.Customer), term) {
			found = append(found, sale)
		}
	}
	return found
}

// generateDateRange gera um slice de datas entre startDate e endDate (inclusive)
func generateDateRange(startDate, endDate *time.Time) []time.Time {
	if startDate == nil || endDate == nil || startDate.After(*endDate) {
		return []time.Time{}
	}

	var dates []time.Time

	// Normalizando as datas para meia-noite
	currentDate := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	endDateTime := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, endDate.Location())

	for !currentDate.After(endDateTime) {
		dates = append(dates, currentDate)
		currentDate = currentDate.AddDate(0, 0, 1)
	}

	return dates
}
