// Package selling mantém a lista de vendas e o investimento diário do painel.
// É o único componente que altera esse estado; cada alteração é gravada logo em seguida.
package selling

import (
	"errors"
	"sort"
	"sync"

	"github.com/vfg2006/dashgreen/infrastructure/repository"
	"github.com/vfg2006/dashgreen/infrastructure/storage"
	"github.com/vfg2006/dashgreen/internal/domain"
	"github.com/vfg2006/dashgreen/internal/usecases/filtering"
	"github.com/vfg2006/dashgreen/pkg/log"
	"github.com/vfg2006/dashgreen/pkg/utils"
)

const (
	salesRecord       = "sales"
	investmentsRecord = "investments"
	dateFilterRecord  = "date_filter"
)

// SalesStore é a interface consumida pela camada de apresentação
type SalesStore interface {
	Sales() []*domain.Sale
	FilteredSales() []*domain.Sale
	Investments() domain.DailyInvestments
	GetDailyInvestment(dateKey string) float64
	DateFilter() domain.DateFilter

	AddSale(form domain.SaleFormData) *domain.Sale
	UpdatePaymentStatus(saleID string, status domain.PaymentStatus)
	UpdateSaleField(saleID string, update domain.SaleUpdate)
	UpdateDailyInvestment(dateKey string, value float64)
	SetDateFilter(filter domain.DateFilter)
}

var _ SalesStore = (*Service)(nil)

type Service struct {
	repository repository.StateRepository
	filters    *filtering.Engine
	newID      utils.IDGenerator
	logger     log.Logger

	mu    sync.RWMutex
	state *domain.AppState
}

// NewService carrega o estado persistido; registros ausentes ou corrompidos
// são substituídos pelos valores vazios
func NewService(
	repo repository.StateRepository,
	filters *filtering.Engine,
	newID utils.IDGenerator,
) *Service {
	if newID == nil {
		newID = utils.NewUUID
	}
	if filters == nil {
		filters = filtering.NewEngine(nil, nil)
	}

	s := &Service{
		repository: repo,
		filters:    filters,
		newID:      newID,
		logger:     log.ForComponent("sales_store"),
	}
	s.state = s.load()

	return s
}

func (s *Service) load() *domain.AppState {
	state := domain.NewAppState()

	sales, err := s.repository.LoadSales()
	if err != nil {
		s.logLoadFailure(salesRecord, err)
	} else if sales != nil {
		state.Sales = sales
	}

	investments, err := s.repository.LoadInvestments()
	if err != nil {
		s.logLoadFailure(investmentsRecord, err)
	} else if investments != nil {
		state.Investments = investments
	}

	filter, err := s.repository.LoadDateFilter()
	if err != nil {
		s.logLoadFailure(dateFilterRecord, err)
	} else if filter != "" {
		state.DateFilter = filter
	}

	s.logger.WithFields(log.Fields{
		"sales":       len(state.Sales),
		"investments": len(state.Investments),
		"date_filter": state.DateFilter,
	}).Debug("Estado do painel carregado")

	return state
}

func (s *Service) logLoadFailure(record string, err error) {
	logger := s.logger.WithField(log.StorageKeyField, record)
	if errors.Is(err, storage.ErrKeyNotFound) {
		logger.Debug("Registro ainda não gravado, usando valor vazio")
		return
	}
	logger.WithError(err).Warn("Erro ao carregar registro, usando valor vazio")
}

// Sales retorna uma cópia de todas as vendas, da mais recente para a mais antiga
func (s *Service) Sales() []*domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSales(s.state.Sales)
}

// FilteredSales aplica o filtro de data ativo; recalculado a cada leitura.
// O corte é lido do relógio uma única vez por chamada.
func (s *Service) FilteredSales() []*domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff, ok := s.filters.Cutoff(s.state.DateFilter)
	if !ok {
		return cloneSales(s.state.Sales)
	}

	loc := s.filters.Location()
	filtered := make([]*domain.Sale, 0, len(s.state.Sales))
	for _, sale := range s.state.Sales {
		if filtering.OnOrAfter(sale.Date, cutoff, loc) {
			filtered = append(filtered, sale.Clone())
		}
	}

	return filtered
}

func (s *Service) Investments() domain.DailyInvestments {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Investments.Clone()
}

// GetDailyInvestment retorna o investimento do dia ou 0 se nunca foi informado
func (s *Service) GetDailyInvestment(dateKey string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Investments.Get(dateKey)
}

func (s *Service) DateFilter() domain.DateFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.DateFilter
}

// AddSale registra a venda sem validar valores e reordena a lista por data
func (s *Service) AddSale(form domain.SaleFormData) *domain.Sale {
	date := form.Date
	if date.IsZero() {
		date = s.filters.Now()
	}

	sale := &domain.Sale{
		ID:            s.newID(),
		Date:          date.UTC(),
		Amount:        utils.Finite(form.Amount),
		Product:       form.Product,
		Customer:      form.Customer,
		TrackingCode:  form.TrackingCode,
		PaymentStatus: form.PaymentStatus,
		Investment:    0,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Sales = append(s.state.Sales, sale)
	sortByDateDesc(s.state.Sales)
	s.persistSales()

	s.logger.WithField(log.SaleIDField, sale.ID).Debug("Venda registrada")

	return sale.Clone()
}

func (s *Service) UpdatePaymentStatus(saleID string, status domain.PaymentStatus) {
	s.UpdateSaleField(saleID, domain.SetPaymentStatus(status))
}

// UpdateSaleField altera um campo da venda; ID desconhecido ou alteração nula não faz nada
func (s *Service) UpdateSaleField(saleID string, update domain.SaleUpdate) {
	if update == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sale := s.findSale(saleID)
	if sale == nil {
		s.logger.WithField(log.SaleIDField, saleID).Debug("Venda não encontrada, alteração ignorada")
		return
	}

	domain.ApplyUpdate(sale, update)
	s.persistSales()
}

// UpdateDailyInvestment sobrescreve o investimento do dia; valores negativos são aceitos,
// NaN e infinitos viram 0
func (s *Service) UpdateDailyInvestment(dateKey string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Investments[dateKey] = utils.Finite(value)
	s.persist(investmentsRecord, func() error {
		return s.repository.SaveInvestments(s.state.Investments)
	})
}

// SetDateFilter aceita qualquer token; desconhecidos se comportam como "all"
func (s *Service) SetDateFilter(filter domain.DateFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.DateFilter = filter
	s.persist(dateFilterRecord, func() error {
		return s.repository.SaveDateFilter(filter)
	})
}

func (s *Service) findSale(saleID string) *domain.Sale {
	for _, sale := range s.state.Sales {
		if sale.ID == saleID {
			return sale
		}
	}
	return nil
}

func (s *Service) persistSales() {
	s.persist(salesRecord, func() error {
		return s.repository.SaveSales(s.state.Sales)
	})
}

// persist grava o registro; falhas são apenas registradas em log e o estado em memória é mantido
func (s *Service) persist(record string, save func() error) {
	if err := save(); err != nil {
		s.logger.WithError(err).WithField(log.StorageKeyField, record).Error("Erro ao gravar registro do painel")
	}
}

func sortByDateDesc(sales []*domain.Sale) {
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date.After(sales[j].Date)
	})
}

func cloneSales(sales []*domain.Sale) []*domain.Sale {
	clone := make([]*domain.Sale, 0, len(sales))
	for _, sale := range sales {
		clone = append(clone, sale.Clone())
	}
	return clone
}
