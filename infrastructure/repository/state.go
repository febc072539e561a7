package repository

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/dashgreen/infrastructure/storage"
	"github.com/vfg2006/dashgreen/internal/domain"
)

//go:generate mockgen -source=state.go -destination=mocks/mock_state.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StateRepository grava cada parte do estado do painel em um registro próprio.
// Registros ausentes retornam storage.ErrKeyNotFound.
type StateRepository interface {
	LoadSales() ([]*domain.Sale, error)
	SaveSales(sales []*domain.Sale) error
	LoadInvestments() (domain.DailyInvestments, error)
	SaveInvestments(investments domain.DailyInvestments) error
	LoadDateFilter() (domain.DateFilter, error)
	SaveDateFilter(filter domain.DateFilter) error
}

type stateRepository struct {
	kv   storage.KeyValue
	keys Keys
}

func NewStateRepository(kv storage.KeyValue, keys Keys) StateRepository {
	return &stateRepository{
		kv:   kv,
		keys: keys,
	}
}

func (r *stateRepository) LoadSales() ([]*domain.Sale, error) {
	data, err := r.kv.Get(r.keys.Sales)
	if err != nil {
		return nil, err
	}

	sales := make([]*domain.Sale, 0)
	if err := json.Unmarshal(data, &sales); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de vendas: %w", err)
	}

	valid := make([]*domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if sale != nil {
			valid = append(valid, sale)
		}
	}

	return valid, nil
}

func (r *stateRepository) SaveSales(sales []*domain.Sale) error {
	if sales == nil {
		sales = []*domain.Sale{}
	}

	data, err := json.Marshal(sales)
	if err != nil {
		return fmt.Errorf("erro ao serializar vendas para JSON: %w", err)
	}

	return r.kv.Set(r.keys.Sales, data)
}

func (r *stateRepository) LoadInvestments() (domain.DailyInvestments, error) {
	data, err := r.kv.Get(r.keys.Investments)
	if err != nil {
		return nil, err
	}

	investments := make(domain.DailyInvestments)
	if err := json.Unmarshal(data, &investments); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de investimentos: %w", err)
	}

	if investments == nil {
		investments = make(domain.DailyInvestments)
	}

	return investments, nil
}

func (r *stateRepository) SaveInvestments(investments domain.DailyInvestments) error {
	if investments == nil {
		investments = domain.DailyInvestments{}
	}

	data, err := json.Marshal(investments)
	if err != nil {
		return fmt.Errorf("erro ao serializar investimentos para JSON: %w", err)
	}

	return r.kv.Set(r.keys.Investments, data)
}

// LoadDateFilter lê o token gravado como texto puro; vazio vira "all"
func (r *stateRepository) LoadDateFilter() (domain.DateFilter, error) {
	data, err := r.kv.Get(r.keys.DateFilter)
	if err != nil {
		return domain.AllDates, err
	}

	if len(data) == 0 {
		return domain.AllDates, nil
	}

	return domain.DateFilter(data), nil
}

func (r *stateRepository) SaveDateFilter(filter domain.DateFilter) error {
	return r.kv.Set(r.keys.DateFilter, []byte(filter))
}
