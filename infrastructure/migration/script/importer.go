package main

import (
	"sort"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/dashgreen/infrastructure/repository"
	"github.com/vfg2006/dashgreen/internal/domain"
	"github.com/vfg2006/dashgreen/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Chaves usadas pelo painel no localStorage do navegador
var legacyKeys = repository.NewKeys("dashgreen")

// importReport resume o que foi gravado no meio de destino
type importReport struct {
	Sales           int
	Investments     int
	InvalidDateKeys int // chaves fora do formato YYYY-MM-DD, gravadas mesmo assim
	DateFilter      domain.DateFilter
	UserImported    bool
}

// importLegacyExport lê um objeto JSON com as chaves do localStorage e grava cada registro
// pelos repositórios. Os valores podem vir como texto (como o navegador guarda) ou já como JSON.
func importLegacyExport(
	data []byte,
	state repository.StateRepository,
	session repository.SessionRepository,
) (*importReport, error) {
	var export map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, errors.Wrap(err, "arquivo de exportação não é um objeto JSON")
	}

	report := &importReport{DateFilter: domain.AllDates}

	if raw, ok := export[legacyKeys.Sales]; ok {
		var sales []*domain.Sale
		if err := decodeLegacyValue(raw, &sales); err != nil {
			return nil, errors.Wrapf(err, "erro ao ler %s", legacyKeys.Sales)
		}

		sales = dropNilSales(sales)
		sort.SliceStable(sales, func(i, j int) bool {
			return sales[i].Date.After(sales[j].Date)
		})

		if err := state.SaveSales(sales); err != nil {
			return nil, errors.Wrap(err, "erro ao gravar vendas")
		}
		report.Sales = len(sales)
	}

	if raw, ok := export[legacyKeys.Investments]; ok {
		investments := domain.DailyInvestments{}
		if err := decodeLegacyValue(raw, &investments); err != nil {
			return nil, errors.Wrapf(err, "erro ao ler %s", legacyKeys.Investments)
		}

		if err := state.SaveInvestments(investments); err != nil {
			return nil, errors.Wrap(err, "erro ao gravar investimentos")
		}
		report.Investments = len(investments)
		for key := range investments {
			if _, err := utils.ParseDateKey(key, time.UTC); err != nil {
				report.InvalidDateKeys++
			}
		}
	}

	if raw, ok := export[legacyKeys.DateFilter]; ok {
		// O filtro é gravado pelo navegador como texto puro, sem JSON
		var token string
		if err := json.Unmarshal(raw, &token); err != nil {
			return nil, errors.Wrapf(err, "erro ao ler %s", legacyKeys.DateFilter)
		}
		if token != "" {
			report.DateFilter = domain.DateFilter(token)
		}

		if err := state.SaveDateFilter(report.DateFilter); err != nil {
			return nil, errors.Wrap(err, "erro ao gravar filtro de data")
		}
	}

	if raw, ok := export[legacyKeys.User]; ok {
		var user *domain.User
		if err := decodeLegacyValue(raw, &user); err != nil {
			return nil, errors.Wrapf(err, "erro ao ler %s", legacyKeys.User)
		}

		if user != nil && user.Username != "" {
			if err := session.SaveUser(user); err != nil {
				return nil, errors.Wrap(err, "erro ao gravar usuário")
			}
			report.UserImported = true
		}
	}

	return report, nil
}

// decodeLegacyValue aceita o valor como string contendo JSON ou como JSON direto
func decodeLegacyValue(raw jsoniter.RawMessage, target interface{}) error {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		raw = jsoniter.RawMessage(text)
	}

	return json.Unmarshal(raw, target)
}

func dropNilSales(sales []*domain.Sale) []*domain.Sale {
	kept := make([]*domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if sale != nil {
			kept = append(kept, sale)
		}
	}
	return kept
}
