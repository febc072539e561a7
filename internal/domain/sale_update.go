package domain

import (
	"github.com/vfg2006/dashgreen/pkg/utils"
)

type SaleField string

const (
	AmountField        SaleField = "amount"
	ProductField       SaleField = "product"
	CustomerField      SaleField = "customer"
	TrackingCodeField  SaleField = "trackingCode"
	PaymentStatusField SaleField = "paymentStatus"
)

// SaleUpdate é uma alteração de um único campo editável da venda.
// ID e data não possuem variante e portanto não podem ser alterados.
type SaleUpdate interface {
	Field() SaleField
	apply(sale *Sale)
}

type SetAmount float64

func (u SetAmount) Field() SaleField  { return AmountField }
func (u SetAmount) apply(sale *Sale) { sale.Amount = utils.Finite(float64(u)) }

type SetProduct int

func (u SetProduct) Field() SaleField  { return ProductField }
func (u SetProduct) apply(sale *Sale) { sale.Product = int(u) }

type SetCustomer string

func (u SetCustomer) Field() SaleField  { return CustomerField }
func (u SetCustomer) apply(sale *Sale) { sale.Customer = string(u) }

type SetTrackingCode string

func (u SetTrackingCode) Field() SaleField  { return TrackingCodeField }
func (u SetTrackingCode) apply(sale *Sale) { sale.TrackingCode = string(u) }

type SetPaymentStatus PaymentStatus

func (u SetPaymentStatus) Field() SaleField  { return PaymentStatusField }
func (u SetPaymentStatus) apply(sale *Sale) { sale.PaymentStatus = PaymentStatus(u) }

// ApplyUpdate aplica a alteração na venda; alteração nula não faz nada
func ApplyUpdate(sale *Sale, update SaleUpdate) {
	if sale == nil || update == nil {
		return
	}
	update.apply(sale)
}

// SaleUpdateFromInput monta a alteração a partir do texto da célula editável.
// Campos numéricos inválidos viram 0; campo ou status desconhecido retorna nil.
func SaleUpdateFromInput(field SaleField, raw string) SaleUpdate {
	switch field {
	case AmountField:
		return SetAmount(utils.ParseNumber(raw))
	case ProductField:
		return SetProduct(utils.ParseInt(raw))
	case CustomerField:
		return SetCustomer(raw)
	case TrackingCodeField:
		return SetTrackingCode(raw)
	case PaymentStatusField:
		status, ok := ParsePaymentStatus(raw)
		if !ok {
			return nil
		}
		return SetPaymentStatus(status)
	default:
		return nil
	}
}
