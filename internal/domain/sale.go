package domain

import (
	"strings"
	"time"

	"github.com/vfg2006/dashgreen/pkg/utils"
)

type PaymentStatus string

const (
	Paid    PaymentStatus = "paid"
	Pending PaymentStatus = "pending"
	Unpaid  PaymentStatus = "unpaid"
)

// ParsePaymentStatus reconhece apenas os três status do painel
func ParsePaymentStatus(raw string) (PaymentStatus, bool) {
	switch status := PaymentStatus(strings.TrimSpace(raw)); status {
	case Paid, Pending, Unpaid:
		return status, true
	default:
		return "", false
	}
}

// Sale representa uma venda registrada no painel
type Sale struct {
	ID            string        `json:"id"`
	Date          time.Time     `json:"date"`
	Amount        float64       `json:"amount"`
	Product       int           `json:"product"`
	Customer      string        `json:"customer"`
	TrackingCode  string        `json:"trackingCode,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Investment    float64       `json:"investment"` // Sempre 0, investimento fica no mapa diário
}

// Clone devolve uma cópia independente da venda
func (s *Sale) Clone() *Sale {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

// Realized indica se a venda entra nas métricas (não pagas ficam de fora)
func (s *Sale) Realized() bool {
	return s.PaymentStatus != Unpaid
}

// SaleFormData são os dados já tipados de uma nova venda
type SaleFormData struct {
	Amount        float64
	Product       int
	Customer      string
	TrackingCode  string
	Date          time.Time
	PaymentStatus PaymentStatus
}

// SaleFormInput é o formulário de nova venda como digitado pelo usuário
type SaleFormInput struct {
	Amount        string
	Product       string
	Customer      string
	TrackingCode  string
	Date          time.Time
	PaymentStatus string
}

// NewSaleFormData converte o formulário bruto: valor inválido vira 0, produtos inválidos viram 1
func NewSaleFormData(input SaleFormInput) SaleFormData {
	product := utils.ParseInt(input.Product)
	if product == 0 {
		product = 1
	}

	status, ok := ParsePaymentStatus(input.PaymentStatus)
	if !ok {
		status = Pending
	}

	return SaleFormData{
		Amount:        utils.ParseNumber(input.Amount),
		Product:       product,
		Customer:      input.Customer,
		TrackingCode:  strings.TrimSpace(input.TrackingCode),
		Date:          input.Date,
		PaymentStatus: status,
	}
}
