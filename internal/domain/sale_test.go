package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSaleFormData(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    SaleFormInput
		expected SaleFormData
	}{
		{
			name:     "Formulário completo",
			input:    SaleFormInput{Amount: "100", Product: "2", Customer: "Ana", TrackingCode: " BR123 ", Date: date, PaymentStatus: "paid"},
			expected: SaleFormData{Amount: 100, Product: 2, Customer: "Ana", TrackingCode: "BR123", Date: date, PaymentStatus: Paid},
		},
		{
			name:     "Valores inválidos usam os padrões do formulário",
			input:    SaleFormInput{Amount: "abc", Product: "", Customer: "Bruno", Date: date, PaymentStatus: "desconhecido"},
			expected: SaleFormData{Amount: 0, Product: 1, Customer: "Bruno", Date: date, PaymentStatus: Pending},
		},
		{
			name:     "Valor negativo não é rejeitado",
			input:    SaleFormInput{Amount: "-5", Product: "3", Customer: "Carla", Date: date, PaymentStatus: "unpaid"},
			expected: SaleFormData{Amount: -5, Product: 3, Customer: "Carla", Date: date, PaymentStatus: Unpaid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewSaleFormData(tt.input))
		})
	}
}

func TestSaleUpdateFromInput(t *testing.T) {
	tests := []struct {
		name     string
		field    SaleField
		raw      string
		expected SaleUpdate
	}{
		{name: "Valor", field: AmountField, raw: "250.5", expected: SetAmount(250.5)},
		{name: "Valor inválido vira zero", field: AmountField, raw: "R$ 10", expected: SetAmount(0)},
		{name: "Produtos", field: ProductField, raw: "4", expected: SetProduct(4)},
		{name: "Cliente", field: CustomerField, raw: "Ana", expected: SetCustomer("Ana")},
		{name: "Rastreio", field: TrackingCodeField, raw: "BR1", expected: SetTrackingCode("BR1")},
		{name: "Status", field: PaymentStatusField, raw: "paid", expected: SetPaymentStatus(Paid)},
		{name: "Status desconhecido", field: PaymentStatusField, raw: "refunded", expected: nil},
		{name: "Campo de data não é editável", field: SaleField("date"), raw: "2024-01-01", expected: nil},
		{name: "Campo de ID não é editável", field: SaleField("id"), raw: "x", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SaleUpdateFromInput(tt.field, tt.raw))
		})
	}
}

func TestApplyUpdate(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	sale := &Sale{ID: "1", Date: date, Amount: 10, Product: 1, Customer: "Ana", PaymentStatus: Pending}

	ApplyUpdate(sale, SetAmount(20))
	ApplyUpdate(sale, SetProduct(3))
	ApplyUpdate(sale, SetCustomer("Bruno"))
	ApplyUpdate(sale, SetTrackingCode("BR9"))
	ApplyUpdate(sale, SetPaymentStatus(Paid))
	ApplyUpdate(sale, nil)

	assert.Equal(t, &Sale{ID: "1", Date: date, Amount: 20, Product: 3, Customer: "Bruno", TrackingCode: "BR9", PaymentStatus: Paid}, sale)
}

func TestSaleClone(t *testing.T) {
	sale := &Sale{ID: "1", Amount: 10}
	clone := sale.Clone()
	clone.Amount = 99

	assert.Equal(t, 10.0, sale.Amount)
	assert.Nil(t, (*Sale)(nil).Clone())
}

func TestDateFilterIsKnown(t *testing.T) {
	assert.True(t, Last7Days.IsKnown())
	assert.True(t, AllDates.IsKnown())
	assert.False(t, DateFilter("lastYear").IsKnown())
}
