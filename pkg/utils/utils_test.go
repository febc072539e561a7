package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "Inteiro", input: "100", expected: 100},
		{name: "Decimal", input: "12.5", expected: 12.5},
		{name: "Com espaços", input: "  40 ", expected: 40},
		{name: "Negativo é aceito", input: "-3", expected: -3},
		{name: "Vazio vira zero", input: "", expected: 0},
		{name: "Texto inválido vira zero", input: "abc", expected: 0},
		{name: "Vírgula decimal não é reconhecida", input: "1,5", expected: 0},
		{name: "NaN vira zero", input: "NaN", expected: 0},
		{name: "nan minúsculo vira zero", input: "nan", expected: 0},
		{name: "Infinito vira zero", input: "Inf", expected: 0},
		{name: "Infinito negativo vira zero", input: "-inf", expected: 0},
		{name: "infinity por extenso vira zero", input: "infinity", expected: 0},
		{name: "Estouro vira zero", input: "1e400", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseNumber(tt.input))
		})
	}
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 2, ParseInt("2"))
	assert.Equal(t, 2, ParseInt("2.9"))
	assert.Equal(t, 0, ParseInt("x"))
	assert.Equal(t, 0, ParseInt("NaN"))
	assert.Equal(t, 0, ParseInt("-Inf"))
	assert.Equal(t, 0, ParseInt("1e30"))
	assert.Equal(t, 0, ParseInt("-1e30"))
}

func TestFinite(t *testing.T) {
	assert.Equal(t, 0.0, Finite(math.NaN()))
	assert.Equal(t, 0.0, Finite(math.Inf(1)))
	assert.Equal(t, 0.0, Finite(math.Inf(-1)))
	assert.Equal(t, -2.5, Finite(-2.5))
}

func TestDateKey(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	instant := time.Date(2024, 1, 10, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-10", DateKey(instant, time.UTC))
	assert.Equal(t, "2024-01-09", DateKey(instant, saoPaulo))
}

func TestParseDateKey(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	date, err := ParseDateKey("2024-01-10", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, loc), date)

	_, err = ParseDateKey("10/01/2024", loc)
	assert.Error(t, err)
}

func TestGeneratorFor(t *testing.T) {
	uuidID := GeneratorFor(UUIDStrategy)()
	assert.Len(t, uuidID, 36)

	nanoID := GeneratorFor(NanoIDStrategy)()
	assert.Len(t, nanoID, nanoIDLength)

	assert.Len(t, GeneratorFor("desconhecida")(), 36)
	assert.NotEqual(t, GeneratorFor(UUIDStrategy)(), GeneratorFor(UUIDStrategy)())
}
