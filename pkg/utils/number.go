package utils

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ParseNumber converte a entrada de texto em número; entradas inválidas viram 0.
// NaN e infinitos também viram 0, pois não podem ser gravados em JSON.
func ParseNumber(raw string) float64 {
	value, err := cast.ToFloat64E(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return Finite(value)
}

// ParseInt converte a entrada de texto em inteiro, truncando decimais; entradas inválidas
// ou fora da faixa de int viram 0
func ParseInt(raw string) int {
	value := ParseNumber(raw)
	if value < math.MinInt || value >= math.MaxInt {
		return 0
	}
	return int(value)
}

// Finite retorna 0 para NaN e ±Inf
func Finite(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}
