package domain

// DailyInvestments mapeia o dia (YYYY-MM-DD) para o investimento em marketing.
// Chave ausente significa investimento zero.
type DailyInvestments map[string]float64

func (d DailyInvestments) Get(dateKey string) float64 {
	return d[dateKey]
}

func (d DailyInvestments) Clone() DailyInvestments {
	clone := make(DailyInvestments, len(d))
	for key, value := range d {
		clone[key] = value
	}
	return clone
}
