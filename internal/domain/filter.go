package domain

// DateFilter é o atalho de período escolhido no painel
type DateFilter string

const (
	AllDates   DateFilter = "all"
	Today      DateFilter = "today"
	Yesterday  DateFilter = "yesterday"
	Last7Days  DateFilter = "last7Days"
	Last30Days DateFilter = "last30Days"
)

// DateFilters lista os filtros na ordem exibida pelo painel
var DateFilters = []DateFilter{AllDates, Today, Yesterday, Last7Days, Last30Days}

// IsKnown indica se o token é um dos filtros conhecidos
func (f DateFilter) IsKnown() bool {
	for _, known := range DateFilters {
		if f == known {
			return true
		}
	}
	return false
}
