package domain

// AppState é o estado completo mantido pelo painel
type AppState struct {
	Sales       []*Sale
	Investments DailyInvestments
	DateFilter  DateFilter
}

// NewAppState cria o estado vazio usado quando não há nada persistido
func NewAppState() *AppState {
	return &AppState{
		Sales:       []*Sale{},
		Investments: DailyInvestments{},
		DateFilter:  AllDates,
	}
}

type User struct {
	Username string `json:"username"`
}
