package repository

// Keys são as chaves dos registros gravados no meio chave-valor
type Keys struct {
	Sales       string
	Investments string
	DateFilter  string
	User        string
}

func NewKeys(prefix string) Keys {
	if prefix == "" {
		prefix = "dashgreen"
	}

	return Keys{
		Sales:       prefix + "_sales",
		Investments: prefix + "_investments",
		DateFilter:  prefix + "_date_filter",
		User:        prefix + "_user",
	}
}
