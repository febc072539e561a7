package postgres

import (
	"database/sql"
)

// Queryer é o subconjunto de *sql.DB usado pelo armazenamento chave-valor
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
