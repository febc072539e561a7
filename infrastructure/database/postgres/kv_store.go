package postgres

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/dashgreen/infrastructure/storage"
)

const appStateTable = "app_state"

// KeyValueStore grava os registros do painel na tabela app_state
type KeyValueStore struct {
	conn Queryer
}

func NewKeyValueStore(conn Queryer) *KeyValueStore {
	return &KeyValueStore{
		conn: conn,
	}
}

func (s *KeyValueStore) Get(key string) ([]byte, error) {
	query, args, err := selectValueQuery(key)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value []byte
	if err := s.conn.QueryRow(query, args...).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("erro ao buscar registro %s: %w", key, err)
	}

	return value, nil
}

func (s *KeyValueStore) Set(key string, value []byte) error {
	query, args, err := upsertValueQuery(key, value)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := s.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (s *KeyValueStore) Delete(key string) error {
	query, args, err := deleteValueQuery(key)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := s.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func selectValueQuery(key string) (string, []interface{}, error) {
	return squirrel.
		Select("record_value").
		From(appStateTable).
		Where(squirrel.Eq{"record_key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func upsertValueQuery(key string, value []byte) (string, []interface{}, error) {
	return squirrel.StatementBuilder.
		Insert(appStateTable).
		Columns("record_key", "record_value").
		Values(key, value).
		Suffix(`ON CONFLICT (record_key) DO UPDATE SET
				record_value = EXCLUDED.record_value,
				updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func deleteValueQuery(key string) (string, []interface{}, error) {
	return squirrel.
		Delete(appStateTable).
		Where(squirrel.Eq{"record_key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
