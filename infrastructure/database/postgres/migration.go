package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/dashgreen/pkg/log"
)

const createAppStateTable = `
CREATE TABLE IF NOT EXISTS app_state (
	record_key   TEXT PRIMARY KEY,
	record_value BYTEA NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Migrate cria a tabela de registros do painel caso ainda não exista
func Migrate(ctx context.Context, conn *Connection) error {
	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, createAppStateTable)
		return err
	})
	if err != nil {
		return fmt.Errorf("erro ao criar tabela app_state: %w", err)
	}

	log.L.WithField(log.DriverField, "postgres").Debug("Tabela app_state verificada")
	return nil
}
