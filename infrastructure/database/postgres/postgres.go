package postgres

import (
	"context"
	"database/sql"
	"net/url"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/dashgreen/internal/config"
	"github.com/vfg2006/dashgreen/pkg/log"
)

const connectTimeout = 10 * time.Second

// Connection é a conexão usada pelo armazenamento do painel.
// Um único usuário local, então o pool é mínimo.
type Connection struct {
	*sql.DB
	logger log.Logger
}

func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	logger := log.ForComponent("postgres").WithField(log.DriverField, config.PostgresDriver)

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir conexão com %s", redactDSN(cfg.DSN))
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)

	conn := &Connection{DB: db, logger: logger}
	if err := conn.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "erro ao testar conexão com %s", redactDSN(cfg.DSN))
	}

	logger.Debugf("Conectado em %s", redactDSN(cfg.DSN))
	return conn, nil
}

// Ping testa a conexão respeitando um tempo máximo de espera
func (c *Connection) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	return c.DB.PingContext(ctx)
}

func (c *Connection) Close() error {
	if err := c.DB.Close(); err != nil {
		c.logger.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
		return err
	}
	return nil
}

// RunInTransaction executa fn em uma transação; erro ou panic desfazem tudo
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "erro ao iniciar transação")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			c.logger.WithError(rollbackErr).Error("Erro ao desfazer transação")
		}
		return err
	}

	return errors.Wrap(tx.Commit(), "erro ao confirmar transação")
}

// redactDSN esconde a senha da string de conexão para uso em logs e erros
func redactDSN(dsn string) string {
	parsed, err := url.Parse(dsn)
	if err != nil || parsed.User == nil {
		return "postgres"
	}
	return parsed.Redacted()
}
