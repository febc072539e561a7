// Script de migração do painel: importa uma exportação do localStorage do navegador
// para o meio configurado em STORAGE_DRIVER.
//
// Uso: go run ./infrastructure/migration/script exportacao.json
package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashgreen/infrastructure/repository"
	"github.com/vfg2006/dashgreen/internal/app"
	"github.com/vfg2006/dashgreen/internal/config"
	"github.com/vfg2006/dashgreen/pkg/log"
)

func main() {
	if len(os.Args) < 2 {
		logrus.Fatal("Informe o caminho do arquivo exportado do navegador")
	}
	path := os.Args[1]

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	data, err := os.ReadFile(path)
	if err != nil {
		logrus.WithError(err).Fatalf("Erro ao ler %s", path)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	kv, closeStorage, err := app.OpenStorage(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir armazenamento de destino")
	}
	defer closeStorage()

	keys := repository.NewKeys(cfg.Storage.KeyPrefix)
	startTime := time.Now()

	report, err := importLegacyExport(
		data,
		repository.NewStateRepository(kv, keys),
		repository.NewSessionRepository(kv, keys),
	)
	if err != nil {
		logrus.WithError(err).Error("Importação interrompida")
		return
	}

	logrus.WithFields(logrus.Fields{
		"driver":       cfg.Storage.Driver,
		"sales":        report.Sales,
		"investments":  report.Investments,
		"invalid_keys": report.InvalidDateKeys,
		"date_filter":  report.DateFilter,
		"user":         report.UserImported,
	}).Infof("Importação concluída em %v", time.Since(startTime))
}
