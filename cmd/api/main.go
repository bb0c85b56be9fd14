package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dcommercial-report-api/infrastructure/integrator/duzz"
	"github.com/vfg2006/dcommercial-report-api/infrastructure/integrator/duzz/duzzclient"
	"github.com/vfg2006/dcommercial-report-api/internal/api"
	"github.com/vfg2006/dcommercial-report-api/internal/config"
	"github.com/vfg2006/dcommercial-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/dcommercial-report-api/internal/usecases/fidelity"
	"github.com/vfg2006/dcommercial-report-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	duzzClient := duzzclient.NewClient(cfg)

	// Integrator com a camada de memoização por cima: chamadas idênticas
	// dentro da janela de validade não voltam ao vendor.
	duzzIntegrator := duzz.WithCache(cfg, duzz.New(cfg, duzzClient))

	authenticator := authenticating.NewService(duzzIntegrator, cfg)
	reporter := reporting.NewService(duzzIntegrator, cfg)
	fidelityTracker := fidelity.NewService(duzzIntegrator, cfg)

	server, err := api.New(cfg, authenticator, reporter, fidelityTracker)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
