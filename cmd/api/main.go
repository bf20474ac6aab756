package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-ops-api/infrastructure/repository"
	"github.com/vfg2006/agency-ops-api/internal/api"
	"github.com/vfg2006/agency-ops-api/internal/config"
	"github.com/vfg2006/agency-ops-api/internal/scheduler"
	"github.com/vfg2006/agency-ops-api/internal/usecases/analyzing"
	"github.com/vfg2006/agency-ops-api/internal/usecases/authenticating"
	"github.com/vfg2006/agency-ops-api/internal/usecases/marketing"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	householdRepo := repository.NewHouseholdRepository(pgConn)
	quoteRepo := repository.NewQuoteRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	leadSourceRepo := repository.NewLeadSourceRepository(pgConn)
	spendRepo := repository.NewLeadSourceSpendRepository(pgConn)
	settingsRepo := repository.NewAgencySettingsRepository(pgConn)
	snapshotRepo := repository.NewAnalyticsSnapshotRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	analyticsService := analyzing.NewService(
		cfg,
		householdRepo,
		quoteRepo,
		saleRepo,
		leadSourceRepo,
		spendRepo,
		settingsRepo,
		snapshotRepo,
	)

	marketingService := marketing.NewService(leadSourceRepo, spendRepo)

	// Inicializa o agendador do snapshot noturno de analytics
	snapshotSyncService := scheduler.NewSnapshotSyncService(
		settingsRepo,
		snapshotRepo,
		analyticsService,
		cfg,
	)

	// Inicia o agendador em background
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de analytics")
	} else {
		logrus.Info("Agendador de snapshots de analytics iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		marketingService,
		authenticator,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
