package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adtracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/adtracker-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/adtracker-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/adtracker-api/infrastructure/repository"
	"github.com/vfg2006/adtracker-api/internal/api"
	"github.com/vfg2006/adtracker-api/internal/config"
	"github.com/vfg2006/adtracker-api/internal/scheduler"
	"github.com/vfg2006/adtracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/adtracker-api/internal/usecases/planning"
	"github.com/vfg2006/adtracker-api/internal/usecases/reporting"
	"github.com/vfg2006/adtracker-api/internal/usecases/spying"
	"github.com/vfg2006/adtracker-api/internal/usecases/tracking"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

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

	offerRepo := repository.NewOfferRepository(pgConn)
	adEntryRepo := repository.NewAdEntryRepository(pgConn)
	expenseRepo := repository.NewExtraExpenseRepository(pgConn)
	recurringRepo := repository.NewRecurringExpenseRepository(pgConn)
	projectRepo := repository.NewProjectRepository(pgConn)
	taskRepo := repository.NewTaskRepository(pgConn)
	referenceRepo := repository.NewReferenceRepository(pgConn)
	memberRepo := repository.NewTeamMemberRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(memberRepo, cfg)

	geminiClient := geminiclient.NewClient(cfg)
	geminiIntegrator := gemini.New(cfg, geminiClient)

	reporter := reporting.NewService(
		adEntryRepo,
		expenseRepo,
		recurringRepo,
		offerRepo,
		geminiIntegrator,
	)

	tracker := tracking.NewService(offerRepo, adEntryRepo, expenseRepo, recurringRepo)
	planner := planning.NewService(projectRepo, taskRepo)
	spy := spying.NewService(referenceRepo)

	snapshotService := scheduler.NewDailySnapshotService(reporter, snapshotRepo, cfg)

	if err := snapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots diários")
	} else {
		logrus.Info("Agendador de snapshots diários iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reporter,
		tracker,
		planner,
		spy,
		authenticator,
		snapshotService,
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

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
