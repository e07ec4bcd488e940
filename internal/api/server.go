package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adtracker-api/internal/api/handler"
	"github.com/vfg2006/adtracker-api/internal/api/handler/router"
	"github.com/vfg2006/adtracker-api/internal/config"
	"github.com/vfg2006/adtracker-api/internal/scheduler"
	"github.com/vfg2006/adtracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/adtracker-api/internal/usecases/planning"
	"github.com/vfg2006/adtracker-api/internal/usecases/reporting"
	"github.com/vfg2006/adtracker-api/internal/usecases/spying"
	"github.com/vfg2006/adtracker-api/internal/usecases/tracking"
	"github.com/vfg2006/adtracker-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reporter reporting.Reporter,
	tracker tracking.Tracker,
	planner planning.Planner,
	spy spying.Spy,
	authenticator authenticating.Authenticator,
	snapshotService *scheduler.DailySnapshotService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		DailySnapshotService: snapshotService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Dashboard(reporter)...),
		router.WithRoutes(handler.Offers(tracker, reporter)...),
		router.WithRoutes(handler.AdEntries(tracker)...),
		router.WithRoutes(handler.Expenses(tracker)...),
		router.WithRoutes(handler.RecurringExpenses(tracker)...),
		router.WithRoutes(handler.Projects(planner)...),
		router.WithRoutes(handler.References(spy)...),
		router.WithRoutes(handler.Snapshots(snapshotService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
