package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"casino_client/internal/config"
	"casino_client/internal/logging"
	"casino_client/internal/repository/schema"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) init() {
	err := config.Load(".env")
	logging.Setup(os.Getenv("APP_LOG_LEVEL"))
	if err != nil {
		log.WithError(err).Debug("no .env file, using environment")
	}
	s.initServiceProvider()
}

// RunServer запускает тестовый сервер с записанными ответами и работает до отмены ctx
func (s *App) RunServer(ctx context.Context) error {
	s.init()
	defer s.ServiceProvider.Close()

	if dbc := s.ServiceProvider.DBClient(ctx); dbc != nil {
		if err := schema.Apply(ctx, dbc); err != nil {
			return err
		}
		log.Info("using postgres storage")
	}

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("address", srv.Addr).Info("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info("server stopped")
	return nil
}
