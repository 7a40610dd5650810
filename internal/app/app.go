package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mpalomar/ultimateteam/internal/config"
	"github.com/mpalomar/ultimateteam/internal/handlers"
	"github.com/mpalomar/ultimateteam/internal/repo"
	"github.com/mpalomar/ultimateteam/internal/service"
	"github.com/mpalomar/ultimateteam/internal/store"
)

// Application runs the tool server: store, repositories, services and the
// HTTP surface, with graceful shutdown.
type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repos *repo.Repositories
	store *store.Store

	errCh chan error
	wg    sync.WaitGroup
}

func New(cfg *config.Config) *Application {
	return &Application{
		cfg:   cfg,
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	st, err := store.New(a.cfg.DatabaseURI)
	if err != nil {
		return fmt.Errorf("can't resolve database URI: %w", err)
	}

	// Probe the store once so a bad URI fails at startup, not per request.
	db, err := st.Open(ctx)
	if err != nil {
		zap.L().Error("database probe failed", zap.Error(err))
		return fmt.Errorf("can't open database: %w", err)
	}
	db.Close()

	a.store = st
	a.repos = repo.New(st)
	a.srv = service.New(a.repos, st)
	a.api = handlers.New(a.srv)

	if err := a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting tool server", zap.String("address", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
