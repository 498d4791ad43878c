package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"zepto-clone/internal/config"
	"zepto-clone/internal/coordinator"
	"zepto-clone/internal/httpserver"
	cartrepo "zepto-clone/internal/repository/cart"
	catalogrepo "zepto-clone/internal/repository/catalog"
	catalogsvc "zepto-clone/internal/service/catalog"
)

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	cfg := config.Load(logger)

	client := catalogrepo.NewFakeStore(cfg.CatalogBaseURL, logger, nil)
	catalogService := catalogsvc.New(client)
	cartStore := cartrepo.NewMemory()

	homeCoordinator := coordinator.NewHome(catalogService)
	categoryCoordinator := coordinator.NewCategory(catalogService)
	cartCoordinator := coordinator.NewCart(cartStore)
	defer cartCoordinator.Close()

	// Warm the home screen in the background; the catalog stays reachable
	// through /api/home/refresh if this first load fails.
	go homeCoordinator.Load(context.Background())

	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Home:     homeCoordinator,
		Category: categoryCoordinator,
		Cart:     cartCoordinator,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
