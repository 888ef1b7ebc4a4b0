package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eambler/cabracurado-backend/internal/config"
	"github.com/eambler/cabracurado-backend/internal/db"
	"github.com/eambler/cabracurado-backend/internal/localstore"
	"github.com/eambler/cabracurado-backend/internal/modules/admin"
	"github.com/eambler/cabracurado-backend/internal/modules/auth"
	"github.com/eambler/cabracurado-backend/internal/modules/cart"
	"github.com/eambler/cabracurado-backend/internal/modules/catalog"
	"github.com/eambler/cabracurado-backend/internal/modules/client"
	"github.com/eambler/cabracurado-backend/internal/modules/media"
	"github.com/eambler/cabracurado-backend/internal/modules/order"
	"github.com/eambler/cabracurado-backend/internal/modules/producer"
	"github.com/eambler/cabracurado-backend/internal/modules/settings"
	"github.com/eambler/cabracurado-backend/internal/modules/subscription"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	if err := run(log); err != nil {
		log.Fatalw("server stopped", "err", err)
	}
}

func run(log *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Session carts live on disk in both modes; only the main backing
	// store switches between postgres and local files.
	store, err := localstore.Open(cfg.DataDir)
	if err != nil {
		return err
	}

	var (
		producerRepo     producer.Repository
		catalogRepo      catalog.Repository
		clientRepo       client.Repository
		settingsRepo     settings.Repository
		subscriptionRepo subscription.Repository
		orderRepo        order.Repository
		authService      auth.Service
		storage          media.Storage
	)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	switch cfg.StoreMode {
	case config.ModePostgres:
		database, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		log.Infow("connected to postgres")

		producerRepo = producer.NewPostgresRepository(database)
		catalogRepo = catalog.NewPostgresRepository(database)
		clientRepo = client.NewPostgresRepository(database)
		settingsRepo = settings.NewPostgresRepository(database)
		subscriptionRepo = subscription.NewPostgresRepository(database)
		orderRepo = order.NewPostgresRepository(database)
		authService = auth.NewService(auth.NewPostgresRepository(database), cfg.JWTSecret)

		storage, err = media.NewDiskStorage(cfg.UploadsDir, cfg.PublicBaseURL)
		if err != nil {
			return err
		}
		router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))

	case config.ModeLocal:
		log.Infow("running against local file store", "dir", cfg.DataDir)

		producerRepo = producer.NewLocalRepository(store)
		catalogRepo = catalog.NewLocalRepository(store)
		clientRepo = client.NewLocalRepository(store)
		settingsRepo = settings.NewLocalRepository(store)
		subscriptionRepo = subscription.NewLocalRepository(store)
		orderRepo = order.NewLocalRepository(store)
		authService = auth.NewLocalService()
		storage = media.NewPlaceholderStorage()
	}

	requireAdmin := auth.RequireAdmin(authService)

	producerService := producer.NewService(producerRepo)
	producer.NewHandler(producerService, requireAdmin).RegisterRoutes(router)

	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService, requireAdmin).RegisterRoutes(router)

	clientService := client.NewService(clientRepo)

	settingsService := settings.NewService(settingsRepo)
	settings.NewHandler(settingsService, requireAdmin).RegisterRoutes(router)

	subscriptionService := subscription.NewService(subscriptionRepo, clientService)
	subscription.NewHandler(subscriptionService, requireAdmin).RegisterRoutes(router)

	orderService := order.NewService(orderRepo, clientService, catalogRepo)
	order.NewHandler(orderService, requireAdmin).RegisterRoutes(router)

	cartService := cart.NewService(store, catalogRepo, orderService)
	cart.NewHandler(cartService).RegisterRoutes(router)

	auth.NewHandler(authService).RegisterRoutes(router)
	media.NewHandler(storage, requireAdmin).RegisterRoutes(router)
	admin.NewHandler(catalogService, orderService, subscriptionService, requireAdmin).RegisterRoutes(router)

	server := &http.Server{Addr: cfg.Addr, Handler: router}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Infow("listening", "addr", cfg.Addr, "mode", cfg.StoreMode)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Infow("shutting down")
		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
