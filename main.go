// File: bookingbridge/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookingbridge/config"
	"bookingbridge/database"
	documentRepo "bookingbridge/database/repository/document"
	"bookingbridge/handlers"
	"bookingbridge/middleware"
	"bookingbridge/routes"
	"bookingbridge/services/forwarding"
	"bookingbridge/services/identity"
	"bookingbridge/utils"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Sugar().Fatalf("main: invalid configuration: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Client app project: the caller's own database and its identity provider.
	clientApp, err := utils.NewFirebaseApp(ctx, utils.FirebaseAppConfig{
		Name:            "client",
		ProjectID:       cfg.ClientProjectID,
		CredentialsFile: cfg.ClientCredentialsFile,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	clientFirestore, err := clientApp.Firestore(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open client firestore: %v", err)
	}
	primary := documentRepo.NewFirestoreStore(clientFirestore)
	defer primary.Close()

	// Therapist tenant: separately credentialed.
	secondary, err := newTherapistStore(ctx, cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize therapist store: %v", err)
	}
	defer secondary.Close()
	logger.Info("Therapist store ready", zap.String("backend", cfg.TherapistStoreBackend))

	verifier, closeVerifier, err := newVerifier(ctx, cfg, clientApp, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize identity verifier: %v", err)
	}
	defer closeVerifier()

	gateway, err := forwarding.NewGateway(primary, secondary, logger,
		forwarding.WithCollections(cfg.PrimaryCollectionTemplate, cfg.SecondaryCollection),
		forwarding.WithJournal(forwarding.NewStoreJournal(primary, cfg.OrphanCollection)),
	)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	monitorCtx, stopMonitor := context.WithCancel(ctx)
	defer stopMonitor()
	monitor := utils.NewHealthMonitor(map[string]utils.Pinger{
		"clientStore":    primary,
		"therapistStore": secondary,
	}, time.Minute)
	monitor.Start(monitorCtx)

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.TrustedPlatform = cfg.TrustedPlatform
	router.Use(middleware.RequestContextMiddleware(logger))
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	routes.RegisterRoutes(router, &handlers.HandlerBundle{
		Verifier:              verifier,
		MaxRequestsPerMin:     cfg.MaxRequestsPerMin,
		ForwardBookingHandler: handlers.NewForwardHandler(gateway).ForwardBookingToTherapist,
		HealthHandler:         handlers.NewHealthHandler(monitor).Health,
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// newTherapistStore opens the therapist tenant's store with its own credentials.
func newTherapistStore(ctx context.Context, cfg config.Config) (documentRepo.DocumentStore, error) {
	switch cfg.TherapistStoreBackend {
	case config.BackendFirestore:
		app, err := utils.NewFirebaseApp(ctx, utils.FirebaseAppConfig{
			Name:            "therapistAdmin",
			ProjectID:       cfg.TherapistProjectID,
			CredentialsFile: cfg.TherapistCredentialsFile,
		})
		if err != nil {
			return nil, err
		}
		client, err := app.Firestore(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to open therapist firestore: %w", err)
		}
		return documentRepo.NewFirestoreStore(client), nil
	case config.BackendMongo:
		client, err := database.ConnectMongo(ctx, cfg.TherapistMongoURL)
		if err != nil {
			return nil, err
		}
		return documentRepo.NewMongoStore(client, cfg.TherapistMongoDatabase), nil
	case config.BackendPostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.TherapistPostgresURL)
		if err != nil {
			return nil, err
		}
		store, err := documentRepo.NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil
	case config.BackendMemory:
		return documentRepo.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported therapist store backend %q", cfg.TherapistStoreBackend)
	}
}

// newVerifier builds the caller identity verifier, fronted by the Redis token cache when configured.
func newVerifier(ctx context.Context, cfg config.Config, clientApp *firebase.App, logger *zap.Logger) (identity.Verifier, func(), error) {
	var base identity.Verifier
	switch cfg.AuthMode {
	case config.AuthModeJWT:
		base = identity.NewJWTVerifier(cfg.JWTSecret)
	default:
		authClient, err := clientApp.Auth(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open client auth: %w", err)
		}
		base = identity.NewFirebaseVerifier(authClient)
	}

	if cfg.RedisAddr == "" {
		return base, func() {}, nil
	}
	cache, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisAuthDB)
	if err != nil {
		// The cache only saves verification work; run without it.
		logger.Warn("Auth cache unavailable, verifying every token", zap.Error(err))
		return base, func() {}, nil
	}
	return identity.NewCachedVerifier(base, cache, cfg.AuthCacheTTL, logger), func() { _ = cache.Close() }, nil
}
