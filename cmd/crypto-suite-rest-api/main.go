// cmd/crypto-suite-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/rexmax1018/CryptoSuite48/internal/api/rest/v1"
	"github.com/rexmax1018/CryptoSuite48/internal/app"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/cryptoalg"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/cryptography"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/keymanagement"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/keystore"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/persistence"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/config"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	restConfig, err := config.InitializeRestConfig(config.ResolveConfigPath(""))
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}
	defer func() {
		_ = logger.Close(log)
	}()

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db               *gorm.DB
	cryptoService    keys.CryptoService
	cryptoKeyService keys.CryptoKeyService
}

type cryptoProcessors struct {
	aes cryptoalg.AESProcessor
	ec  cryptoalg.ECDSAProcessor
	rsa cryptoalg.RSAProcessor
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	repository, err := persistence.NewGormKeyGenerationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generation repository: %w", err)
	}

	processors, err := initializeCryptoProcessors(log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize processors: %w", err)
	}

	store, err := keystore.NewStore(cfg.Crypto.KeyDirectory, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key store: %w", err)
	}

	generators, err := keymanagement.NewGeneratorFactory(cfg.Crypto, store, processors.aes, processors.rsa, processors.ec, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator factory: %w", err)
	}

	loaders, err := keymanagement.NewLoaderFactory(processors.rsa, processors.ec, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create loader factory: %w", err)
	}

	cryptoService, err := app.NewCryptoService(processors.aes, processors.rsa, processors.ec, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto service: %w", err)
	}

	cryptoKeyService, err := app.NewCryptoKeyService(generators, loaders, repository, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto key service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		db:               db,
		cryptoService:    cryptoService,
		cryptoKeyService: cryptoKeyService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r, deps.cryptoService, deps.cryptoKeyService, cfg.Crypto, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeCryptoProcessors sets up all cryptographic processors
func initializeCryptoProcessors(log logger.Logger) (*cryptoProcessors, error) {
	aesProcessor, err := cryptography.NewAESProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	ecdsaProcessor, err := cryptography.NewECDSAProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create EC processor: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	log.Info("Cryptographic processors initialized successfully")
	return &cryptoProcessors{
		aes: aesProcessor,
		ec:  ecdsaProcessor,
		rsa: rsaProcessor,
	}, nil
}
