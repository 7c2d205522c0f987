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

	"github.com/franciscosanchezn/gin-restaurante-api/docs"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/config"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/controllers"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/middleware"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/seed"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const appName = "restaurante-api"

// @title Restaurante API
// @version 0.1.0
// @description API para gestionar platos, clientes y pedidos
// @host localhost:8000
// @BasePath /
func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "REST API for a restaurant's dishes, customers and orders",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load environment variables
			loadDotenvFile()
			// Initialize logger
			setUpLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
		SilenceUsage: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	})
	cmd.AddCommand(seedCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, config.GetEnvWithDefault("APP_VERSION", docs.SwaggerInfo.Version))
		},
	})

	return cmd
}

func seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample dish catalog into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := setupDatabase(conf)
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			platos, err := seed.Load()
			if file != "" {
				platos, err = seed.LoadFile(file)
			}
			if err != nil {
				return err
			}
			inserted, err := seed.SeedPlatos(cmd.Context(), services.NewPlatoService(db), platos)
			if err != nil {
				return err
			}
			fmt.Printf("%d platos cargados correctamente.\n", inserted)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML catalog to load instead of the embedded one")
	return cmd
}

// serve wires configuration, database and router and runs the HTTP server
// until SIGINT or SIGTERM is received
func serve() error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := setupDatabase(conf)
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	if conf.SeedOnEmpty {
		platos, err := seed.Load()
		if err != nil {
			return err
		}
		if _, err := seed.SeedIfEmpty(context.Background(), services.NewPlatoService(db), platos); err != nil {
			return err
		}
	}

	if conf.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(conf, db, prometheus.NewRegistry())
	server := &http.Server{
		Addr:              conf.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", conf.Address())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment.
// It runs before the configuration is loaded; applyLogLevel refines it afterwards.
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	level := config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development"))
	log.SetLevel(level)
	database.SetLevel(level)
}

// applyLogLevel switches every logger to the level carried by the configuration
func applyLogLevel(conf *config.Config) {
	log.SetLevel(conf.Level())
	database.SetLevel(conf.Level())
	log.WithField("log_level", conf.Level().String()).Debug("Log level applied")
}

// loadConfig loads the configuration and applies its log level
func loadConfig() (*config.Config, error) {
	conf, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	applyLogLevel(conf)
	return conf, nil
}

// setupDatabase opens the configured database and creates the registered tables
func setupDatabase(conf *config.Config) (*gorm.DB, error) {
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		URL:      postgresURL(conf),
		Path:     conf.DBPath,
	})
	if err != nil {
		return nil, err
	}

	registry, err := database.NewRegistry(&models.Plato{}, &models.Cliente{}, &models.Pedido{})
	if err != nil {
		return nil, err
	}
	if err := registry.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// postgresURL hands the assembled, percent-encoded connection URL to the postgres driver
func postgresURL(conf *config.Config) string {
	if conf.DBDriver == "sqlite" {
		return ""
	}
	return conf.DatabaseURL()
}

func closeDatabase(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.WithError(err).Warn("Closing database")
		}
	}
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter(conf *config.Config, db *gorm.DB, registry *prometheus.Registry) *gin.Engine {
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(registry)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(log.StandardLogger()),
		metrics.Handler(),
		middleware.CORS(conf.AllowedHosts, conf.AllowedMethods, conf.AllowedHeaders),
	)

	setupRoutes(router, conf, db, metrics)
	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, conf *config.Config, db *gorm.DB, metrics *middleware.Metrics) {
	health := controllers.NewHealthController(conf, func(ctx context.Context) error {
		return database.Ping(ctx, db)
	})
	router.NoRoute(controllers.NotFound)
	router.GET("/", health.Welcome)
	router.GET("/health", health.HealthCheck)
	router.GET("/config", health.Config)
	router.GET("/metrics", metrics.Endpoint())

	v1 := router.Group("/api/v1")
	controllers.RegisterRoutes(v1,
		controllers.NewPlatoController(services.NewPlatoService(db)),
		controllers.NewClienteController(services.NewClienteService(db)),
		controllers.NewPedidoController(services.NewPedidoService(db)),
	)

	// Swagger documentation
	docs.SwaggerInfo.Title = conf.AppName
	docs.SwaggerInfo.Description = conf.AppDescription
	docs.SwaggerInfo.Version = conf.Version
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
