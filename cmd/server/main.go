package main

import (
	"database/sql"
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/cors"

	"github.com/vocalia/customer-feedback-service/internal/system/config"
	"github.com/vocalia/customer-feedback-service/internal/system/constants"
	"github.com/vocalia/customer-feedback-service/internal/system/database/migrations"
	"github.com/vocalia/customer-feedback-service/internal/system/log"
	"github.com/vocalia/customer-feedback-service/internal/system/managers"
	"github.com/vocalia/customer-feedback-service/internal/system/ratelimit"
	"github.com/vocalia/customer-feedback-service/internal/system/schedulers"
)

const configFile = "config/deployment.yaml"

func main() {
	serviceHome := getServiceHome()

	envFiles, _ := filepath.Glob("config/*.env")
	_ = godotenv.Load(envFiles...)

	cfg, err := config.LoadConfig(serviceHome, configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	if err := config.InitializeServiceRuntime(serviceHome, cfg); err != nil {
		stdlog.Fatalf("Failed to initialize service runtime: %v", err)
	}

	if err := log.Init(cfg.Log.LogLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := log.GetLogger()

	if err := migrateDatabase(cfg); err != nil {
		logger.Fatal("Failed to apply database migrations", log.Error(err))
	}

	if cfg.Scheduler.SweepEnabled {
		if _, err := schedulers.StartConflictSweep(cfg.Scheduler.SweepCron); err != nil {
			logger.Fatal("Failed to start conflict sweep scheduler", log.Error(err))
		}
	}

	handler := buildHandler(cfg)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Addr.Host, cfg.Addr.Port)
	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.String("addr", serverAddr), log.Error(err))
	}

	logger.Info("Customer feedback service started", log.String("addr", serverAddr))

	server := &http.Server{Handler: handler}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// buildHandler assembles the mux with its middleware chain: CORS on the
// outside, then rate limiting, then the registered services.
func buildHandler(cfg *config.Config) http.Handler {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services", log.Error(err))
	}

	var handler http.Handler = mux
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewLimiter(ratelimit.NewMemoryCounterStore(),
			cfg.RateLimit.RequestsPerWindow, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)
		handler = limiter.Middleware(handler)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Auth.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return corsHandler.Handler(handler)
}

// migrateDatabase opens a dedicated connection and brings the schema up to date.
func migrateDatabase(cfg *config.Config) error {

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DataSource.Hostname, cfg.DataSource.Port, cfg.DataSource.Username,
		cfg.DataSource.Password, cfg.DataSource.Name, cfg.DataSource.SSLMode)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	return migrations.Run(db)
}

func getServiceHome() string {

	projectHome := ""
	projectHomeFlag := flag.String("serviceHome", "", "Path to the feedback service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		projectHome = *projectHomeFlag
	} else {
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			stdlog.Fatalf("Failed to get current working directory: %v", dirErr)
		}
		projectHome = dir
	}
	return projectHome
}
