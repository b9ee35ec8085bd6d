package main

// @title           Authcore API
// @version         1.0
// @description     Username/password authentication API. Issues JWT bearer tokens and manages user accounts backed by a document store.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Format: "Bearer {token}"

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/custodia-labs/authcore/internal/adapters/driven/auth"
	mongodb "github.com/custodia-labs/authcore/internal/adapters/driven/mongo"
	"github.com/custodia-labs/authcore/internal/adapters/driving/http"
	"github.com/custodia-labs/authcore/internal/core/services"
)

var version = "dev"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	// Configuration from environment
	port := getEnvInt("PORT", 8080)
	mongoURL := getEnv("MONGODB_URL", "mongodb://localhost:27017")
	mongoDatabase := getEnv("MONGODB_DATABASE", "authcore")
	clientURL := getEnv("CLIENT_URL", "*")

	// The signing secret is a startup invariant: without it no token could
	// ever be issued or verified, so refuse to start.
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ===== Document store =====
	log.Println("Connecting to MongoDB...")
	storeCfg := mongodb.DefaultConfig(mongoURL)
	storeCfg.Database = mongoDatabase
	db, err := mongodb.Connect(ctx, storeCfg)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}
	defer db.Close(context.Background())

	userStore := mongodb.NewUserStore(db)
	if err := userStore.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure store indexes: %v", err)
	}
	log.Println("MongoDB connected, email uniqueness index in place")

	// ===== Driven adapters =====
	authAdapter := auth.NewAdapter(jwtSecret)

	// ===== Core services =====
	authService := services.NewAuthService(userStore, authAdapter)
	userService := services.NewUserService(userStore)

	// ===== HTTP server =====
	serverCfg := http.DefaultConfig()
	serverCfg.Port = port
	serverCfg.Version = version
	serverCfg.AllowedOrigins = []string{clientURL}

	server := http.NewServer(serverCfg, authService, userService, db)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
