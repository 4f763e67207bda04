package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	http_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/in/http"
	memory_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

type EngineType string

const (
	// Level 1: 單一 RWMutex
	EngineType_Mutex EngineType = "mutex"
	// Level 2: 單一寫入者迴圈 (LMAX 風格)
	EngineType_Serial EngineType = "serial"
)

type Config struct {
	Engine   EngineType          `yaml:"engine"`
	LogLevel string              `yaml:"logLevel"`
	HTTP     http_adapter.Config `yaml:"http"`
	Auth     usecase.AuthConfig  `yaml:"auth"`
}

func main() {
	// 1. 載入設定
	cfg := loadConfig()
	logger := newLogger(cfg.LogLevel)

	// 2. 初始化 Stores (Driven Adapters)
	userStore := memory_adapter.NewUserStore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ledger usecase.Ledger
	switch cfg.Engine {
	case EngineType_Mutex:
		ledger = memory_adapter.NewMutexStore()
	case EngineType_Serial:
		serialStore := memory_adapter.NewSerialStore()
		serialStore.Start(ctx)
		ledger = serialStore
	default:
		log.Fatalf("Invalid engine type: %s", cfg.Engine)
	}

	// 3. 初始化 UseCases
	bank := usecase.NewBankUseCase(ledger, userStore, logger)
	users := usecase.NewUserUseCase(userStore, cfg.Auth, logger)

	// 4. 初始化 HTTP Adapter (Driving Adapter)
	server := http_adapter.NewServer(cfg.HTTP, bank, users, logger)

	// 5. 啟動 HTTP Server
	go func() {
		log.Printf("Starting HTTP server on %s (engine=%s)", cfg.HTTP.Addr, cfg.Engine)
		if err := server.Listen(); err != nil {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	// 先關完 HTTP 再停引擎，serial 引擎會把輸送帶上剩下的請求處理完
	cancel()
	log.Println("Server exited")
}

func loadConfig() Config {
	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.Engine == "" {
		cfg.Engine = EngineType_Mutex
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":3001"
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatalf("auth.jwtSecret is required")
	}
	// 簽發端與驗證端共用同一把密鑰
	cfg.HTTP.JWTSecret = cfg.Auth.JWTSecret
	return cfg
}

func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}
