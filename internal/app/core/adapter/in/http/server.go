// Package http 是 REST 驅動端 Adapter (Driving Adapter)
// 只負責解析請求、呼叫 usecase、把 sentinel error 對應到 HTTP 狀態碼，
// 不碰任何業務規則。
package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// Config HTTP 層設定
type Config struct {
	// Addr: 監聽位址，例如 ":3001"
	Addr string `yaml:"addr"`
	// JWTSecret: 驗證 bearer token 的密鑰 (與簽發端共用)
	JWTSecret string `yaml:"jwtSecret"`
}

// Server 包裝 fiber.App 與兩個 usecase
type Server struct {
	app    *fiber.App
	cfg    Config
	bank   *usecase.BankUseCase
	users  *usecase.UserUseCase
	logger *slog.Logger
}

// NewServer 建立 Server 並註冊所有路由
func NewServer(cfg Config, bank *usecase.BankUseCase, users *usecase.UserUseCase, logger *slog.Logger) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:               "go-mem-bank",
			DisableStartupMessage: true,
		}),
		cfg:    cfg,
		bank:   bank,
		users:  users,
		logger: logger,
	}
	s.registerRoutes()
	return s
}

// App 回傳底層的 fiber.App (測試用 app.Test 需要)
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen 開始服務
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Addr)
}

// Shutdown 優雅關閉
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// registerRoutes 路由表，對齊來源系統的 REST 介面
func (s *Server) registerRoutes() {
	protected := jwtProtected(s.cfg.JWTSecret)

	// 使用者
	s.app.Post("/users/register", s.handleRegister)
	s.app.Post("/users/login", s.handleLogin)
	s.app.Get("/users/me", protected, s.handleMe)

	// 帳戶 (全部需要登入)
	s.app.Get("/accounts", protected, s.handleListAccounts)
	s.app.Post("/accounts/create", protected, s.handleCreateAccount)
	s.app.Post("/accounts/get", protected, s.handleGetAccount)
	s.app.Post("/accounts/transactions", protected, s.handleListTransactions)

	// 餘額
	s.app.Post("/balance/add", protected, s.handleAddBalance)
	s.app.Post("/balance/remove", protected, s.handleRemoveBalance)

	// 帳單
	s.app.Post("/debts/create", protected, s.handleCreateDebt)
	s.app.Post("/debts/get", protected, s.handleListDebts)
	s.app.Post("/debts/pay", protected, s.handlePayDebt)
}
