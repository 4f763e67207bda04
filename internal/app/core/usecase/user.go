package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// AuthConfig JWT 與密碼雜湊的設定
type AuthConfig struct {
	// JWTSecret: 簽發 token 的密鑰
	JWTSecret string `yaml:"jwtSecret"`
	// TokenTTL: token 有效期限 (預設 7 天，沿用來源系統)
	TokenTTL time.Duration `yaml:"tokenTTL"`
	// BcryptCost: bcrypt cost，0 表示用套件預設值
	BcryptCost int `yaml:"bcryptCost"`
}

// UserUseCase 使用者註冊 / 登入 / 查詢
type UserUseCase struct {
	users  UserRepository
	cfg    AuthConfig
	logger *slog.Logger
}

func NewUserUseCase(users UserRepository, cfg AuthConfig, logger *slog.Logger) *UserUseCase {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 7 * 24 * time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &UserUseCase{
		users:  users,
		cfg:    cfg,
		logger: logger,
	}
}

// Register 註冊新使用者；email 重複回 ErrUserAlreadyExists
func (u *UserUseCase) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}
	if err := u.users.Add(ctx, user); err != nil {
		return nil, err
	}

	u.logger.Info("user registered", "userId", user.ID, "email", email)
	return user, nil
}

// Login 驗證帳密並簽發 JWT (sub = userID)
// 找不到使用者與密碼錯誤都回 ErrInvalidCredentials，避免帳號枚舉
func (u *UserUseCase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(u.cfg.TokenTTL)),
	})
	signed, err := token.SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return nil, "", err
	}

	u.logger.Info("user logged in", "userId", user.ID)
	return user, signed, nil
}

// GetByID 查詢使用者
func (u *UserUseCase) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return u.users.FindByID(ctx, id)
}
