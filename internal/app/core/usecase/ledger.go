package usecase

import (
	"context"
	"time"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// Ledger 是帳務系統的介面 (Driven Port)
// 帳戶、帳單與交易紀錄的唯一擁有者；所有餘額與帳單狀態的異動都只能經過它。
// 複合操作 (Deposit/Withdraw/PayDebt) 必須是失敗原子的單一步驟：
// 驗證 → 異動 → 記錄交易，外部永遠觀察不到只做一半的狀態。
type Ledger interface {
	// CreateAccount 開戶，產生新帳號；initialBalance 不得為負
	CreateAccount(ctx context.Context, ownerUserID, holderName string, initialBalance float64) (*domain.Account, error)
	// FindAccount 依帳號 + 擁有者查帳戶；這就是授權邊界，
	// 只有帳號正確但擁有者不符時一樣回 ErrAccountNotFound
	FindAccount(ctx context.Context, accountNumber, ownerUserID string) (*domain.Account, error)
	// ListAccounts 列出使用者的所有帳戶 (依開戶順序)
	ListAccounts(ctx context.Context, ownerUserID string) ([]*domain.Account, error)

	// Deposit 存款，回傳交易紀錄與最新餘額
	Deposit(ctx context.Context, accountNumber, ownerUserID string, amount float64, description string) (*domain.Transaction, float64, error)
	// Withdraw 提款，餘額不足回 ErrInsufficientBalance
	Withdraw(ctx context.Context, accountNumber, ownerUserID string, amount float64, description string) (*domain.Transaction, float64, error)
	// ListTransactions 列出帳戶相關交易 (時間新到舊，同時間維持寫入順序)
	ListTransactions(ctx context.Context, accountNumber, ownerUserID string) ([]*domain.Transaction, error)

	// CreateDebt 建立帳單，產生流水號 DebtID
	CreateDebt(ctx context.Context, accountNumber, ownerUserID string, amount float64, description string, dueDate *time.Time) (*domain.Debt, error)
	// PayDebt 付帳單：扣款 + 標記已付 + 記錄交易，三者為同一個原子單位
	PayDebt(ctx context.Context, debtID, ownerUserID string) (*domain.Debt, *domain.Transaction, float64, error)
	// ListDebts 列出帳戶的帳單 (建立時間新到舊)
	ListDebts(ctx context.Context, accountNumber, ownerUserID string) ([]*domain.Debt, error)
}

// UserRepository 使用者資料介面 (核心只引用，不擁有)
type UserRepository interface {
	// Add 新增使用者；email 重複回 ErrUserAlreadyExists
	Add(ctx context.Context, user *domain.User) error
	// FindByEmail 依 email 查使用者
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID 依 ID 查使用者
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
