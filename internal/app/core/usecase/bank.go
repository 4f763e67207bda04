package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// dueDate 接受的格式：完整 RFC3339 或純日期
var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

// BankUseCase 是核心業務邏輯層
type BankUseCase struct {
	ledger Ledger
	users  UserRepository
	logger *slog.Logger
}

func NewBankUseCase(ledger Ledger, users UserRepository, logger *slog.Logger) *BankUseCase {
	return &BankUseCase{
		ledger: ledger,
		users:  users,
		logger: logger,
	}
}

// CreateAccount 開戶 (先確認使用者存在，再請 Ledger 產生帳號)
func (b *BankUseCase) CreateAccount(ctx context.Context, ownerUserID, holderName string, initialBalance float64) (*domain.Account, error) {
	if _, err := b.users.FindByID(ctx, ownerUserID); err != nil {
		return nil, err
	}

	account, err := b.ledger.CreateAccount(ctx, ownerUserID, holderName, initialBalance)
	if err != nil {
		return nil, err
	}
	b.logger.Info("account created",
		"accountNumber", account.AccountNumber,
		"userId", ownerUserID,
		"balance", account.Balance)
	return account, nil
}

// GetAccount 查詢單一帳戶 (限擁有者)
func (b *BankUseCase) GetAccount(ctx context.Context, accountNumber, ownerUserID string) (*domain.Account, error) {
	return b.ledger.FindAccount(ctx, accountNumber, ownerUserID)
}

// ListAccounts 列出使用者所有帳戶
func (b *BankUseCase) ListAccounts(ctx context.Context, ownerUserID string) ([]*domain.Account, error) {
	return b.ledger.ListAccounts(ctx, ownerUserID)
}

// Deposit 存款
func (b *BankUseCase) Deposit(ctx context.Context, accountNumber, ownerUserID string, amount float64, description string) (*domain.Transaction, float64, error) {
	tran, balance, err := b.ledger.Deposit(ctx, accountNumber, ownerUserID, amount, description)
	if err != nil {
		return nil, 0, err
	}
	b.logger.Info("balance added",
		"accountNumber", accountNumber,
		"amount", amount,
		"balance", balance)
	return tran, balance, nil
}

// Withdraw 提款
func (b *BankUseCase) Withdraw(ctx context.Context, accountNumber, ownerUserID string, amount float64, description string) (*domain.Transaction, float64, error) {
	tran, balance, err := b.ledger.Withdraw(ctx, accountNumber, ownerUserID, amount, description)
	if err != nil {
		return nil, 0, err
	}
	b.logger.Info("balance removed",
		"accountNumber", accountNumber,
		"amount", amount,
		"balance", balance)
	return tran, balance, nil
}

// ListTransactions 查詢帳戶交易紀錄
func (b *BankUseCase) ListTransactions(ctx context.Context, accountNumber, ownerUserID string) ([]*domain.Transaction, error) {
	return b.ledger.ListTransactions(ctx, accountNumber, ownerUserID)
}

// CreateDebt 建立帳單；dueDate 為空字串代表沒有到期日
func (b *BankUseCase) CreateDebt(ctx context.Context, accountNumber, ownerUserID string, amount float64, description, dueDate string) (*domain.Debt, error) {
	var due *time.Time
	if dueDate != "" {
		parsed, err := parseDueDate(dueDate)
		if err != nil {
			return nil, err
		}
		due = parsed
	}

	debt, err := b.ledger.CreateDebt(ctx, accountNumber, ownerUserID, amount, description, due)
	if err != nil {
		return nil, err
	}
	b.logger.Info("debt created",
		"debtId", debt.DebtID,
		"accountNumber", accountNumber,
		"amount", amount)
	return debt, nil
}

// PayDebt 付帳單
func (b *BankUseCase) PayDebt(ctx context.Context, debtID, ownerUserID string) (*domain.Debt, *domain.Transaction, float64, error) {
	debt, tran, balance, err := b.ledger.PayDebt(ctx, debtID, ownerUserID)
	if err != nil {
		return nil, nil, 0, err
	}
	b.logger.Info("debt paid",
		"debtId", debtID,
		"amount", debt.Amount,
		"balance", balance)
	return debt, tran, balance, nil
}

// ListDebts 查詢帳戶帳單
func (b *BankUseCase) ListDebts(ctx context.Context, accountNumber, ownerUserID string) ([]*domain.Debt, error) {
	return b.ledger.ListDebts(ctx, accountNumber, ownerUserID)
}

func parseDueDate(raw string) (*time.Time, error) {
	for _, layout := range dueDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}
	return nil, domain.ErrInvalidDueDate
}
