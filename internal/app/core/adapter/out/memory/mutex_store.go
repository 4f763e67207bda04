package memory

import (
	"context"
	"sync"
	"time"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// MutexStore 是一個使用 Mutex 實現的帳本 (Level 1)
//
// 結構:
//
//	state: 帳戶 / 帳單 / 交易日誌的核心狀態
//	mu: RWMutex 用於保護核心狀態
//
// 單一粗粒度鎖就足以涵蓋 PayDebt 這種跨兩個實體的操作，
// 也完全避開鎖順序造成的死鎖問題。
type MutexStore struct {
	state *bankState
	mu    sync.RWMutex
}

// NewMutexStore 建立一個新的 MutexStore 實例
//
// 回傳:
//
//	*MutexStore: 空白的 in-memory 帳本
func NewMutexStore() *MutexStore {
	return &MutexStore{
		state: newBankState(),
		mu:    sync.RWMutex{},
	}
}

// CreateAccount 開戶
//
// 參數:
//
//	ctx: 上下文
//	ownerUserID: 擁有者
//	holderName: 持有人名稱
//	initialBalance: 初始餘額，不得為負
//
// 回傳:
//
//	*domain.Account: 新帳戶 (拷貝)
//	error: 初始餘額為負時回 ErrAmountMustBePositive
func (m *MutexStore) CreateAccount(ctx context.Context, ownerUserID, holderName string, initialBalance float64) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.createAccount(ownerUserID, holderName, initialBalance)
}

// FindAccount 依帳號 + 擁有者查帳戶
//
// 參數:
//
//	ctx: 上下文
//	accountNumber: 帳號
//	ownerUserID: 擁有者
//
// 回傳:
//
//	*domain.Account: 帳戶快照 (拷貝)
//	error: 不存在或擁有者不符時回 ErrAccountNotFound
func (m *MutexStore) FindAccount(ctx context.Context, accountNumber, ownerUserID string) (*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	account, ok := m.state.findAccount(accountNumber, ownerUserID)
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return copyAccount(account), nil
}

// ListAccounts 列出使用者的所有帳戶 (開戶順序)
func (m *MutexStore) ListAccounts(ctx context.Context, ownerUserID string) ([]*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.listAccounts(ownerUserID), nil
}

// Deposit 存款：驗證 → 加值 → 記錄交易，整段持鎖執行
//
// 參數:
//
//	ctx: 上下文
//	accountNumber: 帳號
//	ownerUserID: 擁有者
//	amount: 金額 (> 0)
//	description: 交易描述
//
// 回傳:
//
//	*domain.Transaction: 本次交易紀錄
//	float64: 最新餘額
//	error: 處理錯誤
func (m *MutexStore) Deposit(ctx context.Context, accountNumber, ownerUserID string, amount float64, description string) (*domain.Transaction, float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.deposit(accountNumber, ownerUserID, amount, description)
}

// Withdraw 提款：驗證 → 扣款 → 記錄交易，整段持鎖執行
//
// 參數:
//
//	ctx: 上下文
//	accountNumber: 帳號
//	ownerUserID: 擁有者
//	amount: 金額 (> 0)
//	description: 交易描述
//
// 回傳:
//
//	*domain.Transaction: 本次交易紀錄
//	float64: 最新餘額
//	error: 處理錯誤 (如餘額不足)
func (m *MutexStore) Withdraw(ctx context.Context, accountNumber, ownerUserID string, amount float64, description string) (*domain.Transaction, float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.withdraw(accountNumber, ownerUserID, amount, description)
}

// ListTransactions 列出帳戶相關交易 (時間新到舊)
func (m *MutexStore) ListTransactions(ctx context.Context, accountNumber, ownerUserID string) ([]*domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.listTransactions(accountNumber, ownerUserID)
}

// CreateDebt 建立帳單
//
// 參數:
//
//	ctx: 上下文
//	accountNumber: 帳號
//	ownerUserID: 擁有者
//	amount: 金額 (> 0)
//	description: 帳單描述
//	dueDate: 到期日 (可為 nil)
//
// 回傳:
//
//	*domain.Debt: 新帳單 (status=open)
//	error: 處理錯誤
func (m *MutexStore) CreateDebt(ctx context.Context, accountNumber, ownerUserID string, amount float64, description string, dueDate *time.Time) (*domain.Debt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.createDebt(accountNumber, ownerUserID, amount, description, dueDate)
}

// PayDebt 付帳單：扣款 + 標記已付 + 記錄交易為同一個原子單位
//
// 參數:
//
//	ctx: 上下文
//	debtID: 帳單流水號
//	ownerUserID: 擁有者
//
// 回傳:
//
//	*domain.Debt: 更新後的帳單 (status=paid)
//	*domain.Transaction: 付款交易紀錄
//	float64: 最新餘額
//	error: 處理錯誤 (如已付清、餘額不足)
func (m *MutexStore) PayDebt(ctx context.Context, debtID, ownerUserID string) (*domain.Debt, *domain.Transaction, float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.payDebt(debtID, ownerUserID)
}

// ListDebts 列出帳戶的帳單 (建立時間新到舊)
func (m *MutexStore) ListDebts(ctx context.Context, accountNumber, ownerUserID string) ([]*domain.Debt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.listDebts(accountNumber, ownerUserID)
}

var _ usecase.Ledger = (*MutexStore)(nil)
