package memory

import (
	"context"
	"sync"
	"time"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// storeRequest 請求包裝channel，讓呼叫端可以等待結果
// exec 會在單一寫入者迴圈裡執行，結果透過閉包帶出
type storeRequest struct {
	exec   func(state *bankState) error
	Result chan error // 呼叫端等這個 channel
}

// SerialStore 是單一寫入者迴圈實現的帳本 (Level 2, LMAX 風格)
// 所有操作 (包含讀取) 都排進同一條輸送帶，天生序列化，
// 不需要鎖也不可能觀察到只做一半的異動。
type SerialStore struct {
	state *bankState
	// 輸送帶 負責接收請求
	requestChan chan *storeRequest
	// Pool 減少 GC 壓力
	requestPool sync.Pool
}

// NewSerialStore 建立一個新的 SerialStore 實例
// 使用前必須呼叫 Start 啟動核心迴圈
func NewSerialStore() *SerialStore {
	return &SerialStore{
		state:       newBankState(),
		requestChan: make(chan *storeRequest, 1000), // Buffer 1000
		requestPool: sync.Pool{
			New: func() interface{} {
				return &storeRequest{
					Result: make(chan error, 1),
				}
			},
		},
	}
}

// Start 啟動核心引擎 (非同步)
func (s *SerialStore) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *SerialStore) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			// 收到關閉信號，把剩下的請求處理完
			s.drain()
			return
		case req := <-s.requestChan:
			req.Result <- req.exec(s.state)
		}
	}
}

func (s *SerialStore) drain() {
	for {
		select {
		case req := <-s.requestChan:
			req.Result <- req.exec(s.state)
		default:
			return
		}
	}
}

// submit 把操作送進輸送帶並等待結果
// submit(等待) -> Channel -> Run Loop (核心) -> State Update -> Result Channel -> submit(收到結果)
func (s *SerialStore) submit(exec func(state *bankState) error) error {
	req := s.requestPool.Get().(*storeRequest)
	req.exec = exec
	// 清空 Channel (雖然理論上應該是空的，但保險起見)
	select {
	case <-req.Result:
	default:
	}

	s.requestChan <- req
	err := <-req.Result
	s.requestPool.Put(req)
	return err
}

// CreateAccount 開戶
func (s *SerialStore) CreateAccount(ctx context.Context, ownerUserID, holderName string, initialBalance float64) (*domain.Account, error) {
	var account *domain.Account
	err := s.submit(func(state *bankState) (err error) {
		account, err = state.createAccount(ownerUserID, holderName, initialBalance)
		return err
	})
	return account, err
}

// FindAccount 依帳號 + 擁有者查帳戶
func (s *SerialStore) FindAccount(ctx context.Context, accountNumber, ownerUserID string) (*domain.Account, error) {
	var account *domain.Account
	err := s.submit(func(state *bankState) error {
		found, ok := state.findAccount(accountNumber, ownerUserID)
		if !ok {
			return domain.ErrAccountNotFound
		}
		account = copyAccount(found)
		return nil
	})
	return account, err
}

// ListAccounts 列出使用者的所有帳戶
func (s *SerialStore) ListAccounts(ctx context.Context, ownerUserID string) ([]*domain.Account, error) {
	var accounts []*domain.Account
	err := s.submit(func(state *bankState) error {
		accounts = state.listAccounts(ownerUserID)
		return nil
	})
	return accounts, err
}

// Deposit 存款
func (s *SerialStore) Deposit(ctx context.Context, accountNumber, ownerUserID string, amount float64, description string) (*domain.Transaction, float64, error) {
	var (
		tran    *domain.Transaction
		balance float64
	)
	err := s.submit(func(state *bankState) (err error) {
		tran, balance, err = state.deposit(accountNumber, ownerUserID, amount, description)
		return err
	})
	return tran, balance, err
}

// Withdraw 提款
func (s *SerialStore) Withdraw(ctx context.Context, accountNumber, ownerUserID string, amount float64, description string) (*domain.Transaction, float64, error) {
	var (
		tran    *domain.Transaction
		balance float64
	)
	err := s.submit(func(state *bankState) (err error) {
		tran, balance, err = state.withdraw(accountNumber, ownerUserID, amount, description)
		return err
	})
	return tran, balance, err
}

// ListTransactions 列出帳戶相關交易
func (s *SerialStore) ListTransactions(ctx context.Context, accountNumber, ownerUserID string) ([]*domain.Transaction, error) {
	var trans []*domain.Transaction
	err := s.submit(func(state *bankState) (err error) {
		trans, err = state.listTransactions(accountNumber, ownerUserID)
		return err
	})
	return trans, err
}

// CreateDebt 建立帳單
func (s *SerialStore) CreateDebt(ctx context.Context, accountNumber, ownerUserID string, amount float64, description string, dueDate *time.Time) (*domain.Debt, error) {
	var debt *domain.Debt
	err := s.submit(func(state *bankState) (err error) {
		debt, err = state.createDebt(accountNumber, ownerUserID, amount, description, dueDate)
		return err
	})
	return debt, err
}

// PayDebt 付帳單
func (s *SerialStore) PayDebt(ctx context.Context, debtID, ownerUserID string) (*domain.Debt, *domain.Transaction, float64, error) {
	var (
		debt    *domain.Debt
		tran    *domain.Transaction
		balance float64
	)
	err := s.submit(func(state *bankState) (err error) {
		debt, tran, balance, err = state.payDebt(debtID, ownerUserID)
		return err
	})
	return debt, tran, balance, err
}

// ListDebts 列出帳戶的帳單
func (s *SerialStore) ListDebts(ctx context.Context, accountNumber, ownerUserID string) ([]*domain.Debt, error) {
	var debts []*domain.Debt
	err := s.submit(func(state *bankState) (err error) {
		debts, err = state.listDebts(accountNumber, ownerUserID)
		return err
	})
	return debts, err
}

var _ usecase.Ledger = (*SerialStore)(nil)
