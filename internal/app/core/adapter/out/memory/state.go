package memory

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// bankState 是兩種引擎 (Mutex / Serial) 共用的核心狀態
// 本身不做任何同步，呼叫端負責確保同一時間只有一個寫入者。
// 所有回傳值都是拷貝，內部指標永遠不外流。
type bankState struct {
	// accounts: 帳號 → 帳戶；accountOrder 維持開戶順序供 List 使用
	accounts     map[string]*domain.Account
	accountOrder []string
	// debts: DebtID → 帳單；debtOrder 維持建立順序
	debts     map[string]*domain.Debt
	debtOrder []string
	// transactions: Append-only 交易日誌
	transactions []*domain.Transaction
	// 流水號計數器 (唯一性由它保證，帳號尾碼的隨機數只是顯示用)
	nextAccountSeq int
	nextDebtSeq    int
}

func newBankState() *bankState {
	return &bankState{
		accounts:       make(map[string]*domain.Account),
		debts:          make(map[string]*domain.Debt),
		transactions:   make([]*domain.Transaction, 0),
		nextAccountSeq: 1,
		nextDebtSeq:    1,
	}
}

// nextAccountNumber 產生新帳號：五位數流水號 + 隨機尾碼
// 尾碼 (0..8) 對唯一性沒有貢獻，純粹沿用來源系統的顯示格式
func (s *bankState) nextAccountNumber() string {
	number := fmt.Sprintf("%05d-%d", s.nextAccountSeq, rand.Intn(9))
	s.nextAccountSeq++
	return number
}

// nextDebtID 產生新帳單流水號，格式 "DEBT-%08d"
func (s *bankState) nextDebtID() string {
	id := fmt.Sprintf("DEBT-%08d", s.nextDebtSeq)
	s.nextDebtSeq++
	return id
}

func (s *bankState) createAccount(ownerUserID, holderName string, initialBalance float64) (*domain.Account, error) {
	if initialBalance < 0 {
		return nil, domain.ErrAmountMustBePositive
	}

	account := &domain.Account{
		ID:            uuid.NewString(),
		AccountNumber: s.nextAccountNumber(),
		HolderName:    holderName,
		Balance:       initialBalance,
		UserID:        ownerUserID,
		CreatedAt:     time.Now(),
	}
	s.accounts[account.AccountNumber] = account
	s.accountOrder = append(s.accountOrder, account.AccountNumber)

	return copyAccount(account), nil
}

// findAccount 依帳號 + 擁有者查內部帳戶指標
// 擁有者不符視同不存在，這裡就是授權邊界
func (s *bankState) findAccount(accountNumber, ownerUserID string) (*domain.Account, bool) {
	account, ok := s.accounts[accountNumber]
	if !ok || account.UserID != ownerUserID {
		return nil, false
	}
	return account, true
}

func (s *bankState) deposit(accountNumber, ownerUserID string, amount float64, description string) (*domain.Transaction, float64, error) {
	account, ok := s.findAccount(accountNumber, ownerUserID)
	if !ok {
		return nil, 0, domain.ErrAccountNotFound
	}

	if err := account.Deposit(amount); err != nil {
		return nil, 0, err
	}
	tran := s.appendTransaction(accountNumber, amount, domain.TransactionTypeDeposit, description)
	return tran, account.Balance, nil
}

func (s *bankState) withdraw(accountNumber, ownerUserID string, amount float64, description string) (*domain.Transaction, float64, error) {
	account, ok := s.findAccount(accountNumber, ownerUserID)
	if !ok {
		return nil, 0, domain.ErrAccountNotFound
	}

	if err := account.Withdraw(amount); err != nil {
		return nil, 0, err
	}
	tran := s.appendTransaction(accountNumber, amount, domain.TransactionTypeWithdraw, description)
	return tran, account.Balance, nil
}

func (s *bankState) createDebt(accountNumber, ownerUserID string, amount float64, description string, dueDate *time.Time) (*domain.Debt, error) {
	account, ok := s.findAccount(accountNumber, ownerUserID)
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if amount <= 0 {
		return nil, domain.ErrAmountMustBePositive
	}

	debt := &domain.Debt{
		DebtID:        s.nextDebtID(),
		AccountNumber: accountNumber,
		// 擁有者在建立當下從帳戶複製，之後付款就以這份為準
		UserID:      account.UserID,
		Amount:      amount,
		Description: description,
		Status:      domain.DebtStatusOpen,
		CreatedAt:   time.Now(),
		DueDate:     copyTime(dueDate),
	}
	s.debts[debt.DebtID] = debt
	s.debtOrder = append(s.debtOrder, debt.DebtID)

	return copyDebt(debt), nil
}

// payDebt 付帳單：所有前置檢查先做完，確定不會失敗後才開始異動，
// 扣款 + 標記已付 + 記錄交易因此是失敗原子的 (整段在同一個寫入者底下執行)
func (s *bankState) payDebt(debtID, ownerUserID string) (*domain.Debt, *domain.Transaction, float64, error) {
	debt, ok := s.debts[debtID]
	if !ok {
		return nil, nil, 0, domain.ErrDebtNotFound
	}
	if debt.UserID != ownerUserID {
		return nil, nil, 0, domain.ErrDebtNotAuthorized
	}
	if debt.Status == domain.DebtStatusPaid {
		return nil, nil, 0, domain.ErrDebtAlreadyPaid
	}

	// 帳單建立時就綁定擁有者，這裡查不到只可能是資料毀損
	account, ok := s.findAccount(debt.AccountNumber, ownerUserID)
	if !ok {
		return nil, nil, 0, domain.ErrAccountNotFound
	}

	if err := account.Withdraw(debt.Amount); err != nil {
		return nil, nil, 0, err
	}
	// 狀態已在上面檢查過，這裡不可能失敗
	if err := debt.MarkPaid(time.Now()); err != nil {
		return nil, nil, 0, err
	}
	tran := s.appendTransaction(debt.AccountNumber, debt.Amount, domain.TransactionTypePayment,
		fmt.Sprintf("payment of debt: %s", debt.Description))

	return copyDebt(debt), tran, account.Balance, nil
}

// appendTransaction 在日誌尾端新增一筆交易，回傳拷貝
func (s *bankState) appendTransaction(fromAccount string, amount float64, tranType domain.TransactionType, description string) *domain.Transaction {
	tran := &domain.Transaction{
		ID:          uuid.NewString(),
		FromAccount: fromAccount,
		Amount:      amount,
		Type:        tranType,
		Description: description,
		Timestamp:   time.Now(),
	}
	s.transactions = append(s.transactions, tran)

	copied := *tran
	return &copied
}

func (s *bankState) listAccounts(ownerUserID string) []*domain.Account {
	result := make([]*domain.Account, 0)
	for _, number := range s.accountOrder {
		account := s.accounts[number]
		if account.UserID == ownerUserID {
			result = append(result, copyAccount(account))
		}
	}
	return result
}

func (s *bankState) listTransactions(accountNumber, ownerUserID string) ([]*domain.Transaction, error) {
	if _, ok := s.findAccount(accountNumber, ownerUserID); !ok {
		return nil, domain.ErrAccountNotFound
	}

	result := make([]*domain.Transaction, 0)
	for _, tran := range s.transactions {
		if tran.FromAccount == accountNumber || tran.ToAccount == accountNumber {
			copied := *tran
			result = append(result, &copied)
		}
	}
	// 新到舊；同一時間戳維持寫入順序 (stable)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	return result, nil
}

func (s *bankState) listDebts(accountNumber, ownerUserID string) ([]*domain.Debt, error) {
	if _, ok := s.findAccount(accountNumber, ownerUserID); !ok {
		return nil, domain.ErrAccountNotFound
	}

	result := make([]*domain.Debt, 0)
	for _, id := range s.debtOrder {
		debt := s.debts[id]
		if debt.AccountNumber == accountNumber {
			result = append(result, copyDebt(debt))
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func copyAccount(account *domain.Account) *domain.Account {
	copied := *account
	return &copied
}

func copyDebt(debt *domain.Debt) *domain.Debt {
	copied := *debt
	copied.DueDate = copyTime(debt.DueDate)
	copied.PaidAt = copyTime(debt.PaidAt)
	return &copied
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}
