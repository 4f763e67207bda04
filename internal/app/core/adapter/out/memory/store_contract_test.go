package memory

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// 兩種引擎 (Mutex / Serial) 必須滿足完全相同的可觀察契約，
// 所以契約測試寫成共用函式，由各自的 _test 檔掛上來跑。
func testLedgerContract(t *testing.T, newStore func(t *testing.T) usecase.Ledger) {
	ctx := context.Background()

	t.Run("AccountNumberFormat", func(t *testing.T) {
		store := newStore(t)
		pattern := regexp.MustCompile(`^\d{5}-\d$`)

		first, err := store.CreateAccount(ctx, "user-a", "Alice", 0)
		require.NoError(t, err)
		second, err := store.CreateAccount(ctx, "user-a", "Alice", 0)
		require.NoError(t, err)

		// 流水號保證唯一，尾碼只是顯示用
		require.Regexp(t, pattern, first.AccountNumber)
		require.Regexp(t, pattern, second.AccountNumber)
		require.Equal(t, "00001", first.AccountNumber[:5])
		require.Equal(t, "00002", second.AccountNumber[:5])
		require.NotEqual(t, first.ID, second.ID)
	})

	t.Run("CreateAccountNegativeBalance", func(t *testing.T) {
		store := newStore(t)
		_, err := store.CreateAccount(ctx, "user-a", "Alice", -1)
		require.ErrorIs(t, err, domain.ErrAmountMustBePositive)
	})

	t.Run("CrossUserIsolation", func(t *testing.T) {
		store := newStore(t)
		account, err := store.CreateAccount(ctx, "user-b", "Bob", 100)
		require.NoError(t, err)

		// 帳號正確但擁有者不符，一律視同不存在
		_, err = store.FindAccount(ctx, account.AccountNumber, "user-a")
		require.ErrorIs(t, err, domain.ErrAccountNotFound)
		_, _, err = store.Deposit(ctx, account.AccountNumber, "user-a", 10, "sneaky")
		require.ErrorIs(t, err, domain.ErrAccountNotFound)
		_, err = store.ListTransactions(ctx, account.AccountNumber, "user-a")
		require.ErrorIs(t, err, domain.ErrAccountNotFound)
		_, err = store.ListDebts(ctx, account.AccountNumber, "user-a")
		require.ErrorIs(t, err, domain.ErrAccountNotFound)

		found, err := store.FindAccount(ctx, account.AccountNumber, "user-b")
		require.NoError(t, err)
		require.Equal(t, 100.0, found.Balance)
	})

	t.Run("DepositWithdraw", func(t *testing.T) {
		store := newStore(t)
		account, err := store.CreateAccount(ctx, "user-a", "Alice", 100)
		require.NoError(t, err)
		number := account.AccountNumber

		tran, balance, err := store.Deposit(ctx, number, "user-a", 50, "salary")
		require.NoError(t, err)
		require.Equal(t, 150.0, balance)
		require.Equal(t, domain.TransactionTypeDeposit, tran.Type)
		require.Equal(t, 50.0, tran.Amount)
		require.Equal(t, number, tran.FromAccount)

		tran, balance, err = store.Withdraw(ctx, number, "user-a", 30, "groceries")
		require.NoError(t, err)
		require.Equal(t, 120.0, balance)
		require.Equal(t, domain.TransactionTypeWithdraw, tran.Type)

		// 不合法金額：不留任何痕跡
		_, _, err = store.Deposit(ctx, number, "user-a", 0, "noop")
		require.ErrorIs(t, err, domain.ErrAmountMustBePositive)
		_, _, err = store.Withdraw(ctx, number, "user-a", -1, "noop")
		require.ErrorIs(t, err, domain.ErrAmountMustBePositive)

		trans, err := store.ListTransactions(ctx, number, "user-a")
		require.NoError(t, err)
		require.Len(t, trans, 2)

		found, err := store.FindAccount(ctx, number, "user-a")
		require.NoError(t, err)
		require.Equal(t, 120.0, found.Balance)
	})

	t.Run("WithdrawBoundary", func(t *testing.T) {
		store := newStore(t)
		account, err := store.CreateAccount(ctx, "user-a", "Alice", 100)
		require.NoError(t, err)
		number := account.AccountNumber

		// 多一點點就拒絕，而且不會留下交易紀錄
		_, _, err = store.Withdraw(ctx, number, "user-a", 100.01, "too much")
		require.ErrorIs(t, err, domain.ErrInsufficientBalance)
		trans, err := store.ListTransactions(ctx, number, "user-a")
		require.NoError(t, err)
		require.Empty(t, trans)

		// 剛好等於餘額可以提光
		_, balance, err := store.Withdraw(ctx, number, "user-a", 100, "all of it")
		require.NoError(t, err)
		require.Equal(t, 0.0, balance)
	})

	t.Run("DebtLifecycle", func(t *testing.T) {
		store := newStore(t)
		account, err := store.CreateAccount(ctx, "user-a", "Alice", 1000)
		require.NoError(t, err)
		number := account.AccountNumber

		debt, err := store.CreateDebt(ctx, number, "user-a", 500, "electricity", nil)
		require.NoError(t, err)
		require.Equal(t, "DEBT-00000001", debt.DebtID)
		require.Equal(t, domain.DebtStatusOpen, debt.Status)
		require.Equal(t, "user-a", debt.UserID)
		require.Nil(t, debt.PaidAt)

		// 帳單不存在 / 不是自己的 / 已付清
		_, _, _, err = store.PayDebt(ctx, "DEBT-99999999", "user-a")
		require.ErrorIs(t, err, domain.ErrDebtNotFound)
		_, _, _, err = store.PayDebt(ctx, debt.DebtID, "user-b")
		require.ErrorIs(t, err, domain.ErrDebtNotAuthorized)

		paid, tran, balance, err := store.PayDebt(ctx, debt.DebtID, "user-a")
		require.NoError(t, err)
		require.Equal(t, 500.0, balance)
		require.Equal(t, domain.DebtStatusPaid, paid.Status)
		require.NotNil(t, paid.PaidAt)
		require.Equal(t, domain.TransactionTypePayment, tran.Type)
		require.Equal(t, 500.0, tran.Amount)
		require.Contains(t, tran.Description, "electricity")

		// 再付一次一定失敗，餘額不動
		_, _, _, err = store.PayDebt(ctx, debt.DebtID, "user-a")
		require.ErrorIs(t, err, domain.ErrDebtAlreadyPaid)
		found, err := store.FindAccount(ctx, number, "user-a")
		require.NoError(t, err)
		require.Equal(t, 500.0, found.Balance)
	})

	t.Run("PayDebtInsufficientFunds", func(t *testing.T) {
		store := newStore(t)
		account, err := store.CreateAccount(ctx, "user-a", "Alice", 100)
		require.NoError(t, err)
		number := account.AccountNumber

		debt, err := store.CreateDebt(ctx, number, "user-a", 500, "rent", nil)
		require.NoError(t, err)

		// 付不起：帳單維持 open，餘額不動，沒有交易
		_, _, _, err = store.PayDebt(ctx, debt.DebtID, "user-a")
		require.ErrorIs(t, err, domain.ErrInsufficientBalance)

		debts, err := store.ListDebts(ctx, number, "user-a")
		require.NoError(t, err)
		require.Len(t, debts, 1)
		require.Equal(t, domain.DebtStatusOpen, debts[0].Status)

		trans, err := store.ListTransactions(ctx, number, "user-a")
		require.NoError(t, err)
		require.Empty(t, trans)
	})

	t.Run("CreateDebtInvalid", func(t *testing.T) {
		store := newStore(t)
		account, err := store.CreateAccount(ctx, "user-a", "Alice", 100)
		require.NoError(t, err)

		_, err = store.CreateDebt(ctx, "99999-9", "user-a", 10, "ghost", nil)
		require.ErrorIs(t, err, domain.ErrAccountNotFound)
		_, err = store.CreateDebt(ctx, account.AccountNumber, "user-a", 0, "free", nil)
		require.ErrorIs(t, err, domain.ErrAmountMustBePositive)
	})

	t.Run("ListOrdering", func(t *testing.T) {
		store := newStore(t)
		account, err := store.CreateAccount(ctx, "user-a", "Alice", 1000)
		require.NoError(t, err)
		number := account.AccountNumber

		for i := 0; i < 5; i++ {
			_, _, err := store.Deposit(ctx, number, "user-a", 10, fmt.Sprintf("deposit %d", i))
			require.NoError(t, err)
			_, err = store.CreateDebt(ctx, number, "user-a", 10, fmt.Sprintf("debt %d", i), nil)
			require.NoError(t, err)
		}

		trans, err := store.ListTransactions(ctx, number, "user-a")
		require.NoError(t, err)
		require.Len(t, trans, 5)
		for i := 1; i < len(trans); i++ {
			// 新到舊
			require.False(t, trans[i-1].Timestamp.Before(trans[i].Timestamp))
		}

		debts, err := store.ListDebts(ctx, number, "user-a")
		require.NoError(t, err)
		require.Len(t, debts, 5)
		for i := 1; i < len(debts); i++ {
			require.False(t, debts[i-1].CreatedAt.Before(debts[i].CreatedAt))
		}

		// 沒有異動時重複查詢結果順序一致
		again, err := store.ListTransactions(ctx, number, "user-a")
		require.NoError(t, err)
		for i := range trans {
			require.Equal(t, trans[i].ID, again[i].ID)
		}
		debtsAgain, err := store.ListDebts(ctx, number, "user-a")
		require.NoError(t, err)
		for i := range debts {
			require.Equal(t, debts[i].DebtID, debtsAgain[i].DebtID)
		}
	})

	// 完整流程：1000 → 存 500 → 提 2000 失敗 → 開帳單 500 → 付清 → 1000
	t.Run("EndToEndScenario", func(t *testing.T) {
		store := newStore(t)
		account, err := store.CreateAccount(ctx, "user-a", "Alice", 1000)
		require.NoError(t, err)
		number := account.AccountNumber

		_, balance, err := store.Deposit(ctx, number, "user-a", 500, "bonus")
		require.NoError(t, err)
		require.Equal(t, 1500.0, balance)

		_, _, err = store.Withdraw(ctx, number, "user-a", 2000, "car")
		require.ErrorIs(t, err, domain.ErrInsufficientBalance)
		found, err := store.FindAccount(ctx, number, "user-a")
		require.NoError(t, err)
		require.Equal(t, 1500.0, found.Balance)

		debt, err := store.CreateDebt(ctx, number, "user-a", 500, "internet", nil)
		require.NoError(t, err)

		paidDebt, _, balance, err := store.PayDebt(ctx, debt.DebtID, "user-a")
		require.NoError(t, err)
		require.Equal(t, 1000.0, balance)
		require.Equal(t, domain.DebtStatusPaid, paidDebt.Status)

		// 總共兩筆交易：一筆 deposit、一筆 payment
		trans, err := store.ListTransactions(ctx, number, "user-a")
		require.NoError(t, err)
		require.Len(t, trans, 2)

		_, _, _, err = store.PayDebt(ctx, debt.DebtID, "user-a")
		require.ErrorIs(t, err, domain.ErrDebtAlreadyPaid)
	})
}

// testConcurrentOverdraw 驗證並發搶提下餘額永遠不會變成負數，
// 而且成功的提款筆數與交易紀錄、餘額差完全對得上。
func testConcurrentOverdraw(t *testing.T, newStore func(t *testing.T) usecase.Ledger) {
	ctx := context.Background()
	store := newStore(t)

	account, err := store.CreateAccount(ctx, "user-a", "Alice", 100)
	require.NoError(t, err)
	number := account.AccountNumber

	const workers = 50
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, _, err := store.Withdraw(ctx, number, "user-a", 30, "race"); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// 100 / 30 → 只有 3 筆能成功
	require.Equal(t, 3, succeeded)

	found, err := store.FindAccount(ctx, number, "user-a")
	require.NoError(t, err)
	require.Equal(t, 10.0, found.Balance)
	require.GreaterOrEqual(t, found.Balance, 0.0)

	trans, err := store.ListTransactions(ctx, number, "user-a")
	require.NoError(t, err)
	require.Len(t, trans, succeeded)
}

// testConcurrentDeposits 並發存款一筆不漏
func testConcurrentDeposits(t *testing.T, newStore func(t *testing.T) usecase.Ledger) {
	ctx := context.Background()
	store := newStore(t)

	account, err := store.CreateAccount(ctx, "user-a", "Alice", 0)
	require.NoError(t, err)
	number := account.AccountNumber

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _, err := store.Deposit(ctx, number, "user-a", 1, "drip")
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	found, err := store.FindAccount(ctx, number, "user-a")
	require.NoError(t, err)
	require.Equal(t, float64(workers), found.Balance)

	trans, err := store.ListTransactions(ctx, number, "user-a")
	require.NoError(t, err)
	require.Len(t, trans, workers)
}
