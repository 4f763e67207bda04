package domain

import "time"

// Account 銀行帳戶
// 金額沿用來源系統的浮點數表示 (已知精度風險，見 DESIGN.md)，
// 不可擅自改成定點數，否則會改變可觀察的捨入行為。
type Account struct {
	// ID: 內部唯一識別碼 (UUID)
	ID string
	// AccountNumber: 對外帳號，格式 "%05d-%d" (流水號 + 非規範性的隨機尾碼)
	AccountNumber string
	// HolderName: 帳戶持有人名稱
	HolderName string
	// Balance: 餘額，任何操作完成後必須 >= 0
	Balance float64
	// UserID: 擁有者 (外部認證層給的 caller identity)
	UserID string
	// CreatedAt: 建立時間
	CreatedAt time.Time
}

// Deposit 存款
func (a *Account) Deposit(amount float64) error {
	if amount <= 0 {
		return ErrAmountMustBePositive
	}

	a.Balance = a.Balance + amount
	return nil
}

// Withdraw 提款 (餘額不足時拒絕，餘額永遠不會變成負數)
func (a *Account) Withdraw(amount float64) error {
	if amount <= 0 {
		return ErrAmountMustBePositive
	}

	if a.Balance < amount {
		return ErrInsufficientBalance
	}

	a.Balance = a.Balance - amount
	return nil
}
