package domain

import "errors"

var (
	// ErrAmountMustBePositive 金額必須為正數
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrInsufficientBalance 餘額不足
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAccountNotFound 找不到帳戶 (不存在，或存在但不屬於呼叫者)
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidDueDate 到期日格式無法解析
	ErrInvalidDueDate = errors.New("invalid due date")

	// ErrDebtNotFound 找不到帳單
	ErrDebtNotFound = errors.New("debt not found")

	// ErrDebtNotAuthorized 帳單存在但屬於別的使用者
	ErrDebtNotAuthorized = errors.New("debt not authorized")

	// ErrDebtAlreadyPaid 帳單已付清
	ErrDebtAlreadyPaid = errors.New("debt already paid")

	// ErrUserNotFound 找不到使用者
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists 使用者已存在 (email 重複)
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials 帳號或密碼錯誤
	ErrInvalidCredentials = errors.New("invalid credentials")
)
