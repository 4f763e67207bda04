package domain

import "time"

// DebtStatus 帳單狀態，只允許 open → paid 單向轉移
type DebtStatus string

const (
	DebtStatusOpen DebtStatus = "open"
	DebtStatusPaid DebtStatus = "paid"
)

// Debt 帳單 (invoice)，掛在某個帳戶底下，付清前一直是 open
type Debt struct {
	// DebtID: 系統產生的流水號，格式 "DEBT-%08d"
	DebtID string
	// AccountNumber: 所屬帳號
	AccountNumber string
	// UserID: 擁有者，建立時從帳戶複製下來
	UserID string
	// Amount: 金額，恆為正數
	Amount float64
	// Description: 帳單描述
	Description string
	// Status: open 或 paid
	Status DebtStatus
	// CreatedAt: 建立時間
	CreatedAt time.Time
	// DueDate: 到期日 (Optional)
	DueDate *time.Time
	// PaidAt: 付清時間，若且唯若 Status == paid 才會有值
	PaidAt *time.Time
}

// MarkPaid 把帳單標記為已付清並蓋上 PaidAt
// 已付清的帳單不允許再轉移 (open → paid 單向)
func (d *Debt) MarkPaid(now time.Time) error {
	if d.Status == DebtStatusPaid {
		return ErrDebtAlreadyPaid
	}

	d.Status = DebtStatusPaid
	d.PaidAt = &now
	return nil
}
