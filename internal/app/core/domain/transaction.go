package domain

import "time"

// TransactionType 交易類型 (對外 JSON 直接輸出字串)
type TransactionType string

const (
	// 存款
	TransactionTypeDeposit TransactionType = "deposit"
	// 提款
	TransactionTypeWithdraw TransactionType = "withdraw"
	// 繳費 (支付帳單)
	TransactionTypePayment TransactionType = "payment"
	// 借記 / 貸記：資料模型保留，目前沒有任何操作會產生
	TransactionTypeDebit  TransactionType = "debit"
	TransactionTypeCredit TransactionType = "credit"
)

// Transaction 交易紀錄
// Append-only：每次成功的餘額異動恰好產生一筆，之後不再修改、不會刪除。
type Transaction struct {
	// ID: 外部追蹤號 (UUID)
	ID string
	// FromAccount: 異動的帳號
	FromAccount string
	// ToAccount: 轉入帳號。資料模型保留，目前沒有操作會填值 (Optional)
	ToAccount string
	// Amount: 金額，恆為正數；方向由 Type 決定
	Amount float64
	// Type: 交易類型
	Type TransactionType
	// Description: 呼叫端附帶的描述
	Description string
	// Timestamp: 交易時間
	Timestamp time.Time
}
