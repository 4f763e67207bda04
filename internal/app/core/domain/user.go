package domain

import "time"

// User 使用者 (核心只引用，不擁有；開戶時確認存在性)
type User struct {
	// ID: 唯一識別碼 (UUID)
	ID string
	// Name: 顯示名稱
	Name string
	// Email: 登入帳號，全系統唯一
	Email string
	// PasswordHash: bcrypt 雜湊後的密碼，永遠不回傳給呼叫端
	PasswordHash string
	// CreatedAt: 建立時間
	CreatedAt time.Time
}
