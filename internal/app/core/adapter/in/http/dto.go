package http

import (
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

var validate = validator.New()

// bindAndValidate 解析 JSON body 並跑 struct tag 驗證
// 失敗時直接寫好 400 回應，handler 收到 nil 就 return
func bindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, failJSON(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return nil, failJSON(c, fiber.StatusBadRequest, "missing or invalid fields: "+err.Error())
	}
	return &input, nil
}

// ---------- Requests ----------

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createAccountRequest struct {
	HolderName     string  `json:"holderName" validate:"required"`
	InitialBalance float64 `json:"initialBalance" validate:"gte=0"`
}

type accountRequest struct {
	AccountNumber string `json:"accountNumber" validate:"required"`
}

type balanceRequest struct {
	AccountNumber string  `json:"accountNumber" validate:"required"`
	Amount        float64 `json:"amount" validate:"required"`
	Description   string  `json:"description" validate:"required"`
}

type createDebtRequest struct {
	AccountNumber string  `json:"accountNumber" validate:"required"`
	Amount        float64 `json:"amount" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	DueDate       string  `json:"dueDate"`
}

type payDebtRequest struct {
	DebtID string `json:"debtId" validate:"required"`
}

// ---------- Responses ----------
// 對外欄位名稱沿用來源系統 (camelCase)；密碼雜湊永遠不出去

type userView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type accountView struct {
	ID            string    `json:"id"`
	AccountNumber string    `json:"accountNumber"`
	HolderName    string    `json:"holderName"`
	Balance       float64   `json:"balance"`
	UserID        string    `json:"userId"`
	CreatedAt     time.Time `json:"createdAt"`
}

type transactionView struct {
	ID          string    `json:"id"`
	FromAccount string    `json:"fromAccount"`
	ToAccount   string    `json:"toAccount,omitempty"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

type debtView struct {
	DebtID        string     `json:"debtId"`
	AccountNumber string     `json:"accountNumber"`
	UserID        string     `json:"userId"`
	Amount        float64    `json:"amount"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

func toUserView(u *domain.User) userView {
	return userView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func toAccountView(a *domain.Account) accountView {
	return accountView{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		HolderName:    a.HolderName,
		Balance:       a.Balance,
		UserID:        a.UserID,
		CreatedAt:     a.CreatedAt,
	}
}

func toAccountViews(accounts []*domain.Account) []accountView {
	views := make([]accountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, toAccountView(a))
	}
	return views
}

func toTransactionView(t *domain.Transaction) transactionView {
	return transactionView{
		ID:          t.ID,
		FromAccount: t.FromAccount,
		ToAccount:   t.ToAccount,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Description: t.Description,
		Timestamp:   t.Timestamp,
	}
}

func toTransactionViews(trans []*domain.Transaction) []transactionView {
	views := make([]transactionView, 0, len(trans))
	for _, t := range trans {
		views = append(views, toTransactionView(t))
	}
	return views
}

func toDebtView(d *domain.Debt) debtView {
	return debtView{
		DebtID:        d.DebtID,
		AccountNumber: d.AccountNumber,
		UserID:        d.UserID,
		Amount:        d.Amount,
		Description:   d.Description,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		DueDate:       d.DueDate,
		PaidAt:        d.PaidAt,
	}
}

func toDebtViews(debts []*domain.Debt) []debtView {
	views := make([]debtView, 0, len(debts))
	for _, d := range debts {
		views = append(views, toDebtView(d))
	}
	return views
}
