package memory

import (
	"context"
	"sync"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// UserStore 是使用者資料的 in-memory 實作
// 使用者資料與帳本互不擁有，所以用自己的鎖就夠了
type UserStore struct {
	mu   sync.RWMutex
	byID map[string]*domain.User
}

// NewUserStore 建立空白的 UserStore
func NewUserStore() *UserStore {
	return &UserStore{
		byID: make(map[string]*domain.User),
	}
}

// Add 新增使用者；email 重複回 ErrUserAlreadyExists
func (u *UserStore) Add(ctx context.Context, user *domain.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, existing := range u.byID {
		if existing.Email == user.Email {
			return domain.ErrUserAlreadyExists
		}
	}
	copied := *user
	u.byID[user.ID] = &copied
	return nil
}

// FindByEmail 依 email 查使用者 (線性掃描，規模小沒差)
func (u *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, user := range u.byID {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// FindByID 依 ID 查使用者
func (u *UserStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	user, ok := u.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

var _ usecase.UserRepository = (*UserStore)(nil)
