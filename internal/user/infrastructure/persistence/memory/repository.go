// Package memory 提供用户仓储的进程内实现
package memory

import (
	"context"
	"sync"

	"github.com/wyfcoding/motoparts/internal/user/domain"
)

// UserRepository 内存用户仓储
type UserRepository struct {
	mu     sync.RWMutex
	items  map[uint]domain.User
	nextID uint
}

// NewUserRepository 创建内存用户仓储
func NewUserRepository() *UserRepository {
	return &UserRepository{items: make(map[uint]domain.User), nextID: 1}
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	}
	r.items[user.ID] = *user
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
