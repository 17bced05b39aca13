// Package domain 包含用户的领域模型
package domain

import (
	"context"
	"errors"
)

// ErrUserNotFound 用户不存在
var ErrUserNotFound = errors.New("user not found")

// User 用户
// 当前没有任何路由使用该实体，仅保留 schema 与启动种子
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"column:username;type:varchar(255);uniqueIndex;not null" json:"username"`
	Password string `gorm:"column:password;type:varchar(255);not null" json:"-"`
}

func (User) TableName() string { return "users" }

// UserRepository 用户仓储接口
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
}
