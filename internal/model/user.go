package model

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	OpenID       string    `gorm:"size:64;uniqueIndex;not null" json:"openId"`
	Name         string    `gorm:"size:100" json:"name"`
	Email        string    `gorm:"size:320" json:"email"`
	LoginMethod  string    `gorm:"size:64" json:"loginMethod"`
	Role         UserRole  `gorm:"size:16;not null;default:'user'" json:"role"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Identity 外部登录方提供的身份信息
type Identity struct {
	OpenID      string
	Name        string
	Email       string
	LoginMethod string
}
