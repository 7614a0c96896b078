package models

import (
	"jiwoo-back/types"
	"time"
)

type User struct {
	ID        int            `json:"id" gorm:"primaryKey;column:id"`
	Name      string         `json:"name" gorm:"column:name;size:100"`
	Email     string         `json:"email" gorm:"column:email;size:191;uniqueIndex"`
	Password  string         `json:"-" gorm:"column:password"`
	Provider  string         `json:"provider" gorm:"column:provider;size:20;not null"`
	SnsID     *string        `json:"snsId,omitempty" gorm:"column:sns_id;size:191;uniqueIndex"`
	UserRole  types.UserRole `json:"userRole" gorm:"column:user_role;size:20"`
	BirthDate *time.Time     `json:"birthDate" gorm:"column:birth_date;type:date"`
	Gender    string         `json:"gender" gorm:"column:gender;size:10"`
	PhoneNo   string         `json:"phoneNo" gorm:"column:phone_no;size:20"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (User) TableName() string {
	return "tbl_user"
}

const ProviderLocal = "local"

// UserSession is one login. The refresh token carries both the session and the
// token ID; with rotation on, only the latest token ID is accepted.
type UserSession struct {
	SessionID      string    `json:"sessionId" gorm:"primaryKey;column:session_id;size:36"`
	UserID         int       `json:"userId" gorm:"column:user_id;index"`
	RefreshTokenID int64     `json:"-" gorm:"column:refresh_token_id"`
	IPAddress      string    `json:"ipAddress" gorm:"column:ip_address;size:64"`
	UserAgent      string    `json:"userAgent" gorm:"column:user_agent;size:255"`
	IsActive       bool      `json:"isActive" gorm:"column:is_active"`
	ExpiresAt      time.Time `json:"expiresAt" gorm:"column:expires_at"`
	LastActivityAt time.Time `json:"lastActivityAt" gorm:"column:last_activity_at"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (UserSession) TableName() string {
	return "tbl_user_session"
}
