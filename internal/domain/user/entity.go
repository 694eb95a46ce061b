// internal/domain/user/entity.go
package user

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account created through OAuth sign-in. No
// password is ever stored; identity comes from the provider.
type User struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Email      string         `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Name       string         `gorm:"size:255" json:"name"`
	Picture    string         `gorm:"size:500" json:"picture"`
	Provider   string         `gorm:"size:50;not null" json:"provider"`
	ProviderID string         `gorm:"uniqueIndex;size:255" json:"-"`
	LastLogin  *time.Time     `json:"last_login,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
