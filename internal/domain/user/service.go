// internal/domain/user/service.go
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/lepetitmarche/storefront-api/internal/config"
	"gorm.io/gorm"
)

// Service handles user accounts
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new user service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// UpsertOAuthUser creates or refreshes an account from a verified
// OAuth profile and records the sign-in time.
func (s *Service) UpsertOAuthUser(ctx context.Context, provider, providerID, email, name, picture string) (*User, error) {
	now := time.Now().UTC()

	var u User
	err := s.db.WithContext(ctx).Where("provider = ? AND provider_id = ?", provider, providerID).First(&u).Error
	if err == gorm.ErrRecordNotFound {
		u = User{
			Email:      email,
			Name:       name,
			Picture:    picture,
			Provider:   provider,
			ProviderID: providerID,
			LastLogin:  &now,
		}
		if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return &u, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	updates := map[string]interface{}{
		"name":       name,
		"picture":    picture,
		"last_login": now,
	}
	if err := s.db.WithContext(ctx).Model(&u).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	u.Name = name
	u.Picture = picture
	u.LastLogin = &now

	return &u, nil
}

// GetUser returns a user by id
func (s *Service) GetUser(ctx context.Context, id uint) (*User, error) {
	var u User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &u, nil
}
