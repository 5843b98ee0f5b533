package userrepo

import (
	"context"
	"errors"

	"orderboard/internal/core/domain/model/account"
	"orderboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user and returns it with its database-assigned identifier.
func (r *GormUserRepository) Add(ctx context.Context, user account.User) (account.User, error) {
	if err := user.Validate(); err != nil {
		return account.User{}, err
	}

	dto := fromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return account.User{}, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves a user by login name.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (account.User, error) {
	if username == "" {
		return account.User{}, errs.NewValueIsRequiredError("username")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.User{}, errs.NewObjectNotFoundError("username", username)
		}
		return account.User{}, err
	}

	return toDomain(dto)
}
