// Package userrepo provides data transfer objects and mapping functions for
// operator-account persistence. It implements the repository pattern for the
// users table the dashboard authenticates against.
package userrepo

import (
	"orderboard/internal/core/domain/model/account"
)

// UserDTO represents the database structure for persisting operator accounts.
type UserDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
}

// TableName specifies the database table name for user entities.
// Overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain value to its database representation.
func fromDomain(user account.User) UserDTO {
	return UserDTO{
		ID:       user.ID(),
		Username: user.Username(),
		Password: user.Password(),
	}
}

// toDomain converts a database DTO to a user domain value.
func toDomain(dto UserDTO) (account.User, error) {
	return account.NewUser(dto.ID, dto.Username, dto.Password)
}
