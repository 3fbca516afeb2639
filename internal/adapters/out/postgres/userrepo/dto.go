// Package userrepo persists user accounts.
package userrepo

import (
	"github.com/google/uuid"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
)

// UserDTO represents the database structure for persisting user aggregates.
// The city index backs the assignable-agents filter.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role         int       `gorm:"index"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Mobile       string
	City         string `gorm:"index"`
	PasswordHash string
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(user *account.User) UserDTO {
	return UserDTO{
		ID:           user.ID().Bytes(),
		Role:         int(user.Role()),
		Name:         user.Name(),
		Email:        user.Email(),
		Mobile:       user.Mobile(),
		City:         user.City(),
		PasswordHash: user.PasswordHash(),
	}
}

// toDomain converts a database row back to a user aggregate.
func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(
		id,
		account.Role(dto.Role),
		dto.Name,
		dto.Email,
		dto.Mobile,
		dto.City,
		dto.PasswordHash,
	)
}
