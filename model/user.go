package model

import (
	"time"

	"github.com/decomizer/storefront/constant"
)

// UserEntity represents the users table entity
type UserEntity struct {
	ID           uint64        `db:"id" json:"id"`
	Name         string        `db:"name" json:"name"`
	Email        string        `db:"email" json:"email"`
	PhoneNumber  string        `db:"phone_number" json:"phoneNumber"`
	PasswordHash string        `db:"password_hash" json:"-"`
	Role         constant.Role `db:"role" json:"role"`
	CreatedAt    time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt    *time.Time    `db:"updated_at" json:"updatedAt,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID          uint64
	Email       string
	PhoneNumber string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name        string        `json:"name" validate:"required"`
	Email       string        `json:"email" validate:"required,simpleemail"`
	PhoneNumber string        `json:"phoneNumber" validate:"required,phone10"`
	Password    string        `json:"password" validate:"required,min=8"`
	Role        constant.Role `json:"role,omitempty" validate:"omitempty,oneof=client admin"`
}

// LoginRequest for user login (accepts email or phone)
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"` // email or phone
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Role  constant.Role `json:"role"`
	Token string        `json:"token"`
}

// PublicUser is a user without credentials.
type PublicUser struct {
	ID          uint64        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	PhoneNumber string        `json:"phoneNumber"`
	Role        constant.Role `json:"role"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   *time.Time    `json:"updatedAt,omitempty"`
}

func (u *UserEntity) Public() *PublicUser {
	return &PublicUser{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

type RegisterResponse struct {
	Success bool        `json:"success"`
	User    *PublicUser `json:"user"`
}
