package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

type User struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role,omitempty"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

type UpdateUserStatusRequest struct {
	Status UserStatus `json:"status" validate:"required,oneof=active inactive"`
}

// Claims is the subset of the server-issued token the client inspects.
type Claims struct {
	UserID int64  `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}
