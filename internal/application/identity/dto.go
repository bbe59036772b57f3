package identity

import (
	"time"

	"github.com/shopeasy/backend/internal/domain/identity"
)

// RegisterInput contains input for user registration
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput contains input for authentication
type LoginInput struct {
	Email    string
	Password string
}

// UserInfo represents user information in responses
type UserInfo struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// AuthResult is returned by both Register and Login
type AuthResult struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	TokenType   string    `json:"token_type"`
	User        UserInfo  `json:"user"`
}

// ToUserInfo converts a domain User to UserInfo
func ToUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
