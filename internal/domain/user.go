// Package domain contains the core business entities and types.
package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account holder.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never expose password hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// CreateUserRequest represents the data needed to register a new user.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the data needed to open a session.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest represents the data needed for token refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UserResponse represents a user in API responses (without sensitive data).
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResponse converts a User to UserResponse.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Validate validates the create user request.
func (r *CreateUserRequest) Validate() error {
	if err := validateName(r.Name); err != nil {
		return fmt.Errorf("name: %w", err)
	}

	if err := validateEmail(r.Email); err != nil {
		return fmt.Errorf("email: %w", err)
	}

	if err := validatePassword(r.Password); err != nil {
		return fmt.Errorf("password: %w", err)
	}

	return nil
}

// Validate validates the login request.
func (r *LoginRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return fmt.Errorf("email: %w", err)
	}

	if r.Password == "" {
		return fmt.Errorf("password: password is required")
	}

	return nil
}

// Validate validates the refresh request.
func (r *RefreshRequest) Validate() error {
	if r.RefreshToken == "" {
		return fmt.Errorf("refresh_token: refresh token is required")
	}

	return nil
}

// validateName validates name presence and length.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}

	if len(name) > 100 {
		return fmt.Errorf("name must be at most 100 characters")
	}

	return nil
}

// validateEmail validates email format.
func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}

	if len(email) > 255 {
		return fmt.Errorf("email must be at most 255 characters")
	}

	// Basic email validation
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	return nil
}

// validatePassword validates password strength.
func validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}

	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	if len(password) > 72 { // bcrypt limit
		return fmt.Errorf("password must be at most 72 characters")
	}

	return nil
}
