package dto

import (
	"time"

	"github.com/tweetapp/tweet-service/internal/domain"
)

// RegisterRequest payload for new accounts. DateOfBirth is the raw
// dd-MM-yyyy string; parsing happens in the service layer.
type RegisterRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Gender          string `json:"gender"`
	DateOfBirth     string `json:"date_of_birth"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest payload for the unauthenticated reset flow.
type ResetPasswordRequest struct {
	Email           string `json:"email"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ChangePasswordRequest payload for the authenticated change flow.
type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse is the public view of an account. The password hash never
// leaves the service.
type UserResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Email       string `json:"email"`
	LoggedIn    bool   `json:"logged_in"`
}

// NewUserResponse maps a domain user to its public view.
func NewUserResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Gender:    string(user.Gender),
		Email:     user.Email,
		LoggedIn:  user.LoggedIn,
	}
	if user.DateOfBirth != nil {
		resp.DateOfBirth = user.DateOfBirth.Format("02-01-2006")
	}
	return resp
}
