package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister    = "user registered successfully"
	MessageSuccessLogin       = "login successful"
	MessageSuccessGetUsers    = "users retrieved successfully"
	MessageSuccessDeleteUser  = "user deleted successfully"
	MessageSuccessPromoteUser = "user role updated successfully"
	MessageSuccessGetLogs     = "login logs retrieved successfully"
	MessageSuccessGetMe       = "user retrieved successfully"

	MessageFailedRegister    = "failed to register user"
	MessageFailedLogin       = "failed to login"
	MessageFailedGetUsers    = "failed to retrieve users"
	MessageFailedDeleteUser  = "failed to delete user"
	MessageFailedPromoteUser = "failed to update user role"
	MessageFailedGetLogs     = "failed to retrieve login logs"
	MessageFailedGetMe       = "failed to retrieve user"

	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrCannotDeleteSelf   = errors.New("cannot delete your own account")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=100"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UserResponse struct {
		ID                   uint   `json:"id"`
		Username             string `json:"username"`
		Email                string `json:"email"`
		Role                 string `json:"role"`
		NotificationsEnabled bool   `json:"notifications_enabled"`
	}

	PromoteUserRequest struct {
		UserID uint   `json:"user_id" validate:"required"`
		Role   string `json:"role" validate:"required"`
	}

	LoginLogResponse struct {
		ID        uint      `json:"id"`
		Username  string    `json:"username"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		LoginTime time.Time `json:"login_time"`
		IPAddress string    `json:"ip_address"`
	}
)
