package domain

import (
	"errors"
)

const (
	RoleUser           = "user"
	RoleAdmin          = "admin"
	RoleAdminInventory = "admin_inventori"
	RoleAdminRecipe    = "admin_resep"
	RoleAdminUser      = "admin_user"
)

var (
	MesaageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseID        = errors.New("failed to parse ID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
)

// AuthContext is the caller identity resolved from the bearer token. It is
// passed explicitly into every service call that acts on behalf of a user.
type AuthContext struct {
	UserID uint
	Role   string
	Token  string
}

func (a AuthContext) IsAdmin() bool {
	return IsAdminRole(a.Role)
}

func IsAdminRole(role string) bool {
	switch role {
	case RoleAdmin, RoleAdminInventory, RoleAdminRecipe, RoleAdminUser:
		return true
	}
	return false
}

func IsValidRole(role string) bool {
	return role == RoleUser || IsAdminRole(role)
}
