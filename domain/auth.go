package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the closed set of account kinds. Each role owns its own credential table.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleChef     Role = "chef"
	RoleAdmin    Role = "admin"
)

var roleTables = map[Role]string{
	RoleEmployee: "employees",
	RoleChef:     "chefs",
	RoleAdmin:    "admins",
}

// Roles lists every role in a stable order.
func Roles() []Role {
	return []Role{RoleEmployee, RoleChef, RoleAdmin}
}

// ParseRole accepts only the known roles; anything else is ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roleTables[r]; !ok {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Table returns the credential table of the role.
func (r Role) Table() string {
	return roleTables[r]
}

var (
	MessageSuccessSignup = "User created successfully"
	MessageSuccessLogin  = "Login successful"

	MessageFailedSignup        = "An error occurred during signup"
	MessageFailedLogin         = "An error occurred during login"
	MessageMissingSignupFields = "Missing required fields (email, password, role, name)"
	MessageMissingLoginFields  = "Missing required fields (email, password, role)"
	MessageInvalidRole         = "Invalid role specified"
	MessageUserAlreadyExists   = "User with this email already exists"
	MessageInvalidCredentials  = "Invalid credentials"

	ErrInvalidRole         = errors.New("invalid role")
	ErrUserAlreadyExists   = errors.New("user with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrMissingSignupFields = errors.New("missing required fields")
)

type (
	SignupRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Role     string `json:"role" validate:"required"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
		Role     string `json:"role" validate:"required"`
	}

	UserResponse struct {
		ID        string    `json:"_id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      Role      `json:"role"`
		CreatedAt time.Time `json:"createdAt"`
	}

	LoginResponse struct {
		User  UserResponse `json:"user"`
		Token string       `json:"token"`
	}
)
