package dto

import "github.com/aaryan/councilhub/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// RoleResponse reports the caller's role
type RoleResponse struct {
	Role models.UserRole `json:"role" example:"user"`
}

// AdminCheckResponse reports whether the caller is an admin
type AdminCheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// AssignRoleRequest assigns a role to a user (admin only)
type AssignRoleRequest struct {
	Role models.UserRole `json:"role" binding:"required,oneof=admin user"`
}

// SaveProfileRequest saves the caller's profile singleton
type SaveProfileRequest struct {
	Name   string  `json:"name" binding:"required"`
	Branch *string `json:"branch,omitempty"`
	Year   *string `json:"year,omitempty"`
	Skills *string `json:"skills,omitempty"`
}
