package dto

import (
	"encoding/json"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
)

// LoginRequest credenciales para POST /api/auth.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token firmado + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserRequest actualización parcial del perfil. El password se cambia
// solo con la CLI usermgr, nunca por la API.
type UpdateUserRequest struct {
	DisplayName *string         `json:"displayName"`
	Email       *string         `json:"email"`
	Avatar      *string         `json:"avatar"`
	Preferences json.RawMessage `json:"preferences"`
}

// UserResponse vista pública de un usuario (sin hash de password).
type UserResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"displayName"`
	Avatar      *string `json:"avatar"`
}

// UserDetailResponse vista extendida (perfil propio / tras actualizar).
type UserDetailResponse struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	DisplayName string          `json:"displayName"`
	Email       *string         `json:"email"`
	Avatar      *string         `json:"avatar"`
	Preferences json.RawMessage `json:"preferences"`
}

func UserResponseFrom(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Avatar:      u.Avatar,
	}
}

func UserDetailResponseFrom(u *entity.User) UserDetailResponse {
	prefs := u.Preferences
	if len(prefs) == 0 {
		prefs = json.RawMessage(`{}`)
	}
	return UserDetailResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Avatar:      u.Avatar,
		Preferences: prefs,
	}
}
