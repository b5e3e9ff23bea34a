package dto

import "github.com/jhoicas/ecomicro/internal/domain/entity"

// CreateUserRequest entrada para registrar un usuario.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUserResponse mapea la entidad al DTO.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
