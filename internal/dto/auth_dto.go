package dto

import (
	"time"

	"github.com/rafidhms/jobtrail/internal/model"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type AuthDTO struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

func NewUserDTO(u *model.User, withCreatedAt bool) UserDTO {
	out := UserDTO{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
	}
	if withCreatedAt {
		createdAt := u.CreatedAt
		out.CreatedAt = &createdAt
	}
	return out
}
