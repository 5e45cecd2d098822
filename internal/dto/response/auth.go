package response

import (
	"letterhead-service/internal/data/entity"
	"letterhead-service/pkg/utils"
)

// UserSummary is the only user shape returned to clients.
type UserSummary struct {
	Name  *string `json:"name"`
	Email string  `json:"email"`
}

type RegisterResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

type VerifyTokenResponse struct {
	Message string             `json:"message"`
	User    *utils.TokenClaims `json:"user"`
}

func UserToSummary(user *entity.User) UserSummary {
	return UserSummary{
		Name:  user.Name,
		Email: user.Email,
	}
}
