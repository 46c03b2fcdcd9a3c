//go:build unit || e2e

package builder

import (
	"roomfinder/internal/domain/user"
	reqdto "roomfinder/internal/handler/dto/request"
)

type AuthBuilder struct {
	FullName string
	Email    string
	Password string
	Role     string
	Phone    string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		FullName: "Test Taker",
		Email:    "test@example.com",
		Password: "password123",
		Role:     string(user.RoleTaker),
		Phone:    "+91 98765 43210",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO()reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildCredentials() (user.Credentials, error) {
	return user.NewCredentials(a.Email, a.Password)
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		FullName: a.FullName,
		Email:    a.Email,
		Password: a.Password,
		Role:     a.Role,
		Phone:    a.Phone,
	}
}
