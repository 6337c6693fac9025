//go:build unit || e2e

package builder

import (
	reqdto "library-service/internal/handler/dto/request"
)

type AuthBuilder struct {
	Username string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "librarian1",
		Password: "password123",
	}
}

func (a *AuthBuilder) With(username, password string) *AuthBuilder {
	a.Username = username
	a.Password = password
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}
