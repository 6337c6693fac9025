package response

import (
	"library-service/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LoginResponse struct {
	Token    string    `json:"token"`
	StaffID  uuid.UUID `json:"staff_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

func FromLoginResult(r *usecase.LoginResult) (*LoginResponse, error) {
	var res LoginResponse
	if err := copier.Copy(&res, r); err != nil {
		return nil, err
	}
	return &res, nil
}
