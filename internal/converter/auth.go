package converter

import (
	dto "casino_client/internal/api/dto/auth"
	"casino_client/internal/model"
)

func RegisterRequestToUser(req *dto.RegisterRequest) *model.User {
	return &model.User{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	}
}

func LoginRequestToUser(req *dto.LoginRequest) *model.User {
	return &model.User{
		Login:    req.Login,
		Password: req.Password,
	}
}
