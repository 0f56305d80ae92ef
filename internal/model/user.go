package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// User - игрок тестового сервера
type User struct {
	ID       int
	Name     string
	Login    string
	Password string // bcrypt-хэш
	Balance  int
}

// Profile - запись о пользователе, которую клиент хранит локально вместе с токеном
type Profile struct {
	Login string `yaml:"login"`
	Name  string `yaml:"name,omitempty"`
}

type UserClaims struct {
	jwt.RegisteredClaims
}

// AuthData - результат входа/регистрации
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
