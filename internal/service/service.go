package service

import (
	"context"

	"casino_client/internal/api/dto/cascade"
	"casino_client/internal/api/dto/line"
	"casino_client/internal/model"
)

// LineSession - сессия игры 5x3. Все методы безопасны для вызова из разных горутин.
type LineSession interface {
	Spin(ctx context.Context) error
	BuyBonus(ctx context.Context) error
	SetBet(value int) bool
	SetTurbo(turbo bool) bool
	SetOnline(online bool) bool
	Deposit(ctx context.Context, amount int) error
	SyncBalance(ctx context.Context) error
	CanSpin() bool
	Snapshot() model.LineSnapshot
	Reset()
	Close()
}

// CascadeSession - сессия игры 7x7 с каскадами
type CascadeSession interface {
	Spin(ctx context.Context) error
	BuyBonus(ctx context.Context) error
	SetBet(value int) bool
	SetTurbo(turbo bool) bool
	SetOnline(online bool) bool
	Deposit(ctx context.Context, amount int) error
	SyncBalance(ctx context.Context) error
	CanSpin() bool
	Snapshot() model.CascadeSnapshot
	Reset()
	Close()

	// Управление анимацией каскада (вызывает слой отображения)
	CurrentStep() (model.CascadeStep, bool)
	UpdateBoardAfterCascade(board model.CascadeBoard) error
	NextCascadeStep() error
	FinishCascadeAnimation() error
	LastValidation() model.Validation
}

// RoundObserver получает каждый завершенный раунд (журнал, статистика)
type RoundObserver interface {
	ObserveRound(round model.Round)
}

// Сетевые коллабораторы сессий

type LineAPI interface {
	Spin(ctx context.Context, bet int) (*line.SpinResponse, error)
	BuyBonus(ctx context.Context, bet int) (*line.SpinResponse, error)
}

type CascadeAPI interface {
	Spin(ctx context.Context, bet int) (*cascade.SpinResponse, error)
	BuyBonus(ctx context.Context, amount int) error
}

type PayAPI interface {
	Balance(ctx context.Context) (int, error)
	Deposit(ctx context.Context, amount int) error
}

// Сервисы тестового сервера. userID берется из access токена.

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, user *model.User) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type PaymentService interface {
	Deposit(ctx context.Context, userID int, amount int) error
	GetBalance(ctx context.Context, userID int) (int, error)
}

// ScriptService отдает записанные ответы игр по очереди и ведет баланс игрока
type ScriptService interface {
	LineSpin(ctx context.Context, userID int, bet int) (*line.SpinResponse, error)
	LineBuyBonus(ctx context.Context, userID int, bet int) (*line.SpinResponse, error)
	CascadeSpin(ctx context.Context, userID int, bet int) (*cascade.SpinResponse, error)
	CascadeBuyBonus(ctx context.Context, userID int, amount int) error
}
