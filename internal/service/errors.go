package service

import (
	"errors"

	"casino_client/internal/converter"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBusy              = errors.New("round in progress")
	ErrBonusActive       = errors.New("bonus game is active")
	ErrNotResolving      = errors.New("no cascade in progress")
	ErrInvalidAmount     = errors.New("amount must be positive")
	// ErrStale - ответ пришел после сброса сессии и отброшен
	ErrStale = errors.New("round was reset")
)

// Ошибки тестового сервера
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrInvalidPassword = errors.New("invalid password")
	ErrSessionNotFound = errors.New("session not found")
	ErrScriptExhausted = errors.New("script exhausted")
	ErrNotEnoughMoney  = errors.New("not enough balance")
)

// UserMessage - текст ошибки для показа игроку. nil дает пустую строку.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInsufficientFunds):
		return "Insufficient funds"
	case errors.Is(err, ErrBusy):
		return "Please wait for the current round to finish"
	case errors.Is(err, ErrBonusActive):
		return "Not available during the bonus game"
	case errors.Is(err, ErrInvalidAmount):
		return "Amount must be positive"
	case errors.Is(err, ErrStale):
		return ""
	case errors.Is(err, converter.ErrMalformedPayload), errors.Is(err, converter.ErrUnknownSymbol):
		return "Unexpected response from the server"
	}
	return "Request failed: " + err.Error()
}
