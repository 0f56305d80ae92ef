// Package api - общие части HTTP обработчиков тестового сервера
package api

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"casino_client/internal/middleware"
	"casino_client/internal/service"
	"casino_client/pkg/resp"
)

// WriteError отвечает {"error": ...} со статусом по типу ошибки сервиса
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidAmount), errors.Is(err, service.ErrNotEnoughMoney):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, service.ErrSessionNotFound):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrUserExists):
		status = http.StatusConflict
	case errors.Is(err, service.ErrScriptExhausted):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}

// UserID - ID игрока из контекста. Без него отвечает 401 и возвращает false.
func UserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
	}
	return id, ok
}
