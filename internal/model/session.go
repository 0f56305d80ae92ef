package model

import "time"

// Session - сессия входа на тестовом сервере (cookie session_id)
type Session struct {
	ID           string
	UserID       int
	RefreshToken string // sha256-хэш
	ExpiresAt    time.Time
}

// Round - завершенный раунд для журнала и статистики
type Round struct {
	ID            string
	Game          string // "line" или "cascade"
	Bet           int
	Payout        int
	Balance       int
	FreeSpinsLeft int
	InFreeSpin    bool
	BoardValid    bool
	Board         any // Финальная доска в кодах сервера
	Cascades      []CascadeStep
	PlayedAt      time.Time
}
