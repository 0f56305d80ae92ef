package script

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"casino_client/internal/api/dto/cascade"
	"casino_client/internal/api/dto/line"
	"casino_client/internal/config"
	"casino_client/internal/repository"
	"casino_client/internal/service"
)

type serv struct {
	// Очереди общие для всех игроков, ответ выдается под мьютексом
	mu        sync.Mutex
	line      queue[line.SpinResponse]
	lineBonus queue[line.SpinResponse]
	cascade   queue[cascade.SpinResponse]

	txManager repository.TxManager
	userRepo  repository.UserRepository

	lineBonusMultiplier int
}

func NewService(
	cfg config.GameConfig,
	script *Script,
	txManager repository.TxManager,
	userRepo repository.UserRepository,
) service.ScriptService {
	return &serv{
		line:                queue[line.SpinResponse]{items: script.Line, loop: script.Loop},
		lineBonus:           queue[line.SpinResponse]{items: script.LineBonus, loop: script.Loop},
		cascade:             queue[cascade.SpinResponse]{items: script.Cascade, loop: script.Loop},
		txManager:           txManager,
		userRepo:            userRepo,
		lineBonusMultiplier: cfg.LineRules().BonusCostMultiplier,
	}
}

// LineSpin Спин линейной игры. Фриспин не списывает ставку.
func (s *serv) LineSpin(ctx context.Context, userID int, bet int) (*line.SpinResponse, error) {
	if bet <= 0 {
		return nil, service.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.line.peek()
	if !ok {
		return nil, fmt.Errorf("line spin: %w", service.ErrScriptExhausted)
	}
	debit := bet
	if next.InFreeSpin {
		debit = 0
	}

	balance, err := s.settle(ctx, userID, debit, next.TotalPayout)
	if err != nil {
		return nil, err
	}
	s.line.pop()

	next.Balance = balance
	log.WithFields(log.Fields{"user": userID, "bet": bet, "payout": next.TotalPayout, "balance": balance}).Debug("line spin")
	return &next, nil
}

// LineBuyBonus Покупка бонуса за bet*множитель, ответ - первый бонусный спин
func (s *serv) LineBuyBonus(ctx context.Context, userID int, bet int) (*line.SpinResponse, error) {
	if bet <= 0 {
		return nil, service.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.lineBonus.peek()
	if !ok {
		return nil, fmt.Errorf("line bonus: %w", service.ErrScriptExhausted)
	}

	balance, err := s.settle(ctx, userID, bet*s.lineBonusMultiplier, next.TotalPayout)
	if err != nil {
		return nil, err
	}
	s.lineBonus.pop()

	next.Balance = balance
	log.WithFields(log.Fields{"user": userID, "bet": bet, "free_spins": next.FreeSpinCount}).Info("line bonus bought")
	return &next, nil
}

func (s *serv) CascadeSpin(ctx context.Context, userID int, bet int) (*cascade.SpinResponse, error) {
	if bet <= 0 {
		return nil, service.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.cascade.peek()
	if !ok {
		return nil, fmt.Errorf("cascade spin: %w", service.ErrScriptExhausted)
	}
	debit := bet
	if next.InFreeSpin {
		debit = 0
	}

	balance, err := s.settle(ctx, userID, debit, next.TotalPayout)
	if err != nil {
		return nil, err
	}
	s.cascade.pop()

	next.Balance = balance
	log.WithFields(log.Fields{
		"user":     userID,
		"bet":      bet,
		"payout":   next.TotalPayout,
		"cascades": len(next.Cascades),
		"balance":  balance,
	}).Debug("cascade spin")
	return &next, nil
}

// CascadeBuyBonus Покупка бонуса каскадной игры только списывает сумму
func (s *serv) CascadeBuyBonus(ctx context.Context, userID int, amount int) error {
	if amount <= 0 {
		return service.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	balance, err := s.settle(ctx, userID, amount, 0)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"user": userID, "amount": amount, "balance": balance}).Info("cascade bonus bought")
	return nil
}

// settle списывает debit и начисляет credit одной транзакцией. Возвращает новый баланс.
func (s *serv) settle(ctx context.Context, userID int, debit, credit int) (int, error) {
	var balance int
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.userRepo.GetBalance(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return service.ErrUserNotFound
			}
			return err
		}
		if current < debit {
			return service.ErrNotEnoughMoney
		}

		balance = current - debit + credit
		return s.userRepo.UpdateBalance(ctx, userID, balance)
	})
	return balance, err
}
