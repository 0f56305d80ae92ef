package client

import (
	"context"
	"net/http"

	"casino_client/internal/api/dto/cascade"
	"casino_client/internal/api/dto/line"
	"casino_client/internal/api/dto/pay"
	"casino_client/internal/converter"
	"casino_client/internal/service"
)

type lineAPI struct{ c *Client }

// Line - сетевой коллаборатор сессии 5x3
func (c *Client) Line() service.LineAPI {
	return lineAPI{c: c}
}

func (a lineAPI) Spin(ctx context.Context, bet int) (*line.SpinResponse, error) {
	var out line.SpinResponse
	if err := a.c.do(ctx, http.MethodPost, "/line/spin", converter.ToLineSpinRequest(bet), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a lineAPI) BuyBonus(ctx context.Context, bet int) (*line.SpinResponse, error) {
	var out line.SpinResponse
	if err := a.c.do(ctx, http.MethodPost, "/line/buy-bonus", converter.ToLineBonusRequest(bet), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type cascadeAPI struct{ c *Client }

// Cascade - сетевой коллаборатор сессии 7x7
func (c *Client) Cascade() service.CascadeAPI {
	return cascadeAPI{c: c}
}

func (a cascadeAPI) Spin(ctx context.Context, bet int) (*cascade.SpinResponse, error) {
	var out cascade.SpinResponse
	if err := a.c.do(ctx, http.MethodPost, "/cascade/spin", converter.ToCascadeSpinRequest(bet), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a cascadeAPI) BuyBonus(ctx context.Context, amount int) error {
	return a.c.do(ctx, http.MethodPost, "/cascade/buy-bonus", converter.ToCascadeBonusRequest(amount), nil)
}

type payAPI struct{ c *Client }

func (c *Client) Pay() service.PayAPI {
	return payAPI{c: c}
}

func (a payAPI) Balance(ctx context.Context) (int, error) {
	var out pay.BalanceResponse
	if err := a.c.do(ctx, http.MethodGet, "/pay/balance", nil, &out); err != nil {
		return 0, err
	}
	return out.Balance, nil
}

func (a payAPI) Deposit(ctx context.Context, amount int) error {
	return a.c.do(ctx, http.MethodPost, "/pay/deposit", pay.DepositRequest{Amount: amount}, nil)
}
