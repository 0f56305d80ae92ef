package client

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"

	dto "casino_client/internal/api/dto/auth"
	"casino_client/internal/model"
)

func (c *Client) Register(ctx context.Context, name, login, password string) error {
	var out dto.TokenResponse
	err := c.post(ctx, pathRegister, dto.RegisterRequest{
		Name:     name,
		Login:    login,
		Password: password,
	}, &out)
	if err != nil {
		return err
	}

	c.setToken(out.AccessToken, model.Profile{Login: login, Name: name})
	log.WithField("login", login).Info("registered")
	return nil
}

func (c *Client) Login(ctx context.Context, login, password string) error {
	var out dto.TokenResponse
	err := c.post(ctx, pathLogin, dto.LoginRequest{
		Login:    login,
		Password: password,
	}, &out)
	if err != nil {
		return err
	}

	profile := c.Profile()
	if profile.Login != login {
		profile = model.Profile{Login: login}
	}
	c.setToken(out.AccessToken, profile)
	log.WithField("login", login).Info("logged in")
	return nil
}

// Refresh получает новый access токен по cookies сессии
func (c *Client) Refresh(ctx context.Context) error {
	var out dto.TokenResponse
	if err := c.send(ctx, http.MethodPost, pathRefresh, nil, &out); err != nil {
		return err
	}
	c.setToken(out.AccessToken, c.Profile())
	log.Debug("access token refreshed")
	return nil
}

// Logout закрывает сессию. Локальный токен удаляется даже при ошибке сервера.
func (c *Client) Logout(ctx context.Context) error {
	err := c.send(ctx, http.MethodPost, pathLogout, nil, nil)
	c.clearToken()
	return err
}

// post - запрос к /auth/* без повторов и обновления токена
func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodPost, path, body, out)
}
