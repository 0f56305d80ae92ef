// Package client - HTTP шлюз клиента к игровому серверу.
//
// Access токен передается в заголовке Authorization, refresh_token и session_id
// живут в cookie jar. Токен обновляется заранее, если истекает в ближайшие
// refreshMargin, и один раз после 401.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"casino_client/internal/model"
	"casino_client/internal/repository"
	"casino_client/pkg/token"
)

const (
	refreshMargin = 10 * time.Second
	maxErrorBody  = 64 << 10

	pathRegister = "/auth/register"
	pathLogin    = "/auth/login"
	pathRefresh  = "/auth/refresh"
	pathLogout   = "/auth/logout"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Error - ответ сервера со статусом не 2xx
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server responded %d: %s", e.Status, e.Message)
}

// IsStatus - ошибка является ответом сервера с данным статусом
func IsStatus(err error, status int) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == status
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  repository.TokenRepository

	mu      sync.RWMutex
	token   string
	profile model.Profile

	refreshGroup singleflight.Group
}

// New создает клиента и поднимает сохраненный токен из tokens
func New(baseURL string, timeout time.Duration, tokens repository.TokenRepository) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout, Jar: jar},
		tokens:  tokens,
	}

	tok, profile, err := tokens.Load()
	switch {
	case err == nil:
		c.token, c.profile = tok, profile
	case errors.Is(err, repository.ErrNotFound):
	default:
		log.WithError(err).Warn("stored token ignored")
	}
	return c, nil
}

func (c *Client) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

func (c *Client) Profile() model.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profile
}

func (c *Client) accessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(tok string, profile model.Profile) {
	c.mu.Lock()
	c.token, c.profile = tok, profile
	c.mu.Unlock()

	if err := c.tokens.Save(tok, profile); err != nil {
		log.WithError(err).Warn("token not persisted")
	}
}

func (c *Client) clearToken() {
	c.mu.Lock()
	c.token, c.profile = "", model.Profile{}
	c.mu.Unlock()

	if err := c.tokens.Clear(); err != nil {
		log.WithError(err).Warn("stored token not removed")
	}
}

func isAuthPath(path string) bool {
	return strings.HasPrefix(path, "/auth/")
}

// do выполняет запрос к API игры: обновляет токен заранее и повторяет запрос один раз после 401
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		if body, err = json.Marshal(in); err != nil {
			return err
		}
	}

	if !isAuthPath(path) && c.expiresSoon() {
		if err := c.refreshOnce(ctx); err != nil {
			log.WithError(err).Debug("early token refresh failed")
		}
	}

	err := c.send(ctx, method, path, body, out)
	if isAuthPath(path) || !IsStatus(err, http.StatusUnauthorized) {
		return err
	}

	if rerr := c.refreshOnce(ctx); rerr != nil {
		log.WithError(rerr).Info("session expired")
		c.clearToken()
		return err
	}
	return c.send(ctx, method, path, body, out)
}

func (c *Client) expiresSoon() bool {
	tok := c.accessToken()
	if tok == "" {
		return false
	}
	exp, err := token.ExpiresAt(tok)
	if err != nil {
		return false
	}
	return time.Until(exp) < refreshMargin
}

// refreshOnce схлопывает одновременные обновления токена в один запрос
func (c *Client) refreshOnce(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		return nil, c.Refresh(ctx)
	})
	return err
}

func (c *Client) send(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.accessToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return readError(res)
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// readError берет текст из {"error": ...}, иначе тело ответа как есть
func readError(res *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))

	var body struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		msg = body.Error
	}
	if msg == "" {
		msg = http.StatusText(res.StatusCode)
	}
	return &Error{Status: res.StatusCode, Message: msg}
}
