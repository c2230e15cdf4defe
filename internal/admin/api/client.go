// Package api — HTTP-клиент консоли к серверу портфолио. Авторизация
// через cookie auth_token, тела запросов и ответов в JSON.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AuthCookieName совпадает с именем cookie на сервере.
const AuthCookieName = "auth_token"

// Client выполняет запросы к серверу от имени вошедшего пользователя.
type Client struct {
	base  string
	token string
	hc    *http.Client
}

// New создаёт клиент. token может быть пустым до входа.
func New(base, token string) *Client {
	return &Client{
		base:  strings.TrimRight(base, "/"),
		token: token,
		hc:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Token возвращает текущий токен сессии.
func (c *Client) Token() string { return c.token }

// do выполняет запрос: payload сериализуется в JSON, ответ с кодом
// 2xx декодируется в out (если out != nil), остальные коды — ошибка
// с текстом тела.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: c.token})
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// authCall шлёт логин и пароль и забирает токен сессии из Set-Cookie.
func (c *Client) authCall(ctx context.Context, path, login, password string) (string, error) {
	buf, err := json.Marshal(credentials{Login: login, Password: password})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(buf))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == AuthCookieName && ck.Value != "" {
			c.token = ck.Value
			return ck.Value, nil
		}
	}
	return "", fmt.Errorf("server did not set %s cookie", AuthCookieName)
}

// Register создаёт учётную запись и возвращает токен сессии.
func (c *Client) Register(ctx context.Context, login, password string) (string, error) {
	return c.authCall(ctx, "/api/user/register", login, password)
}

// Login входит и возвращает токен сессии.
func (c *Client) Login(ctx context.Context, login, password string) (string, error) {
	return c.authCall(ctx, "/api/user/login", login, password)
}

// Session проверяет токен и возвращает id пользователя.
func (c *Client) Session(ctx context.Context) (int64, error) {
	var out struct {
		UserID int64 `json:"user_id"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/user/session", nil, &out); err != nil {
		return 0, err
	}
	return out.UserID, nil
}

// Logout завершает сессию на сервере.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/user/logout", nil, nil)
}
