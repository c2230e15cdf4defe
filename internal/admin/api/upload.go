package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"PortfolioDesk/internal/service"
)

// Upload отправляет один файл в хранилище объектов через сервер и
// возвращает его публичный URL. Удовлетворяет интерфейсу Uploader
// контроллера формы.
func (c *Client) Upload(ctx context.Context, dir, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("dir", dir); err != nil {
		return "", err
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/assets", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: c.token})
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	var out struct {
		Key string `json:"key"`
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// Summary запрашивает сводку по таблицам для команды status.
func (c *Client) Summary(ctx context.Context) (service.Summary, error) {
	var out service.Summary
	err := c.do(ctx, http.MethodGet, "/api/admin/summary", nil, &out)
	return out, err
}
