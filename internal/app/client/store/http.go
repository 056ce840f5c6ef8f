package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/config"
	"notekeeper/internal/domain/activity"
	"notekeeper/internal/domain/document"
	"notekeeper/internal/domain/user"
)

// HTTPClient ходит на сервер notekeeper. Документ читается и пишется
// только целиком.
type HTTPClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *HTTPClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &HTTPClient{
		client:    client,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "Notekeeper-Client/1.0",
	}
}

// SetToken устанавливает токен аутентификации
func (h *HTTPClient) SetToken(token string) {
	h.token = token
}

// HealthCheck проверяет доступность сервера
func (h *HTTPClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
	}
	return nil
}

// Read загружает документ пользователя с сервера.
func (h *HTTPClient) Read(ctx context.Context) (document.Document, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/document", nil)
	if err != nil {
		return document.Document{}, err
	}

	var doc document.Document
	if err := h.parseResponse(resp, &doc); err != nil {
		return document.Document{}, err
	}
	return doc, nil
}

// Write заменяет документ целиком и возвращает сохраненное сервером эхо.
func (h *HTTPClient) Write(ctx context.Context, doc document.Document) (document.Document, error) {
	resp, err := h.doRequest(ctx, http.MethodPut, "/api/v1/document", doc)
	if err != nil {
		return document.Document{}, err
	}

	var stored document.Document
	if err := h.parseResponse(resp, &stored); err != nil {
		return document.Document{}, err
	}
	return stored, nil
}

func (h *HTTPClient) Login(ctx context.Context, login, password string) (string, error) {
	req := user.BaseRequest{Login: login, Password: password}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req)
	if err != nil {
		return "", err
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	h.token = loginResp.Token
	return loginResp.Token, nil
}

func (h *HTTPClient) Register(ctx context.Context, login, password string) error {
	req := user.BaseRequest{Login: login, Password: password}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

// ReportActivity отмечает посетителя в журнале активности.
func (h *HTTPClient) ReportActivity(ctx context.Context, username string) error {
	req := struct {
		Username string `json:"username"`
	}{Username: username}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/v1/activity", req)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

// ActivitySnapshot возвращает счетчик активных и последних посетителей.
func (h *HTTPClient) ActivitySnapshot(ctx context.Context) (int, []activity.Entry, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/activity", nil)
	if err != nil {
		return 0, nil, err
	}

	var snap struct {
		ActiveCount int              `json:"activeCount"`
		Latest      []activity.Entry `json:"latest"`
	}
	if err := h.parseResponse(resp, &snap); err != nil {
		return 0, nil, err
	}
	return snap.ActiveCount, snap.Latest, nil
}

func (h *HTTPClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	return resp, nil
}

func (h *HTTPClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ", "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			switch {
			case errResp.Error != "":
				return fmt.Errorf("ошибка сервера: %s", errResp.Error)
			case errResp.Detail != "":
				return fmt.Errorf("ошибка сервера: %s", errResp.Detail)
			}
		}
		return fmt.Errorf("ошибка сервера: статус %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}
	return nil
}
