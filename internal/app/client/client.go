package client

import (
	"context"
	"fmt"
	"os"
	"strings"
	gosync "sync"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/config"
	"notekeeper/internal/app/client/lock"
	"notekeeper/internal/app/client/session"
	"notekeeper/internal/app/client/store"
	"notekeeper/internal/domain/activity"
)

// App собирает клиент: конфигурацию, хранилища, движок блокировки и
// сессию работы с заметками.
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *store.HTTPClient
	cache      *store.SnapshotCache
	bridge     *store.Bridge

	engine     *lock.Engine
	workspace  *session.Workspace
	controller *session.Controller

	login         string
	authenticated bool
	mu            gosync.RWMutex
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl := store.NewHTTPClient(cfg, log)

	// Кэш не критичен: при ошибке работаем без офлайн-резерва.
	cache, err := store.NewSnapshotCache(cfg.CachePath)
	if err != nil {
		log.Warn("Не удалось открыть кэш снимков, работаем без него", "error", err)
		cache = nil
	}

	bridge := store.NewBridge(httpCl, cache, log)
	engine := lock.NewEngine(log)
	ws := session.NewWorkspace(bridge, log)

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		cache:      cache,
		bridge:     bridge,
		engine:     engine,
		workspace:  ws,
	}

	notify := func(message string) {
		fmt.Fprintln(os.Stderr, message)
	}
	app.controller = session.NewController(ws, engine, cfg.AutoSaveDelay, notify, log)

	// Загружаем токен если он есть
	if token, err := app.loadToken(); err == nil && token != "" {
		httpCl.SetToken(token)
		app.authenticated = true
		log.Debug("Токен загружен из файла")
	}

	return app, nil
}

func (a *App) Workspace() *session.Workspace   { return a.workspace }
func (a *App) Controller() *session.Controller { return a.controller }
func (a *App) Engine() *lock.Engine            { return a.engine }
func (a *App) Config() *config.Config          { return a.config }

// IsAuthenticated проверяет наличие токена.
func (a *App) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authenticated
}

// CheckConnection проверяет соединение с сервером.
func (a *App) CheckConnection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return a.httpClient.HealthCheck(ctx)
}

// Login аутентифицируется на сервере и сохраняет токен.
func (a *App) Login(ctx context.Context, login, password string) error {
	token, err := a.httpClient.Login(ctx, login, password)
	if err != nil {
		return err
	}

	if err := a.saveToken(token); err != nil {
		return fmt.Errorf("сохранение токена: %w", err)
	}

	a.mu.Lock()
	a.login = login
	a.authenticated = true
	a.mu.Unlock()

	// Отмечаемся в журнале активности; отказ не мешает входу.
	if err := a.httpClient.ReportActivity(ctx, login); err != nil {
		a.log.Debug("не удалось отметить активность", "error", err)
	}

	a.log.Info("вход выполнен", "login", login)
	return nil
}

// Register создает аккаунт на сервере.
func (a *App) Register(ctx context.Context, login, password string) error {
	return a.httpClient.Register(ctx, login, password)
}

// Logout стирает токен и локальную сессию.
func (a *App) Logout() error {
	a.mu.Lock()
	a.login = ""
	a.authenticated = false
	a.mu.Unlock()

	a.httpClient.SetToken("")
	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("удаление токена: %w", err)
	}
	return nil
}

// OpenSession загружает документ и готовит рабочее пространство.
func (a *App) OpenSession(ctx context.Context) error {
	if !a.IsAuthenticated() {
		return fmt.Errorf("требуется вход: выполните notekeeper auth login")
	}
	return a.workspace.Load(ctx)
}

// ActivitySnapshot возвращает сводку активности с сервера.
func (a *App) ActivitySnapshot(ctx context.Context) (int, []activity.Entry, error) {
	return a.httpClient.ActivitySnapshot(ctx)
}

// Close сбрасывает отложенные сохранения и закрывает ресурсы.
func (a *App) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.controller.Flush(ctx); err != nil {
		a.log.Warn("не удалось сохранить отложенные изменения", "error", err)
	}
	a.controller.Close()

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.log.Debug("закрытие кэша", "error", err)
		}
	}
}

func (a *App) loadToken() (string, error) {
	data, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (a *App) saveToken(token string) error {
	return os.WriteFile(a.config.TokenPath, []byte(token), 0600)
}
