// Сервер notekeeper:
// регистрация и аутентификация пользователей;
// хранение полного документа (заметки и папки) каждого владельца;
// журнал активности посетителей.

// POST /api/v1/auth/register  # Регистрация (публичный)
// POST /api/v1/auth/login     # Логин (публичный)
// GET  /api/v1/document       # Полный документ владельца (auth)
// PUT  /api/v1/document       # Полная замена документа (auth)
// POST /api/v1/activity       # Отметить посетителя (auth)
// GET  /api/v1/activity       # Сводка активности (публичный)
// GET  /api/v1/health         # Проверка живости (публичный)

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	activityAPI "notekeeper/internal/app/server/api/http/activity"
	documentAPI "notekeeper/internal/app/server/api/http/document"
	healthAPI "notekeeper/internal/app/server/api/http/health"
	"notekeeper/internal/app/server/api/http/middleware"
	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/app/server/api/http/middleware/logger"
	userAPI "notekeeper/internal/app/server/api/http/user"
	"notekeeper/internal/domain/activity"
	"notekeeper/internal/domain/document"
	"notekeeper/internal/domain/session"
	"notekeeper/internal/domain/user"
	"notekeeper/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health   *healthAPI.Handler
	User     *userAPI.Handler
	Document *documentAPI.Handler
	Activity *activityAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(storage *postgres.Storage, sessions *session.Service, tracker *activity.Tracker, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Notekeeper API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(storage, sessions, tracker, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Document.SetupRoutes(API)
	h.Activity.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, sessionService *session.Service, tracker *activity.Tracker, log *slog.Logger) *Handlers {
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	userService := user.NewService(userRepo, user.NewValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, middlewares.GetAllAndClear())

	documentRepo := postgres.NewDocumentRepository(storage.Pool(), log)
	documentService := document.NewService(documentRepo, log)
	middlewares.Add(authMW.Middleware(), loggerMW.Middleware())
	documentHandler := documentAPI.NewHandler(documentService, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware(), loggerMW.Middleware())
	reportMW := middlewares.GetAllAndClear()
	middlewares.Add(loggerMW.Middleware())
	activityHandler := activityAPI.NewHandler(tracker, log, reportMW, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		User:     userHandler,
		Document: documentHandler,
		Activity: activityHandler,
	}
}
