package document

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/domain/document"
)

type Handler struct {
	service    document.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service document.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.replaceOp(), h.replace)
}

func (h *Handler) get(ctx context.Context, _ *getInput) (*getOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	doc, err := h.service.Read(ctx, userID)
	if err != nil {
		h.log.Error("read document failed", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("failed to read document")
	}

	return &getOutput{Body: doc}, nil
}

func (h *Handler) replace(ctx context.Context, input *replaceInput) (*replaceOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	stored, err := h.service.Replace(ctx, userID, input.Body)
	if err != nil {
		if errors.Is(err, document.ErrInvalidDocument) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		h.log.Error("replace document failed", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("failed to replace document")
	}

	return &replaceOutput{Body: stored}, nil
}
