package activity

import (
	"context"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/domain/activity"
)

type Handler struct {
	tracker    *activity.Tracker
	log        *slog.Logger
	middleware huma.Middlewares
	// Сводка публична, отметка требует аутентификации.
	public huma.Middlewares
}

func NewHandler(tracker *activity.Tracker, log *slog.Logger, middleware, public huma.Middlewares) *Handler {
	return &Handler{
		tracker:    tracker,
		log:        log,
		middleware: middleware,
		public:     public,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.reportOp(), h.report)
	huma.Register(api, h.snapshotOp(), h.snapshot)
}

func (h *Handler) report(ctx context.Context, input *reportInput) (*reportOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	username := strings.TrimSpace(input.Body.Username)
	if username == "" {
		username = "Anonymous"
	}

	device, os, browser := activity.ParseUserAgent(input.UserAgent)

	h.tracker.Touch(activity.Entry{
		UserID:   strconv.Itoa(userID),
		Username: username,
		IP:       clientIP(input.Forwarded),
		Device:   device,
		OS:       os,
		Browser:  browser,
	})

	return &reportOutput{Body: ReportResponse{Status: "Ok"}}, nil
}

func (h *Handler) snapshot(_ context.Context, input *snapshotInput) (*snapshotOutput, error) {
	active, latest := h.tracker.Snapshot(input.Limit)

	return &snapshotOutput{
		Body: SnapshotResponse{
			ActiveCount: active,
			Latest:      latest,
		},
	}, nil
}

// clientIP берет первый адрес из X-Forwarded-For.
func clientIP(forwarded string) string {
	if forwarded == "" {
		return ""
	}
	if i := strings.IndexByte(forwarded, ','); i >= 0 {
		forwarded = forwarded[:i]
	}
	return strings.TrimSpace(forwarded)
}
