package activity

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) reportOp() huma.Operation {
	return huma.Operation{
		OperationID: "activity-report",
		Method:      http.MethodPost,
		Path:        "/api/v1/activity",
		Summary:     "Отметить посетителя",
		Tags:        []string{"activity"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) snapshotOp() huma.Operation {
	return huma.Operation{
		OperationID: "activity-snapshot",
		Method:      http.MethodGet,
		Path:        "/api/v1/activity",
		Summary:     "Сводка активности",
		Description: "Счетчик активных посетителей и последние записи журнала.",
		Tags:        []string{"activity"},
		Middlewares: h.public,
	}
}
