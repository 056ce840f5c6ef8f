package document

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "document-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/document",
		Summary:     "Получить документ пользователя",
		Description: "Возвращает полный документ: все заметки и папки владельца.",
		Tags:        []string{"document"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) replaceOp() huma.Operation {
	return huma.Operation{
		OperationID: "document-replace",
		Method:      http.MethodPut,
		Path:        "/api/v1/document",
		Summary:     "Заменить документ пользователя",
		Description: "Принимает полный документ и атомарно заменяет им сохраненный.",
		Tags:        []string{"document"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
