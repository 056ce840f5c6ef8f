package document

import (
	"context"
)

type Repository interface {
	// Get возвращает документ пользователя; отсутствие строки - пустой
	// документ, не ошибка.
	Get(ctx context.Context, userID int) (Document, error)
	// Replace атомарно заменяет документ целиком и возвращает
	// сохраненное состояние.
	Replace(ctx context.Context, userID int, doc Document) (Document, error)
}
