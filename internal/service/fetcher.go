package service

import (
	"context"

	"github.com/pribylovaa/go-query-tiles/internal/models"
)

// Fetcher описывает абстракцию внешнего тайл-сервера, который по списку
// локалей возвращает собранные доменные группы плиток.
//
// Требования к реализации:
// 1) Поля ID и LastUpdated в возвращаемых группах должны быть нулевыми —
// их проставляет оркестратор сервиса.
// 2) Locale в группе должна совпадать с запрошенной локалью.
// 3) Ответ с некорректными ссылками между плитками (неизвестный id, цикл)
// отклоняется целиком: Err != nil, Group == nil.
// 4) Реализация обязана уважать ctx (отмена/таймауты).
//
// FetchMany должен отправить по одному FetchResult на каждую локаль и затем
// закрыть канал. Порядок результатов не гарантируется.
type Fetcher interface {
	FetchMany(ctx context.Context, locales []string) <-chan FetchResult
}

// FetchResult — результат запроса плиток одной локали.
// Если Err != nil, Group равен nil.
type FetchResult struct {
	Locale string
	Group  *models.TileGroup
	Err    error
}
