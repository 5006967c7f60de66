// storage определяет контракты доступа к БД для query-tiles-сервиса.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/go-query-tiles/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
)

// GroupStorage описывает операции над сущностью models.TileGroup.
type GroupStorage interface {
	// SaveGroup сохраняет группу плиток (upsert по id).
	SaveGroup(ctx context.Context, group *models.TileGroup) error
	// GroupByID возвращает группу по её идентификатору.
	// Если запись не найдена — ErrNotFound.
	GroupByID(ctx context.Context, id string) (*models.TileGroup, error)
	// LatestGroupByLocale возвращает самую свежую (по last_updated)
	// группу для локали. Если для локали групп нет — ErrNotFound.
	LatestGroupByLocale(ctx context.Context, locale string) (*models.TileGroup, error)
	// DeleteExpiredGroups удаляет группы, обновлённые раньше отметки before.
	// Возвращает число удалённых записей.
	DeleteExpiredGroups(ctx context.Context, before time.Time) (int64, error)
}

// Storage задаёт контракт доступа к хранилищу для query-tiles-сервиса.
type Storage interface {
	GroupStorage
	Close()
}
