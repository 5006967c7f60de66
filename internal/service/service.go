// service содержит бизнес-логику query-tiles-сервиса.
package service

import (
	"errors"

	"github.com/pribylovaa/go-query-tiles/internal/cache"
	"github.com/pribylovaa/go-query-tiles/internal/config"
	"github.com/pribylovaa/go-query-tiles/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует.
	// Транспорт: codes.NotFound.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument - некорректные входные аргументы.
	// Транспорт: codes.InvalidArgument.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Service — описывает бизнес-логику query-tiles-service.
type Service struct {
	storage storage.Storage
	// cache может быть nil — тогда сервис работает напрямую с хранилищем.
	cache cache.GroupCache
	cfg   config.Config
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, cache cache.GroupCache, cfg config.Config) *Service {
	return &Service{
		storage: storage,
		cache:   cache,
		cfg:     cfg,
	}
}
