package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/go-query-tiles/internal/models"
	"github.com/pribylovaa/go-query-tiles/internal/storage"
	"github.com/pribylovaa/go-query-tiles/pkg/log"
)

// GetQueryTiles возвращает актуальную группу плиток для локали.
//
// Порядок поиска: кэш (если подключён) -> хранилище (самая свежая группа
// локали). Найденная в хранилище группа кладётся в кэш с TTL из конфига;
// ошибка кэша не фатальна — логируется и не прерывает запрос.
//
// Ошибки:
// - ErrInvalidArgument — пустая локаль;
// - ErrNotFound — для локали нет ни одной группы (маппинг storage.ErrNotFound);
// - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) GetQueryTiles(ctx context.Context, locale string) (*models.TileGroup, error) {
	const op = "service.queries.GetQueryTiles"

	lg := log.From(ctx)
	lg.Info("get_query_tiles_request",
		slog.String("op", op),
		slog.String("locale", locale),
	)

	if locale == "" {
		return nil, fmt.Errorf("%s: empty locale: %w", op, ErrInvalidArgument)
	}

	if s.cache != nil {
		group, ok, err := s.cache.Get(ctx, locale)
		if err != nil {
			lg.Warn("get_query_tiles_cache_error",
				slog.String("op", op),
				slog.String("locale", locale),
				slog.String("err", err.Error()),
			)
		} else if ok {
			lg.Info("get_query_tiles_cache_hit",
				slog.String("op", op),
				slog.String("locale", locale),
			)

			return group, nil
		}
	}

	group, err := s.storage.LatestGroupByLocale(ctx, locale)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("get_query_tiles_not_found",
				slog.String("op", op),
				slog.String("locale", locale),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("get_query_tiles_storage_error",
			slog.String("op", op),
			slog.String("locale", locale),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, locale, group, s.cfg.Cache.TTL); err != nil {
			lg.Warn("get_query_tiles_cache_set_error",
				slog.String("op", op),
				slog.String("locale", locale),
				slog.String("err", err.Error()),
			)
		}
	}

	lg.Info("get_query_tiles_ok",
		slog.String("op", op),
		slog.String("locale", locale),
		slog.String("group_id", group.ID),
		slog.Int("tiles", len(group.Tiles)),
	)

	return group, nil
}

// TileByID возвращает плитку (с поддеревом) из актуальной группы локали.
// Поиск идёт обходом всего дерева, включая вложенные плитки.
//
// Ошибки:
// - ErrInvalidArgument — пустая локаль или пустой tileID;
// - ErrNotFound — нет группы для локали либо плитки с таким id в дереве.
func (s *Service) TileByID(ctx context.Context, locale, tileID string) (*models.Tile, error) {
	const op = "service.queries.TileByID"

	lg := log.From(ctx)
	lg.Info("tile_by_id_request",
		slog.String("op", op),
		slog.String("locale", locale),
		slog.String("tile_id", tileID),
	)

	if tileID == "" {
		return nil, fmt.Errorf("%s: empty tile id: %w", op, ErrInvalidArgument)
	}

	group, err := s.GetQueryTiles(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	it := models.NewTileIterator(group, models.IterateAll)
	for it.HasNext() {
		tile := it.Next()
		if tile.ID == tileID {
			lg.Info("tile_by_id_ok",
				slog.String("op", op),
				slog.String("locale", locale),
				slog.String("tile_id", tileID),
			)

			return tile, nil
		}
	}

	lg.Warn("tile_by_id_not_found",
		slog.String("op", op),
		slog.String("locale", locale),
		slog.String("tile_id", tileID),
	)

	return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
}
