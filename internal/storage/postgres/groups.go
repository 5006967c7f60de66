package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"google.golang.org/protobuf/proto"

	tilesv1 "github.com/pribylovaa/go-query-tiles/gen/go/tiles"
	"github.com/pribylovaa/go-query-tiles/internal/models"
	"github.com/pribylovaa/go-query-tiles/internal/storage"
	"github.com/pribylovaa/go-query-tiles/internal/tileproto"
)

// Схема tile_groups: скалярные колонки id/locale/last_updated для выборок
// и бинарная колонка tiles с сериализованным деревом (tiles.v1.TileGroup).
// Дерево произвольной глубины в реляционную форму не раскладывается.

// SaveGroup сохраняет группу плиток с upsert по id.
// При конфликте locale, last_updated и дерево перезаписываются целиком.
func (s *Storage) SaveGroup(ctx context.Context, group *models.TileGroup) error {
	const op = "storage.postgres.SaveGroup"

	blob, err := proto.Marshal(tileproto.TileGroupToProto(group))
	if err != nil {
		return fmt.Errorf("%s: marshal group: %w", op, err)
	}

	_, err = s.db.Exec(ctx, `
	INSERT INTO tile_groups (id, locale, last_updated, tiles)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (id) DO UPDATE
	SET
	locale = EXCLUDED.locale,
	last_updated = EXCLUDED.last_updated,
	tiles = EXCLUDED.tiles
	`, group.ID, group.Locale, group.LastUpdated.UTC(), blob)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// GroupByID возвращает группу по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) GroupByID(ctx context.Context, id string) (*models.TileGroup, error) {
	const op = "storage.postgres.GroupByID"

	var blob []byte
	err := s.db.QueryRow(ctx, `
	SELECT tiles
	FROM tile_groups
	WHERE id = $1
	`, id).Scan(&blob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	group, err := decodeGroup(blob)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return group, nil
}

// LatestGroupByLocale возвращает самую свежую группу локали.
// Сортировка фиксирована: last_updated DESC, id DESC.
// Если для локали групп нет — storage.ErrNotFound.
func (s *Storage) LatestGroupByLocale(ctx context.Context, locale string) (*models.TileGroup, error) {
	const op = "storage.postgres.LatestGroupByLocale"

	var blob []byte
	err := s.db.QueryRow(ctx, `
	SELECT tiles
	FROM tile_groups
	WHERE locale = $1
	ORDER BY last_updated DESC, id DESC
	LIMIT 1
	`, locale).Scan(&blob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	group, err := decodeGroup(blob)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return group, nil
}

// DeleteExpiredGroups удаляет группы, обновлённые раньше before.
func (s *Storage) DeleteExpiredGroups(ctx context.Context, before time.Time) (int64, error) {
	const op = "storage.postgres.DeleteExpiredGroups"

	tag, err := s.db.Exec(ctx, `
	DELETE FROM tile_groups
	WHERE last_updated < $1
	`, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}

// decodeGroup восстанавливает доменную группу из сериализованного дерева.
func decodeGroup(blob []byte) (*models.TileGroup, error) {
	var pb tilesv1.TileGroup
	if err := proto.Unmarshal(blob, &pb); err != nil {
		return nil, fmt.Errorf("unmarshal group: %w", err)
	}

	return tileproto.TileGroupFromProto(&pb), nil
}
