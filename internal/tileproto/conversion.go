// tileproto — конвертация между доменным деревом плиток (internal/models)
// и wire-представлением tiles.v1.
//
// Три направления:
//   - вложенная форма (Tile/TileGroup) — персистентность, транспорт;
//   - обратная сборка доменного дерева из вложенной формы;
//   - сборка дерева из плоского ответа тайл-сервера (ResponseGroup),
//     где дети заданы ссылками sub_tile_ids.
//
// Обе вложенные конвертации без потерь; единственное исключение —
// отметка времени группы, сериализуемая в целые миллисекунды
// (точность ниже миллисекунды отбрасывается осознанно).
package tileproto

import (
	"errors"
	"fmt"
	"time"

	tilesv1 "github.com/pribylovaa/go-query-tiles/gen/go/tiles"
	"github.com/pribylovaa/go-query-tiles/internal/models"
)

var (
	// ErrUnknownSubTile — sub_tile_ids ссылается на id, отсутствующий среди
	// не-верхнеуровневых записей ответа. Ответ некорректен целиком:
	// частичное дерево не строится.
	ErrUnknownSubTile = errors.New("unknown sub tile id")
	// ErrCircularReference — цепочка sub_tile_ids замкнулась в цикл.
	// Дерево строго ациклично; такой ответ отбрасывается целиком.
	ErrCircularReference = errors.New("circular sub tile reference")
)

// timeToMilliseconds переводит время в unix-миллисекунды для сериализации.
// Точность ниже миллисекунды теряется.
func timeToMilliseconds(t time.Time) int64 {
	return t.UnixMilli()
}

// millisecondsToTime — обратное преобразование (UTC).
func millisecondsToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// TileToProto сериализует плитку во вложенную wire-форму.
// Дочерние плитки кодируются рекурсивно с сохранением порядка; потерь нет.
func TileToProto(tile *models.Tile) *tilesv1.Tile {
	pb := &tilesv1.Tile{
		Id:                tile.ID,
		QueryText:         tile.QueryText,
		DisplayText:       tile.DisplayText,
		AccessibilityText: tile.AccessibilityText,
	}

	for _, image := range tile.ImageMetadatas {
		pb.ImageMetadatas = append(pb.ImageMetadatas, &tilesv1.ImageMetadata{Url: image.URL})
	}

	for _, sub := range tile.SubTiles {
		pb.SubTiles = append(pb.SubTiles, TileToProto(sub))
	}

	return pb
}

// TileFromProto восстанавливает плитку из вложенной wire-формы.
// Дочерние плитки восстанавливаются рекурсивно в закодированном порядке;
// все узлы — новые, эксклюзивно принадлежащие родителю.
func TileFromProto(pb *tilesv1.Tile) *models.Tile {
	tile := &models.Tile{
		ID:                pb.GetId(),
		QueryText:         pb.GetQueryText(),
		DisplayText:       pb.GetDisplayText(),
		AccessibilityText: pb.GetAccessibilityText(),
	}

	for _, image := range pb.GetImageMetadatas() {
		tile.ImageMetadatas = append(tile.ImageMetadatas, models.ImageMetadata{URL: image.GetUrl()})
	}

	for _, sub := range pb.GetSubTiles() {
		tile.SubTiles = append(tile.SubTiles, TileFromProto(sub))
	}

	return tile
}

// TileGroupToProto сериализует группу во вложенную wire-форму.
// LastUpdated кодируется в unix-миллисекундах (см. timeToMilliseconds).
func TileGroupToProto(group *models.TileGroup) *tilesv1.TileGroup {
	pb := &tilesv1.TileGroup{
		Id:                group.ID,
		Locale:            group.Locale,
		LastUpdatedTimeMs: timeToMilliseconds(group.LastUpdated),
	}

	for _, tile := range group.Tiles {
		pb.Tiles = append(pb.Tiles, TileToProto(tile))
	}

	return pb
}

// TileGroupFromProto восстанавливает группу из вложенной wire-формы.
// Отметка времени декодируется точно: усечение до миллисекунд уже
// произошло при кодировании.
func TileGroupFromProto(pb *tilesv1.TileGroup) *models.TileGroup {
	group := &models.TileGroup{
		ID:          pb.GetId(),
		Locale:      pb.GetLocale(),
		LastUpdated: millisecondsToTime(pb.GetLastUpdatedTimeMs()),
	}

	for _, tile := range pb.GetTiles() {
		group.Tiles = append(group.Tiles, TileFromProto(tile))
	}

	return group
}

// ResponseGroupToTileGroup собирает доменное дерево из плоского ответа
// тайл-сервера.
//
// Алгоритм: записи разделяются по флагу is_top_level; не-верхнеуровневые
// индексируются по tile_id (дубликат id — последняя запись выигрывает);
// затем для каждой верхнеуровневой записи ссылки sub_tile_ids рекурсивно
// разрешаются в реальные вложенные плитки строго в порядке списка.
//
// Ошибки:
//   - ErrUnknownSubTile — ссылка на отсутствующий id;
//   - ErrCircularReference — цикл ссылок.
//
// ID группы и LastUpdated в формате ответа отсутствуют и остаются
// нулевыми — их назначает вызывающая сторона после конвертации.
func ResponseGroupToTileGroup(resp *tilesv1.ResponseGroup) (*models.TileGroup, error) {
	const op = "tileproto.ResponseGroupToTileGroup"

	var topLevel []*tilesv1.ResponseTile
	subTiles := make(map[string]*tilesv1.ResponseTile)

	for _, record := range resp.GetTiles() {
		if record.GetIsTopLevel() {
			topLevel = append(topLevel, record)
		} else {
			subTiles[record.GetTileId()] = record
		}
	}

	group := &models.TileGroup{Locale: resp.GetLocale()}

	visiting := make(map[string]bool)
	for _, record := range topLevel {
		tile, err := responseToTile(record, subTiles, visiting)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		group.Tiles = append(group.Tiles, tile)
	}

	return group, nil
}

// responseToTile конвертирует одну запись ответа в плитку, рекурсивно
// разрешая ссылки на детей. visiting содержит id текущего пути рекурсии
// и отсекает циклы.
func responseToTile(record *tilesv1.ResponseTile, subTiles map[string]*tilesv1.ResponseTile, visiting map[string]bool) (*models.Tile, error) {
	id := record.GetTileId()
	if visiting[id] {
		return nil, fmt.Errorf("tile %q: %w", id, ErrCircularReference)
	}

	visiting[id] = true
	defer delete(visiting, id)

	tile := &models.Tile{
		ID:                id,
		DisplayText:       record.GetDisplayText(),
		AccessibilityText: record.GetAccessibilityText(),
		QueryText:         record.GetQueryString(),
	}

	for _, image := range record.GetTileImages() {
		tile.ImageMetadatas = append(tile.ImageMetadatas, models.ImageMetadata{URL: image.GetUrl()})
	}

	for _, subID := range record.GetSubTileIds() {
		sub, ok := subTiles[subID]
		if !ok {
			return nil, fmt.Errorf("tile %q references %q: %w", id, subID, ErrUnknownSubTile)
		}

		child, err := responseToTile(sub, subTiles, visiting)
		if err != nil {
			return nil, err
		}

		tile.SubTiles = append(tile.SubTiles, child)
	}

	return tile, nil
}
