// models содержит доменные сущности query-tiles-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"fmt"
	"strings"
	"time"
)

// ImageMetadata — метаданные изображения плитки.
// Неизменяемо после создания.
type ImageMetadata struct {
	// URL — ссылка на ресурс изображения.
	URL string
}

// Tile — узел дерева поисковых плиток.
//
// Особенности:
//   - ID назначается источником данных и уникален в пределах группы;
//   - SubTiles принадлежат родителю эксклюзивно (строгое дерево,
//     без разделяемых узлов и циклов);
//   - порядок ImageMetadatas и SubTiles значим (порядок отображения/обхода).
type Tile struct {
	// ID — уникальный идентификатор плитки.
	ID string
	// DisplayText — отображаемый текст плитки.
	DisplayText string
	// AccessibilityText — текст для screen reader.
	AccessibilityText string
	// QueryText — текст поискового запроса плитки.
	QueryText string
	// ImageMetadatas — изображения плитки в порядке отображения.
	ImageMetadatas []ImageMetadata
	// SubTiles — дочерние плитки в порядке отображения.
	SubTiles []*Tile
}

// TileGroup — группа верхнеуровневых плиток одной локали.
//
// Инвариант: ID всех плиток дерева (верхнеуровневых и вложенных)
// уникальны в пределах группы — плоский формат ответа сервера
// адресует плитки только по ID.
type TileGroup struct {
	// ID — идентификатор экземпляра группы.
	ID string
	// Locale — локаль, для которой получен набор плиток.
	Locale string
	// LastUpdated — время последнего обновления содержимого группы (UTC).
	LastUpdated time.Time
	// Tiles — верхнеуровневые плитки в порядке отображения.
	Tiles []*Tile
}

// TilesIdentical сравнивает два дерева плиток: все скалярные поля,
// списки изображений и дочерние списки поэлементно и по порядку (рекурсивно).
// Используется только в тестах/верификации; рантайм-идентичность — по ID.
func TilesIdentical(lhs, rhs *Tile) bool {
	if lhs == nil || rhs == nil {
		return lhs == rhs
	}

	if lhs.ID != rhs.ID ||
		lhs.DisplayText != rhs.DisplayText ||
		lhs.AccessibilityText != rhs.AccessibilityText ||
		lhs.QueryText != rhs.QueryText {
		return false
	}

	if len(lhs.ImageMetadatas) != len(rhs.ImageMetadatas) {
		return false
	}
	for i := range lhs.ImageMetadatas {
		if lhs.ImageMetadatas[i] != rhs.ImageMetadatas[i] {
			return false
		}
	}

	return TileListsIdentical(lhs.SubTiles, rhs.SubTiles)
}

// TileListsIdentical сравнивает два списка плиток поэлементно и по порядку.
func TileListsIdentical(lhs, rhs []*Tile) bool {
	if len(lhs) != len(rhs) {
		return false
	}

	for i := range lhs {
		if !TilesIdentical(lhs[i], rhs[i]) {
			return false
		}
	}

	return true
}

// TileGroupsIdentical сравнивает группы: id, locale, отметка времени
// и верхнеуровневые списки по правилу TilesIdentical.
func TileGroupsIdentical(lhs, rhs *TileGroup) bool {
	if lhs == nil || rhs == nil {
		return lhs == rhs
	}

	return lhs.ID == rhs.ID &&
		lhs.Locale == rhs.Locale &&
		lhs.LastUpdated.Equal(rhs.LastUpdated) &&
		TileListsIdentical(lhs.Tiles, rhs.Tiles)
}

// DebugString возвращает диагностическое представление дерева плитки:
// id корня и список смежности parent -> {children} по уровням.
func (t *Tile) DebugString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tile id: %s\n", t.ID)
	writeAdjacency(&sb, []*Tile{t})

	return sb.String()
}

// DebugString возвращает диагностическое представление группы:
// заголовок группы и список смежности по уровням для всего дерева.
func (g *TileGroup) DebugString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "TileGroup id: %s locale: %s last_updated: %s tiles: %d\n",
		g.ID, g.Locale, g.LastUpdated.UTC().Format(time.RFC3339Nano), len(g.Tiles))
	writeAdjacency(&sb, g.Tiles)

	return sb.String()
}

// writeAdjacency печатает пары parent -> {id дочерних плиток},
// уровень за уровнем (BFS).
func writeAdjacency(sb *strings.Builder, roots []*Tile) {
	level := 0
	frontier := roots

	for len(frontier) > 0 {
		var next []*Tile
		fmt.Fprintf(sb, "level %d:\n", level)

		for _, tile := range frontier {
			ids := make([]string, 0, len(tile.SubTiles))
			for _, sub := range tile.SubTiles {
				ids = append(ids, sub.ID)
			}
			fmt.Fprintf(sb, "  %s -> {%s}\n", tile.ID, strings.Join(ids, ", "))
			next = append(next, tile.SubTiles...)
		}

		frontier = next
		level++
	}
}
