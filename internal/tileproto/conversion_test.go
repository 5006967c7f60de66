package tileproto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	tilesv1 "github.com/pribylovaa/go-query-tiles/gen/go/tiles"
	"github.com/pribylovaa/go-query-tiles/internal/models"
)

// Тесты конвертации (conversion.go).
//
// Покрытие:
//  - round-trip вложенной формы: Tile и TileGroup;
//  - усечение отметки времени группы до миллисекунд;
//  - сборка дерева из плоского ответа: порядок, дубликаты id,
//    глубокая вложенность;
//  - отказ: ссылка на неизвестный id, цикл ссылок (включая самоссылку).

func newModelTile() *models.Tile {
	return &models.Tile{
		ID:                "guid-1-1",
		DisplayText:       "test display text",
		AccessibilityText: "test accessibility text",
		QueryText:         "test query text",
		ImageMetadatas: []models.ImageMetadata{
			{URL: "https://www.example.com/image-1.png"},
			{URL: "https://www.example.com/image-2.png"},
		},
		SubTiles: []*models.Tile{
			{
				ID:          "guid-2-1",
				DisplayText: "child 1",
				SubTiles: []*models.Tile{
					{ID: "guid-3-1", QueryText: "grandchild query"},
				},
			},
			{ID: "guid-2-2", DisplayText: "child 2"},
		},
	}
}

func newModelGroup() *models.TileGroup {
	return &models.TileGroup{
		ID:          "group-guid",
		Locale:      "en-US",
		LastUpdated: time.Date(2024, 7, 1, 12, 30, 45, 123_000_000, time.UTC),
		Tiles: []*models.Tile{
			newModelTile(),
			{ID: "guid-1-2", DisplayText: "second top tile"},
		},
	}
}

// TestTile_RoundTrip — вложенная форма без потерь.
func TestTile_RoundTrip(t *testing.T) {
	t.Parallel()

	original := newModelTile()
	restored := TileFromProto(TileToProto(original))

	require.True(t, models.TilesIdentical(original, restored))
}

// TestTileToProto_Fields — поля и порядок в wire-форме.
func TestTileToProto_Fields(t *testing.T) {
	t.Parallel()

	pb := TileToProto(newModelTile())

	require.Equal(t, "guid-1-1", pb.GetId())
	require.Equal(t, "test query text", pb.GetQueryText())
	require.Equal(t, "test display text", pb.GetDisplayText())
	require.Equal(t, "test accessibility text", pb.GetAccessibilityText())

	require.Len(t, pb.GetImageMetadatas(), 2)
	require.Equal(t, "https://www.example.com/image-1.png", pb.GetImageMetadatas()[0].GetUrl())

	require.Len(t, pb.GetSubTiles(), 2)
	require.Equal(t, "guid-2-1", pb.GetSubTiles()[0].GetId())
	require.Equal(t, "guid-2-2", pb.GetSubTiles()[1].GetId())
	require.Equal(t, "guid-3-1", pb.GetSubTiles()[0].GetSubTiles()[0].GetId())
}

// TestTileGroup_RoundTrip — группа без потерь при миллисекундной
// отметке времени.
func TestTileGroup_RoundTrip(t *testing.T) {
	t.Parallel()

	original := newModelGroup()
	restored := TileGroupFromProto(TileGroupToProto(original))

	require.True(t, models.TileGroupsIdentical(original, restored))
}

// TestTileGroup_TimestampTruncation — точность ниже миллисекунды
// отбрасывается при кодировании; расхождение строго меньше 1ms.
func TestTileGroup_TimestampTruncation(t *testing.T) {
	t.Parallel()

	original := newModelGroup()
	original.LastUpdated = original.LastUpdated.Add(456_789 * time.Nanosecond)

	restored := TileGroupFromProto(TileGroupToProto(original))

	require.False(t, restored.LastUpdated.Equal(original.LastUpdated))
	diff := original.LastUpdated.Sub(restored.LastUpdated)
	require.GreaterOrEqual(t, diff, time.Duration(0))
	require.Less(t, diff, time.Millisecond)

	// Повторный проход уже точен: усечение произошло один раз.
	again := TileGroupFromProto(TileGroupToProto(restored))
	require.True(t, models.TileGroupsIdentical(restored, again))
}

// TestResponseGroupToTileGroup_Example — одна верхнеуровневая плитка
// с тремя детьми в порядке списка ссылок; обход «все плитки» —
// родитель, затем дети.
func TestResponseGroupToTileGroup_Example(t *testing.T) {
	t.Parallel()

	resp := &tilesv1.ResponseGroup{
		Locale: "en",
		Tiles: []*tilesv1.ResponseTile{
			{
				TileId:     "0-0",
				IsTopLevel: true,
				SubTileIds: []string{"1-0", "1-1", "1-2"},
			},
			{TileId: "1-0"},
			{TileId: "1-1"},
			{TileId: "1-2"},
		},
	}

	group, err := ResponseGroupToTileGroup(resp)
	require.NoError(t, err)
	require.Equal(t, "en", group.Locale)
	require.Len(t, group.Tiles, 1)
	require.Equal(t, "0-0", group.Tiles[0].ID)

	require.Len(t, group.Tiles[0].SubTiles, 3)
	for i, want := range []string{"1-0", "1-1", "1-2"} {
		require.Equal(t, want, group.Tiles[0].SubTiles[i].ID)
	}

	// ID группы и отметку времени назначает вызывающая сторона.
	require.Empty(t, group.ID)
	require.True(t, group.LastUpdated.IsZero())

	it := models.NewTileIterator(group, models.IterateAll)
	var order []string
	for it.HasNext() {
		order = append(order, it.Next().ID)
	}
	require.Equal(t, []string{"0-0", "1-0", "1-1", "1-2"}, order)
}

// TestResponseGroupToTileGroup_MultiRoot — три верхнеуровневые плитки
// по три ребёнка у каждой: корни идут в порядке списка, внутри корня —
// сначала родитель, затем его дети в порядке ссылок.
func TestResponseGroupToTileGroup_MultiRoot(t *testing.T) {
	t.Parallel()

	resp := &tilesv1.ResponseGroup{
		Locale: "en",
		Tiles: []*tilesv1.ResponseTile{
			{TileId: "0-0", IsTopLevel: true, SubTileIds: []string{"1-0", "1-1", "1-2"}},
			{TileId: "0-1", IsTopLevel: true, SubTileIds: []string{"2-0", "2-1", "2-2"}},
			{TileId: "0-2", IsTopLevel: true, SubTileIds: []string{"3-0", "3-1", "3-2"}},
			{TileId: "1-0"}, {TileId: "1-1"}, {TileId: "1-2"},
			{TileId: "2-0"}, {TileId: "2-1"}, {TileId: "2-2"},
			{TileId: "3-0"}, {TileId: "3-1"}, {TileId: "3-2"},
		},
	}

	group, err := ResponseGroupToTileGroup(resp)
	require.NoError(t, err)
	require.Len(t, group.Tiles, 3)

	it := models.NewTileIterator(group, models.IterateAll)
	var order []string
	for it.HasNext() {
		order = append(order, it.Next().ID)
	}
	require.Equal(t, []string{
		"0-0", "1-0", "1-1", "1-2",
		"0-1", "2-0", "2-1", "2-2",
		"0-2", "3-0", "3-1", "3-2",
	}, order)

	itTop := models.NewTileIterator(group, models.IterateTopLevel)
	var tops []string
	for itTop.HasNext() {
		tops = append(tops, itTop.Next().ID)
	}
	require.Equal(t, []string{"0-0", "0-1", "0-2"}, tops)
}

// TestResponseGroupToTileGroup_Fields — скалярные поля и изображения
// переносятся в каждую плитку.
func TestResponseGroupToTileGroup_Fields(t *testing.T) {
	t.Parallel()

	resp := &tilesv1.ResponseGroup{
		Locale: "ru-RU",
		Tiles: []*tilesv1.ResponseTile{
			{
				TileId:            "top",
				IsTopLevel:        true,
				DisplayText:       "display",
				AccessibilityText: "accessibility",
				QueryString:       "query",
				TileImages: []*tilesv1.ImageMetadata{
					{Url: "https://www.example.com/a.png"},
					{Url: "https://www.example.com/b.png"},
				},
			},
		},
	}

	group, err := ResponseGroupToTileGroup(resp)
	require.NoError(t, err)

	tile := group.Tiles[0]
	require.Equal(t, "display", tile.DisplayText)
	require.Equal(t, "accessibility", tile.AccessibilityText)
	require.Equal(t, "query", tile.QueryText)
	require.Equal(t, []models.ImageMetadata{
		{URL: "https://www.example.com/a.png"},
		{URL: "https://www.example.com/b.png"},
	}, tile.ImageMetadatas)
}

// TestResponseGroupToTileGroup_DeepNesting — ссылки разрешаются
// рекурсивно на произвольную глубину.
func TestResponseGroupToTileGroup_DeepNesting(t *testing.T) {
	t.Parallel()

	resp := &tilesv1.ResponseGroup{
		Locale: "en",
		Tiles: []*tilesv1.ResponseTile{
			{TileId: "root", IsTopLevel: true, SubTileIds: []string{"mid"}},
			{TileId: "mid", SubTileIds: []string{"leaf"}},
			{TileId: "leaf"},
		},
	}

	group, err := ResponseGroupToTileGroup(resp)
	require.NoError(t, err)

	require.Equal(t, "root", group.Tiles[0].ID)
	require.Equal(t, "mid", group.Tiles[0].SubTiles[0].ID)
	require.Equal(t, "leaf", group.Tiles[0].SubTiles[0].SubTiles[0].ID)
}

// TestResponseGroupToTileGroup_DuplicateID — при дубликате id среди
// не-верхнеуровневых записей выигрывает последняя.
func TestResponseGroupToTileGroup_DuplicateID(t *testing.T) {
	t.Parallel()

	resp := &tilesv1.ResponseGroup{
		Locale: "en",
		Tiles: []*tilesv1.ResponseTile{
			{TileId: "top", IsTopLevel: true, SubTileIds: []string{"dup"}},
			{TileId: "dup", DisplayText: "first"},
			{TileId: "dup", DisplayText: "second"},
		},
	}

	group, err := ResponseGroupToTileGroup(resp)
	require.NoError(t, err)
	require.Equal(t, "second", group.Tiles[0].SubTiles[0].DisplayText)
}

// TestResponseGroupToTileGroup_UnknownSubTile — ссылка на отсутствующий
// id отклоняет весь ответ, частичное дерево не строится.
func TestResponseGroupToTileGroup_UnknownSubTile(t *testing.T) {
	t.Parallel()

	resp := &tilesv1.ResponseGroup{
		Locale: "en",
		Tiles: []*tilesv1.ResponseTile{
			{TileId: "top", IsTopLevel: true, SubTileIds: []string{"missing"}},
		},
	}

	group, err := ResponseGroupToTileGroup(resp)
	require.ErrorIs(t, err, ErrUnknownSubTile)
	require.Nil(t, group)
}

// TestResponseGroupToTileGroup_CircularReference — цикл ссылок.
func TestResponseGroupToTileGroup_CircularReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tiles []*tilesv1.ResponseTile
	}{
		{
			name: "self reference",
			tiles: []*tilesv1.ResponseTile{
				{TileId: "top", IsTopLevel: true, SubTileIds: []string{"a"}},
				{TileId: "a", SubTileIds: []string{"a"}},
			},
		},
		{
			name: "two node cycle",
			tiles: []*tilesv1.ResponseTile{
				{TileId: "top", IsTopLevel: true, SubTileIds: []string{"a"}},
				{TileId: "a", SubTileIds: []string{"b"}},
				{TileId: "b", SubTileIds: []string{"a"}},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			group, err := ResponseGroupToTileGroup(&tilesv1.ResponseGroup{
				Locale: "en",
				Tiles:  tc.tiles,
			})
			require.ErrorIs(t, err, ErrCircularReference)
			require.Nil(t, group)
		})
	}
}

// TestResponseGroupToTileGroup_SharedSubTree — один и тот же id может
// встречаться в нескольких списках ссылок; каждое вхождение даёт
// независимую копию узла (дерево, не DAG).
func TestResponseGroupToTileGroup_SharedSubTree(t *testing.T) {
	t.Parallel()

	resp := &tilesv1.ResponseGroup{
		Locale: "en",
		Tiles: []*tilesv1.ResponseTile{
			{TileId: "left", IsTopLevel: true, SubTileIds: []string{"shared"}},
			{TileId: "right", IsTopLevel: true, SubTileIds: []string{"shared"}},
			{TileId: "shared", DisplayText: "shared child"},
		},
	}

	group, err := ResponseGroupToTileGroup(resp)
	require.NoError(t, err)
	require.Len(t, group.Tiles, 2)

	leftChild := group.Tiles[0].SubTiles[0]
	rightChild := group.Tiles[1].SubTiles[0]
	require.True(t, models.TilesIdentical(leftChild, rightChild))
	require.NotSame(t, leftChild, rightChild)
}

// TestResponseGroupToTileGroup_Empty — пустой ответ даёт пустую группу.
func TestResponseGroupToTileGroup_Empty(t *testing.T) {
	t.Parallel()

	group, err := ResponseGroupToTileGroup(&tilesv1.ResponseGroup{Locale: "en"})
	require.NoError(t, err)
	require.Equal(t, "en", group.Locale)
	require.Empty(t, group.Tiles)
}
