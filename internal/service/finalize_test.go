package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-query-tiles/internal/models"
	"github.com/stretchr/testify/require"
)

// Тесты финализации группы (finalize.go).

// TestFinalizeGroup_OK — валидная группа получает uuid и отметку времени.
func TestFinalizeGroup_OK(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	group := &models.TileGroup{
		Locale: "  en-US  ",
		Tiles:  []*models.Tile{{ID: "tile-1"}},
	}

	got, ok := finalizeGroup(group, now)
	require.True(t, ok)
	require.Equal(t, "en-US", got.Locale)
	require.Equal(t, now, got.LastUpdated)

	_, err := uuid.Parse(got.ID)
	require.NoError(t, err, "ID должен быть валидным uuid")
}

// TestFinalizeGroup_OverwritesExternalID — внешние ID и отметка времени
// перекрываются всегда.
func TestFinalizeGroup_OverwritesExternalID(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	group := &models.TileGroup{
		ID:          "external-id",
		Locale:      "en-US",
		LastUpdated: now.Add(-time.Hour),
		Tiles:       []*models.Tile{{ID: "tile-1"}},
	}

	got, ok := finalizeGroup(group, now)
	require.True(t, ok)
	require.NotEqual(t, "external-id", got.ID)
	require.Equal(t, now, got.LastUpdated)
}

// TestFinalizeGroup_Rejects — nil, пустая локаль, группа без плиток.
func TestFinalizeGroup_Rejects(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	tests := []struct {
		name  string
		group *models.TileGroup
	}{
		{"nil group", nil},
		{"empty locale", &models.TileGroup{Locale: "  ", Tiles: []*models.Tile{{ID: "t"}}}},
		{"no tiles", &models.TileGroup{Locale: "en-US"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, ok := finalizeGroup(tc.group, now)
			require.False(t, ok)
		})
	}
}
