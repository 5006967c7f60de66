package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-query-tiles/internal/models"
)

// finalizeGroup доводит группу до инвариантов домена:
//   - Locale обязательна (после TrimSpace) — иначе группа отбрасывается;
//   - пустая группа (без плиток) отбрасывается;
//   - ID := новый uuid (перекрывает любые внешние значения);
//   - LastUpdated := nowUTC.
//
// Возвращает (группа, ok=false если группу следует отбросить).
func finalizeGroup(group *models.TileGroup, nowUTC time.Time) (*models.TileGroup, bool) {
	if group == nil {
		return nil, false
	}

	group.Locale = strings.TrimSpace(group.Locale)
	if group.Locale == "" || len(group.Tiles) == 0 {
		return nil, false
	}

	group.ID = uuid.NewString()
	group.LastUpdated = nowUTC

	return group, true
}
