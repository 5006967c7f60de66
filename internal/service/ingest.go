package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/go-query-tiles/pkg/log"
)

// StartIngest запускает периодический опрос тайл-сервера по локалям
// из конфига s.cfg.Fetcher.
//
// Особенности:
//   - загрузка выполняется через переданный Fetcher, сохранение —
//     через s.storage.SaveGroup;
//   - после каждого прохода удаляются группы старше s.cfg.Fetcher.Expiry;
//   - останавливается по ctx.
func (s *Service) StartIngest(ctx context.Context, fetcher Fetcher) error {
	const op = "service/ingest/StartIngest"

	locales := s.cfg.Fetcher.Locales
	interval := s.cfg.Fetcher.Interval

	if len(locales) == 0 {
		return fmt.Errorf("%s: no locales configured", op)
	}

	lg := log.From(ctx)
	lg.Info("ingest_start",
		slog.String("op", op),
		slog.Int("locales", len(locales)),
		slog.Duration("interval", interval),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := s.ingestOnce(ctx, fetcher, locales); err != nil {
		lg.Warn("ingest_tick_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	for {
		select {
		case <-ctx.Done():
			lg.Info("ingest_stop", slog.String("op", op))
			return nil
		case <-ticker.C:
			if err := s.ingestOnce(ctx, fetcher, locales); err != nil {
				lg.Warn("ingest_tick_error",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
			}
		}
	}
}

// ingestOnce — один проход: загрузка всех локалей, валидация, сохранение,
// инвалидация кэша и чистка устаревших групп.
func (s *Service) ingestOnce(ctx context.Context, fetcher Fetcher, locales []string) error {
	const op = "service/ingest/ingestOnce"

	lg := log.From(ctx)
	now := time.Now().UTC()

	output := fetcher.FetchMany(ctx, locales)

	var saved, localesErr int

	for result := range output {
		if result.Err != nil {
			localesErr++
			lg.Warn("fetch_error",
				slog.String("op", op),
				slog.String("locale", result.Locale),
				slog.String("err", result.Err.Error()),
			)
			continue
		}

		group, ok := finalizeGroup(result.Group, now)
		if !ok {
			lg.Warn("fetch_empty_group",
				slog.String("op", op),
				slog.String("locale", result.Locale),
			)
			continue
		}

		if err := s.storage.SaveGroup(ctx, group); err != nil {
			return fmt.Errorf("%s: save_group: %w", op, err)
		}

		// Следующий GetQueryTiles перечитает группу из хранилища.
		if s.cache != nil {
			if err := s.cache.Invalidate(ctx, group.Locale); err != nil {
				lg.Warn("cache_invalidate_error",
					slog.String("op", op),
					slog.String("locale", group.Locale),
					slog.String("err", err.Error()),
				)
			}
		}

		saved++
	}

	deleted, err := s.storage.DeleteExpiredGroups(ctx, now.Add(-s.cfg.Fetcher.Expiry))
	if err != nil {
		return fmt.Errorf("%s: delete_expired: %w", op, err)
	}

	lg.Info("ingest_done",
		slog.String("op", op),
		slog.Int("saved", saved),
		slog.Int("locales_err", localesErr),
		slog.Int64("expired_deleted", deleted),
	)

	return nil
}
