// tileserver — HTTP-клиент внешнего тайл-сервера, реализация service.Fetcher.
//
// Сервер отдаёт плоский бинарный ответ (tiles.v1.ResponseGroup); клиент
// собирает из него доменное дерево через tileproto.ResponseGroupToTileGroup.
package tileserver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/protobuf/proto"

	tilesv1 "github.com/pribylovaa/go-query-tiles/gen/go/tiles"
	"github.com/pribylovaa/go-query-tiles/internal/models"
	"github.com/pribylovaa/go-query-tiles/internal/service"
	"github.com/pribylovaa/go-query-tiles/internal/tileproto"
	"github.com/pribylovaa/go-query-tiles/pkg/log"
)

// Client реализует service.Fetcher поверх HTTP.
// Возвращает доменные группы с незаполненными ID и LastUpdated.
//
// Параллелизм ограничен семафором maxConc. HTTP-клиент настраивается извне
// (таймауты, прокси и т.д.).
type Client struct {
	client    *http.Client
	serverURL string
	maxConc   int
}

// New создаёт новый клиент тайл-сервера.
func New(client *http.Client, serverURL string, maxConcurrent int) *Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}

	return &Client{client: client, serverURL: serverURL, maxConc: maxConcurrent}
}

// FetchMany запрашивает группы нескольких локалей конкурентно и отдаёт
// результаты в канал. Канал закрывается после обработки всех локалей.
func (c *Client) FetchMany(ctx context.Context, locales []string) <-chan service.FetchResult {
	output := make(chan service.FetchResult)

	go func() {
		defer close(output)

		sem := make(chan struct{}, c.maxConc)

		// Барьер перед закрытием канала: все запущенные загрузки должны
		// отпустить семафор, иначе при отмене контекста посреди обхода
		// останутся отправки в уже закрытый канал.
		defer func() {
			for i := 0; i < cap(sem); i++ {
				sem <- struct{}{}
			}
		}()

		for _, l := range locales {
			select {
			case <-ctx.Done():
				return
			default:
			}

			locale := l
			sem <- struct{}{}

			go func() {
				defer func() {
					<-sem
				}()

				group, err := c.fetchOne(ctx, locale)

				output <- service.FetchResult{Locale: locale, Group: group, Err: err}
			}()
		}
	}()

	return output
}

// fetchOne загружает и собирает группу плиток одной локали.
// Локаль передаётся серверу заголовком Accept-Language.
func (c *Client) fetchOne(ctx context.Context, locale string) (*models.TileGroup, error) {
	const op = "tileserver.fetchOne"

	lg := log.From(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}
	req.Header.Set("Accept-Language", locale)

	resp, err := c.client.Do(req)
	if err != nil {
		lg.Warn("http_error",
			slog.String("op", op),
			slog.String("locale", locale),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read_body: %w", op, err)
	}

	var pb tilesv1.ResponseGroup
	if err := proto.Unmarshal(body, &pb); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	group, err := tileproto.ResponseGroupToTileGroup(&pb)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Сервер может не проставить локаль — тогда берётся запрошенная.
	if group.Locale == "" {
		group.Locale = locale
	}

	return group, nil
}
