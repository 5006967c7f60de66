package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/protobuf/proto"

	tilesv1 "github.com/pribylovaa/go-query-tiles/gen/go/tiles"
	"github.com/pribylovaa/go-query-tiles/internal/models"
	"github.com/pribylovaa/go-query-tiles/internal/tileproto"
)

// GroupCache — минимальный контракт кэша групп плиток по локали.
type GroupCache interface {
	// Get возвращает группу и признак её наличия в кэше.
	Get(ctx context.Context, locale string) (*models.TileGroup, bool, error)
	// Set сохраняет группу с TTL.
	Set(ctx context.Context, locale string, group *models.TileGroup, ttl time.Duration) error
	// Invalidate удаляет группу локали из кэша.
	Invalidate(ctx context.Context, locale string) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "qt:group:".
func NewRedisCache(redisURL, prefix string) (GroupCache, error) {
	if prefix == "" {
		prefix = "qt:group:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(locale string) string { return c.prefix + locale }

// Храним сериализованное дерево (tiles.v1.TileGroup) как бинарную строку.
func (c *redisCache) Get(ctx context.Context, locale string) (*models.TileGroup, bool, error) {
	blob, err := c.rdb.Get(ctx, c.key(locale)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}

		return nil, false, err
	}

	var pb tilesv1.TileGroup
	if err := proto.Unmarshal(blob, &pb); err != nil {
		return nil, false, err
	}

	return tileproto.TileGroupFromProto(&pb), true, nil
}

func (c *redisCache) Set(ctx context.Context, locale string, group *models.TileGroup, ttl time.Duration) error {
	blob, err := proto.Marshal(tileproto.TileGroupToProto(group))
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, c.key(locale), blob, ttl).Err()
}

func (c *redisCache) Invalidate(ctx context.Context, locale string) error {
	return c.rdb.Del(ctx, c.key(locale)).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
