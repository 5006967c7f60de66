package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/pribylovaa/go-query-tiles/internal/models"
	"github.com/pribylovaa/go-query-tiles/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты для пакета postgres (реализация хранилища в groups.go):
// — поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// — применяют миграции из ./migrations;
// — проверяют:
//    SaveGroup: insert и upsert по id с полной перезаписью дерева;
//    GroupByID: успешный сценарий и ErrNotFound;
//    LatestGroupByLocale: выбор самой свежей группы локали, ErrNotFound для пустой локали;
//    DeleteExpiredGroups: удаление строго старше отметки, счётчик удалённых;
//    сохранность дерева произвольной глубины через бинарную колонку.

// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
// Используется для поиска SQL-миграций в каталоге ./migrations независимо от текущего рабочего каталога.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает PostgreSQL через testcontainers-go,
// применяет миграции и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init_tile_groups.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// newStoredGroup — группа с деревом из трёх уровней для проверки
// сохранности вложенности.
func newStoredGroup(id, locale string, lastUpdated time.Time) *models.TileGroup {
	return &models.TileGroup{
		ID:          id,
		Locale:      locale,
		LastUpdated: lastUpdated,
		Tiles: []*models.Tile{
			{
				ID:          id + "-1",
				DisplayText: "top tile",
				QueryText:   "top query",
				ImageMetadatas: []models.ImageMetadata{
					{URL: "https://www.example.com/top.png"},
				},
				SubTiles: []*models.Tile{
					{
						ID:          id + "-1-1",
						DisplayText: "child",
						SubTiles: []*models.Tile{
							{ID: id + "-1-1-1", QueryText: "grandchild query"},
						},
					},
				},
			},
			{ID: id + "-2", DisplayText: "second top tile"},
		},
	}
}

func TestIntegration_SaveGroup_And_GroupByID_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	now := time.Now().UTC().Truncate(time.Millisecond)
	group := newStoredGroup("group-a", "en-US", now)

	require.NoError(t, st.SaveGroup(context.Background(), group))

	got, err := st.GroupByID(context.Background(), "group-a")
	require.NoError(t, err)
	require.True(t, models.TileGroupsIdentical(group, got))
}

func TestIntegration_SaveGroup_Upsert_ReplacesTree(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	now := time.Now().UTC().Truncate(time.Millisecond)
	first := newStoredGroup("group-a", "en-US", now)
	require.NoError(t, st.SaveGroup(context.Background(), first))

	// Повторное сохранение того же id целиком заменяет содержимое.
	second := &models.TileGroup{
		ID:          "group-a",
		Locale:      "ru-RU",
		LastUpdated: now.Add(time.Hour),
		Tiles:       []*models.Tile{{ID: "solo", DisplayText: "replaced"}},
	}
	require.NoError(t, st.SaveGroup(context.Background(), second))

	got, err := st.GroupByID(context.Background(), "group-a")
	require.NoError(t, err)
	require.True(t, models.TileGroupsIdentical(second, got))
}

func TestIntegration_GroupByID_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.GroupByID(context.Background(), "missing")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_LatestGroupByLocale(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	now := time.Now().UTC().Truncate(time.Millisecond)
	ctx := context.Background()

	older := newStoredGroup("group-old", "en-US", now.Add(-2*time.Hour))
	newer := newStoredGroup("group-new", "en-US", now)
	other := newStoredGroup("group-ru", "ru-RU", now)

	require.NoError(t, st.SaveGroup(ctx, older))
	require.NoError(t, st.SaveGroup(ctx, newer))
	require.NoError(t, st.SaveGroup(ctx, other))

	got, err := st.LatestGroupByLocale(ctx, "en-US")
	require.NoError(t, err)
	require.Equal(t, "group-new", got.ID)
	require.True(t, models.TileGroupsIdentical(newer, got))

	_, err = st.LatestGroupByLocale(ctx, "de-DE")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_DeleteExpiredGroups(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	now := time.Now().UTC().Truncate(time.Millisecond)
	ctx := context.Background()

	expired1 := newStoredGroup("group-exp-1", "en-US", now.Add(-72*time.Hour))
	expired2 := newStoredGroup("group-exp-2", "ru-RU", now.Add(-49*time.Hour))
	fresh := newStoredGroup("group-fresh", "en-US", now)

	require.NoError(t, st.SaveGroup(ctx, expired1))
	require.NoError(t, st.SaveGroup(ctx, expired2))
	require.NoError(t, st.SaveGroup(ctx, fresh))

	deleted, err := st.DeleteExpiredGroups(ctx, now.Add(-48*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 2, deleted)

	_, err = st.GroupByID(ctx, "group-exp-1")
	require.ErrorIs(t, err, storage.ErrNotFound)

	got, err := st.GroupByID(ctx, "group-fresh")
	require.NoError(t, err)
	require.Equal(t, "group-fresh", got.ID)
}
