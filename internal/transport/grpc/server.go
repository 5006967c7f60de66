// grpc содержит реализацию gRPC-эндпоинтов QueryTilesService.
//
// Принципы:
//   - Контекст запроса прокидывается в сервис без потерь;
//   - Ошибки сервиса явно транслируются в коды gRPC:
//   - ErrInvalidArgument -> codes.InvalidArgument;
//   - ErrNotFound -> codes.NotFound;
//   - иные ошибки -> codes.Internal с единым безопасным сообщением.
package grpc

import (
	"context"
	"errors"

	tilesv1 "github.com/pribylovaa/go-query-tiles/gen/go/tiles"
	"github.com/pribylovaa/go-query-tiles/internal/service"
	"github.com/pribylovaa/go-query-tiles/internal/tileproto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type TilesServer struct {
	tilesv1.UnimplementedQueryTilesServiceServer
	service *service.Service
}

// NewTilesServer создаёт gRPC-сервер плиток.
func NewTilesServer(svc *service.Service) *TilesServer {
	return &TilesServer{service: svc}
}

// GetQueryTiles возвращает верхнеуровневые плитки актуальной группы
// локали; поддеревья каждой плитки передаются целиком.
// Маппинг ошибок:
//   - ErrInvalidArgument -> InvalidArgument;
//   - ErrNotFound -> NotFound;
//   - прочее -> Internal (без раскрытия деталей).
func (s *TilesServer) GetQueryTiles(ctx context.Context, req *tilesv1.GetQueryTilesRequest) (*tilesv1.GetQueryTilesResponse, error) {
	const op = "transport/grpc/server/GetQueryTiles"

	group, err := s.service.GetQueryTiles(ctx, req.GetLocale())
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			return nil, status.Errorf(codes.InvalidArgument, "%s: %v", op, err)
		}

		if errors.Is(err, service.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "%s: %v", op, err)
		}

		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &tilesv1.GetQueryTilesResponse{
		Tiles: tileproto.TileGroupToProto(group).GetTiles(),
	}, nil
}

// GetTile возвращает плитку (с поддеревом) по идентификатору.
// Маппинг ошибок:
//   - ErrInvalidArgument -> InvalidArgument;
//   - ErrNotFound -> NotFound;
//   - прочее -> Internal.
func (s *TilesServer) GetTile(ctx context.Context, req *tilesv1.GetTileRequest) (*tilesv1.GetTileResponse, error) {
	const op = "transport/grpc/server/GetTile"

	tile, err := s.service.TileByID(ctx, req.GetLocale(), req.GetTileId())
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			return nil, status.Errorf(codes.InvalidArgument, "%s: %v", op, err)
		}

		if errors.Is(err, service.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "%s: %v", op, err)
		}

		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &tilesv1.GetTileResponse{
		Tile: tileproto.TileToProto(tile),
	}, nil
}
