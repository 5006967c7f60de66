package interceptors

import (
	"context"
	"log/slog"
	"time"

	"github.com/pribylovaa/go-query-tiles/pkg/log"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// UnaryLoggingInterceptor возвращает unary-интерсептор access-логирования.
//
// Поведение:
//  1. request_id берётся из metadata x-request-id; при отсутствии — новый UUID;
//  2. в контекст кладётся *slog.Logger, обогащённый request_id и методом
//     (pkg/log) — обработчики используют его через log.From(ctx);
//  3. после обработки пишется одна запись "grpc": метод, peer, код статуса,
//     длительность. При отсутствии peer пишется "-".
func UnaryLoggingInterceptor(base *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		var requestID string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get("x-request-id"); len(values) > 0 {
				requestID = values[0]
			}
		}
		if requestID == "" {
			requestID = uuid.NewString()
		}

		peerAddr := "-"
		if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
			peerAddr = p.Addr.String()
		}

		lg := base.With(
			slog.String("request_id", requestID),
			slog.String("method", info.FullMethod),
		)
		ctx = log.Into(ctx, lg)

		resp, err := handler(ctx, req)

		lg.Info("grpc",
			slog.String("peer", peerAddr),
			slog.String("code", status.Code(err).String()),
			slog.Duration("dur", time.Since(start)),
		)

		return resp, err
	}
}
