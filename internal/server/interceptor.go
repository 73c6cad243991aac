package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/lbeckmann/cardvault/internal/common"
)

// RequestIDInterceptor tags every unary call with a request ID and logs the
// method, duration and outcome.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		reqID := uuid.NewString()
		ctx = common.WithRequestID(ctx, reqID)

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("grpc.unary", "method", info.FullMethod, "req_id", reqID, "duration_ms", time.Since(start).Milliseconds(), "error", err)
		} else {
			logger.Info("grpc.unary", "method", info.FullMethod, "req_id", reqID, "duration_ms", time.Since(start).Milliseconds())
		}
		return resp, err
	}
}
