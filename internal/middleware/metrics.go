package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tripmate/internal/metrics"
)

// MetricsInterceptor records a request count and latency per procedure.
func MetricsInterceptor() connect.Interceptor {
	return &metricsInterceptor{}
}

type metricsInterceptor struct{}

func (i *metricsInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		metrics.ObserveRPC(req.Spec().Procedure, CodeOf(err), time.Since(start))
		return resp, err
	}
}

func (i *metricsInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (i *metricsInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := time.Now()
		err := next(ctx, conn)
		metrics.ObserveRPC(conn.Spec().Procedure, CodeOf(err), time.Since(start))
		return err
	}
}

// CodeOf returns the Connect code name for err, "ok" for nil.
func CodeOf(err error) string {
	if err == nil {
		return "ok"
	}
	return connect.CodeOf(err).String()
}
