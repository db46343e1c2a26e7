package llm

import (
	"context"
	"stepwise_backend/pkg/logger"
	"stepwise_backend/pkg/monitoring"
	"stepwise_backend/pkg/tracing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// ObservedProvider 为每次调用记录日志、指标与追踪 span
type ObservedProvider struct {
	inner Provider
}

func WithObservability(p Provider) Provider {
	return &ObservedProvider{inner: p}
}

func (o *ObservedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	purpose := PurposeFrom(ctx)

	ctx, span := tracing.StartSpan(ctx, "llm.generate",
		attribute.String("llm.model", o.inner.ModelID()),
		attribute.String("llm.purpose", purpose),
	)
	defer span.End()

	start := time.Now()
	resp, err := o.inner.Generate(ctx, req)
	latency := time.Since(start)

	monitoring.ObserveLLM(purpose, latency, err)

	fields := []zap.Field{
		zap.String("model", o.inner.ModelID()),
		zap.String("purpose", purpose),
		zap.Duration("latency", latency),
		zap.Bool("structured", req.Schema != nil),
		zap.Int("images", countImages(req)),
	}
	if resp != nil {
		fields = append(fields,
			zap.String("served_by", resp.Model),
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
			zap.String("stop_reason", resp.StopReason),
		)
		span.SetAttributes(attribute.Int("llm.output_tokens", resp.Usage.OutputTokens))
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Log.Warn("LLM request failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	logger.Log.Info("LLM request completed", fields...)
	return resp, nil
}

func (o *ObservedProvider) ModelID() string {
	return o.inner.ModelID()
}

func countImages(req Request) int {
	n := 0
	for _, m := range req.Messages {
		n += len(m.Images)
	}
	return n
}

// TimeoutProvider 限制单次调用时长
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout timeout 为 0 时原样返回
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: timeout}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
