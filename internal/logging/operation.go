package logging

import (
	"context"
	"log/slog"
	"time"
)

// SlowOperationThreshold is the duration above which LogPerformance warns.
const SlowOperationThreshold = time.Second

// LogOperation records a text transformation with its input and output sizes
// in runes and the resulting reduction ratio.
func LogOperation(ctx context.Context, logger *slog.Logger, operation string, inputLen, outputLen int) {
	ratio := 0.0
	if inputLen > 0 {
		ratio = float64(outputLen) / float64(inputLen)
	}
	WithContext(ctx, logger).Debug("text processed",
		String(FieldOperation, operation),
		Int("input_length", inputLen),
		Int("output_length", outputLen),
		Float64("reduction_ratio", ratio),
	)
}

// LogPerformance records the elapsed time of operation. Anything slower than
// SlowOperationThreshold is logged at WARN.
func LogPerformance(ctx context.Context, logger *slog.Logger, operation string, elapsed time.Duration, attrs ...Attr) {
	attrs = append(attrs,
		String(FieldOperation, operation),
		Int64(FieldDurationMS, elapsed.Milliseconds()),
	)
	logger = WithContext(ctx, logger)
	if elapsed > SlowOperationThreshold {
		WarnWithContext(logger, "slow operation", "slow_operation",
			append(attrs,
				String(FieldErrorHint, "reduce batch size or raise performance.max_workers"),
				String(FieldImpact, "cleaning took longer than expected"),
			)...)
		return
	}
	logger.Debug("operation timing", Args(attrs...)...)
}
