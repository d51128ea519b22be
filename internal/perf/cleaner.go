package perf

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"textclean/internal/advanced"
	"textclean/internal/cache"
	"textclean/internal/config"
	"textclean/internal/logging"
)

const (
	defaultWorkers   = 4
	defaultChunkSize = 1000
	defaultMemoSize  = 1000
)

// Cleaner runs the configured pipeline with bounded parallelism, chunking
// and memoization. It is safe for concurrent use.
type Cleaner struct {
	pipeline  *Pipeline
	advanced  *advanced.Cleaner
	workers   int
	chunkSize int
	enableGPU bool
	memo      *cache.Memory
	store     cache.Store
	logger    *slog.Logger
	gpuProbe  func() bool
}

// New builds a Cleaner from cfg. store backs CleanTextDistributed; pass nil
// (or cache.Noop) to always clean directly. A nil cfg uses config.Default.
func New(cfg *config.Config, store cache.Store, logger *slog.Logger) (*Cleaner, error) {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	pipeline, err := NewPipeline(cfg.Cleaner)
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}
	if store == nil {
		store = cache.Noop{}
	}

	workers := cfg.Performance.MaxWorkers
	if workers <= 0 {
		workers = defaultWorkers
	}
	chunkSize := cfg.Performance.ChunkSize
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	memoSize := cfg.Cache.MaxSize
	if memoSize <= 0 {
		memoSize = defaultMemoSize
	}

	return &Cleaner{
		pipeline:  pipeline,
		advanced:  advanced.NewCleaner(cfg.Cleaner.DefaultLanguage, logger),
		workers:   workers,
		chunkSize: chunkSize,
		enableGPU: cfg.Performance.EnableGPU,
		memo:      cache.NewMemory(memoSize, 0),
		store:     store,
		logger:    logging.NewComponentLogger(logger, "perf"),
		gpuProbe:  probeGPU,
	}, nil
}

// Pipeline exposes the configured pipeline.
func (c *Cleaner) Pipeline() *Pipeline { return c.pipeline }

// Workers reports the fan-out limit.
func (c *Cleaner) Workers() int { return c.workers }

// CleanText runs the configured pipeline once, without caching.
func (c *Cleaner) CleanText(text string) string {
	return c.pipeline.Clean(text)
}

// CleanTextsParallel cleans every text with at most Workers goroutines. The
// result has the same length and order as texts. Cancellation of ctx stops
// the batch and returns the context error.
func (c *Cleaner) CleanTextsParallel(ctx context.Context, texts []string) ([]string, error) {
	results := make([]string, len(texts))
	if len(texts) == 0 {
		return results, nil
	}
	ctx = ensureBatchID(ctx, "clean_batch")
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.pipeline.Clean(text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("clean batch: %w", err)
	}

	logging.LogPerformance(ctx, c.logger, "clean_batch", time.Since(start),
		logging.Int("texts", len(texts)),
		logging.Int("workers", c.workers),
	)
	return results, nil
}

// CleanLargeText splits text into chunks of chunkSize runes, cleans them in
// parallel and joins the results with a single space. A chunkSize of zero or
// less uses the configured chunk size. Words may be split at chunk borders.
func (c *Cleaner) CleanLargeText(ctx context.Context, text string, chunkSize int) (string, error) {
	if chunkSize <= 0 {
		chunkSize = c.chunkSize
	}
	chunks := splitRunes(text, chunkSize)
	ctx = ensureBatchID(ctx, "clean_large_text")
	cleaned, err := c.CleanTextsParallel(ctx, chunks)
	if err != nil {
		return "", err
	}
	out := strings.Join(cleaned, " ")
	logging.LogOperation(ctx, c.logger, "clean_large_text", len([]rune(text)), len([]rune(out)))
	return out, nil
}

func splitRunes(text string, size int) []string {
	runes := []rune(text)
	chunks := make([]string, 0, len(runes)/size+1)
	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// CleanTextCached memoizes CleanText in process.
func (c *Cleaner) CleanTextCached(text string) string {
	return c.memoized("clean\x00"+text, func() string { return c.pipeline.Clean(text) })
}

// CleanTextWithOptions runs the advanced steps selected by opts, then the
// configured pipeline. Results are memoized per text and option set.
func (c *Cleaner) CleanTextWithOptions(text string, opts advanced.Options) string {
	return c.memoized("options\x00"+opts.Key()+"\x00"+text, func() string {
		return c.pipeline.Clean(c.advanced.CleanAdvanced(text, opts))
	})
}

// ClearCache drops every memoized result.
func (c *Cleaner) ClearCache() {
	c.memo.Purge()
	c.logger.Debug("memoization cache cleared")
}

// CacheLen reports the number of memoized results.
func (c *Cleaner) CacheLen() int { return c.memo.Len() }

func (c *Cleaner) memoized(key string, compute func() string) string {
	ctx := context.Background()
	if value, ok, _ := c.memo.Get(ctx, key); ok {
		return value
	}
	value := compute()
	_ = c.memo.Set(ctx, key, value)
	return value
}

// CleanTextDistributed looks the result up in the shared store, cleaning and
// storing it on a miss. Store failures are logged and the text is cleaned
// directly, so the call never fails because of the cache.
func (c *Cleaner) CleanTextDistributed(ctx context.Context, text string) string {
	key := cache.Key("clean", string(c.pipeline.Mode()), strings.Join(c.pipeline.Steps(), ","), text)
	logger := logging.WithContext(ctx, c.logger)

	value, ok, err := c.store.Get(ctx, key)
	if err != nil {
		logging.WarnWithContext(logger, "distributed cache read failed", "cache_read_failed",
			logging.String("backend", c.store.Name()),
			logging.Error(err),
			logging.String(logging.FieldImpact, "text cleaned without cache"),
		)
	} else if ok {
		logger.Debug("distributed cache hit", logging.String("backend", c.store.Name()))
		return value
	}

	cleaned := c.pipeline.Clean(text)
	if err == nil {
		if setErr := c.store.Set(ctx, key, cleaned); setErr != nil {
			logging.WarnWithContext(logger, "distributed cache write failed", "cache_write_failed",
				logging.String("backend", c.store.Name()),
				logging.Error(setErr),
				logging.String(logging.FieldImpact, "result will be recomputed next time"),
			)
		}
	}
	return cleaned
}

// Advanced exposes the advanced cleaner sharing this Cleaner's language
// fallback and logger.
func (c *Cleaner) Advanced() *advanced.Cleaner { return c.advanced }

func ensureBatchID(ctx context.Context, operation string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := logging.BatchIDFromContext(ctx); !ok {
		ctx = logging.WithBatchID(ctx, uuid.NewString())
	}
	if _, ok := logging.OperationFromContext(ctx); !ok {
		ctx = logging.WithOperation(ctx, operation)
	}
	return ctx
}
