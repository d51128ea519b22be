// Package perf wraps the cleaning pipeline for throughput: bounded parallel
// batches, chunked processing of large texts, in-process memoization, and a
// shared cache lookup through the cache package.
//
// Every batch carries a batch_id in its logs. Parallel, cached and GPU calls
// return exactly what the sequential pipeline would; chunked cleaning only
// differs where a chunk border splits a word.
package perf
