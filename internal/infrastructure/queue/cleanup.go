// Package queue provides the background blob-cleanup dispatcher.
package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/mikan-studio/portfolio-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// CleanupDispatcher routes blob-delete jobs to a fixed set of workers,
// sharded by URL so repeated deletes of the same object stay ordered.
// Deletion is best effort: failures are logged and the job is dropped.
type CleanupDispatcher struct {
	workers []chan string
	blobs   ports.BlobStore
	log     zerolog.Logger
}

// NewCleanupDispatcher creates a dispatcher with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewCleanupDispatcher(numWorkers int, blobs ports.BlobStore, log zerolog.Logger) *CleanupDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &CleanupDispatcher{
		workers: make([]chan string, numWorkers),
		blobs:   blobs,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *CleanupDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue schedules deletion of the object behind url. Non-blocking up to
// channelBuffer capacity per worker.
func (d *CleanupDispatcher) Enqueue(url string) {
	d.workers[d.shardIndex(url)] <- url
}

func (d *CleanupDispatcher) shardIndex(url string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(url))
	return int(h.Sum32()) % len(d.workers)
}

func (d *CleanupDispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case url, ok := <-ch:
			if !ok {
				return
			}
			if err := d.blobs.Delete(ctx, url); err != nil {
				d.log.Error().Err(err).
					Str("url", url).
					Int("worker_id", id).
					Msg("blob cleanup failed")
			}
		}
	}
}
