package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/realtyhub/marketplace-api/internal/api/metrics"
	"github.com/realtyhub/marketplace-api/internal/core/domain"
	"github.com/realtyhub/marketplace-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher fans audit entries out to a fixed set of workers using consistent
// hashing on the actor id, so one actor's audit trail keeps its ordering.
// Writes are best-effort: a full channel or a failed insert is logged and
// dropped, never propagated to the request that produced the entry.
type Dispatcher struct {
	workers []chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an audit entry for its actor's worker without blocking the
// caller; entries are dropped when the worker's buffer is full.
func (d *Dispatcher) Record(entry domain.AuditEntry) {
	select {
	case d.workers[d.shardIndex(entry.ActorID)] <- entry:
	default:
		metrics.AuditDroppedTotal.Inc()
		d.log.Warn().Str("actor_id", entry.ActorID).Str("action", string(entry.Action)).Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps an actor id deterministically to a worker index.
func (d *Dispatcher) shardIndex(actorID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(actorID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.Insert(ctx, &entry); err != nil {
				d.log.Error().Err(err).
					Str("actor_id", entry.ActorID).
					Int("worker_id", id).
					Msg("audit write failed")
				continue
			}
			metrics.AuditWrittenTotal.WithLabelValues(string(entry.Action)).Inc()
		}
	}
}
