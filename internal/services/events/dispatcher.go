package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	pgrepo "github.com/Sagar2372004/punarmilan-backend-sub001/internal/repo/postgres"
)

const (
	defaultBufferSize = 256

	EventMutualMatchFormed = "mutual_match_formed"
)

// MutualMatchFormed is the signal published when discovery observes a
// reciprocal like that has no recorded match yet.
type MutualMatchFormed struct {
	ID          uuid.UUID
	RequesterID int64
	CandidateID int64
	OccurredAt  time.Time
}

type Store interface {
	InsertBatch(ctx context.Context, userID *int64, events []pgrepo.EventWriteRecord) error
}

type Config struct {
	BufferSize int
}

// Dispatcher decouples match signal producers from persistence. Emit
// never blocks the request path: when the buffer is full the signal is
// dropped and counted, never queued synchronously.
type Dispatcher struct {
	store  Store
	cfg    Config
	logger *zap.Logger
	now    func() time.Time

	queue   chan MutualMatchFormed
	once    sync.Once
	done    chan struct{}
	dropped int64
	mu      sync.Mutex
}

func NewDispatcher(store Store, cfg Config, logger *zap.Logger) *Dispatcher {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaultBufferSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Dispatcher{
		store:  store,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
		queue:  make(chan MutualMatchFormed, cfg.BufferSize),
		done:   make(chan struct{}),
	}
}

// Start runs the persistence worker until the context is cancelled or
// Close drains the queue.
func (d *Dispatcher) Start(ctx context.Context) {
	go func() {
		defer close(d.done)
		for {
			select {
			case <-ctx.Done():
				d.drain()
				return
			case event, ok := <-d.queue:
				if !ok {
					return
				}
				d.persist(context.WithoutCancel(ctx), event)
			}
		}
	}()
}

// Close stops accepting signals and waits for the worker to finish the
// buffered backlog.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	<-d.done
}

// EmitMutualMatch enqueues a mutual match signal without blocking.
func (d *Dispatcher) EmitMutualMatch(requesterID, candidateID int64, at time.Time) {
	if requesterID <= 0 || candidateID <= 0 {
		return
	}
	if at.IsZero() {
		at = d.now().UTC()
	}

	event := MutualMatchFormed{
		ID:          uuid.New(),
		RequesterID: requesterID,
		CandidateID: candidateID,
		OccurredAt:  at.UTC(),
	}

	select {
	case d.queue <- event:
	default:
		d.mu.Lock()
		d.dropped++
		dropped := d.dropped
		d.mu.Unlock()
		d.logger.Warn("mutual match signal dropped, buffer full",
			zap.Int64("requester_id", requesterID),
			zap.Int64("candidate_id", candidateID),
			zap.Int64("dropped_total", dropped))
	}
}

// Dropped reports how many signals were discarded because the buffer
// was full.
func (d *Dispatcher) Dropped() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dropped
}

func (d *Dispatcher) drain() {
	for {
		select {
		case event, ok := <-d.queue:
			if !ok {
				return
			}
			d.persist(context.Background(), event)
		default:
			return
		}
	}
}

func (d *Dispatcher) persist(ctx context.Context, event MutualMatchFormed) {
	if d.store == nil {
		return
	}

	record := pgrepo.EventWriteRecord{
		Name:       EventMutualMatchFormed,
		OccurredAt: event.OccurredAt,
		Props: map[string]any{
			"event_id":     event.ID.String(),
			"candidate_id": event.CandidateID,
		},
	}

	requesterID := event.RequesterID
	if err := d.store.InsertBatch(ctx, &requesterID, []pgrepo.EventWriteRecord{record}); err != nil {
		d.logger.Warn("persist mutual match event failed",
			zap.Error(err),
			zap.String("event_id", event.ID.String()))
		return
	}

	d.logger.Info(fmt.Sprintf("%s persisted", EventMutualMatchFormed),
		zap.Int64("requester_id", event.RequesterID),
		zap.Int64("candidate_id", event.CandidateID))
}
