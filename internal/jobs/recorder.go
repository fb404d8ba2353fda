package jobs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/risehub-org/risehub/internal/domain"
)

const (
	defaultQueueSize    = 256
	defaultWriteTimeout = 5 * time.Second
)

// HistoryWriter appends search history entries.
type HistoryWriter interface {
	Append(ctx context.Context, entry *domain.SearchHistoryEntry) error
}

// EventWriter appends interaction events.
type EventWriter interface {
	Append(ctx context.Context, event *domain.InteractionEvent) error
}

// CounterStore bumps the monotonic content counters.
type CounterStore interface {
	IncrementViewCount(ctx context.Context, contentID string) error
	IncrementSearchAppearances(ctx context.Context, contentIDs []string) error
}

type recordJob struct {
	name string
	run  func(ctx context.Context) error
}

// Recorder is the append-only side channel of the discovery engine: it
// persists search history, interaction events, and counter bumps without
// ever blocking the scoring path. Writes are at-least-once; a full queue
// drops the write and logs instead of applying backpressure.
type Recorder struct {
	history      HistoryWriter
	events       EventWriter
	counters     CounterStore
	queue        chan recordJob
	writeTimeout time.Duration
	stopChan     chan struct{}
	doneChan     chan struct{}
}

// NewRecorder creates a Recorder with the given queue capacity.
func NewRecorder(history HistoryWriter, events EventWriter, counters CounterStore, queueSize int) *Recorder {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Recorder{
		history:      history,
		events:       events,
		counters:     counters,
		queue:        make(chan recordJob, queueSize),
		writeTimeout: defaultWriteTimeout,
		stopChan:     make(chan struct{}),
		doneChan:     make(chan struct{}),
	}
}

// Start begins the recorder's drain loop.
func (r *Recorder) Start(ctx context.Context) {
	defer close(r.doneChan)

	log.Printf("recorder started (queue capacity %d)", cap(r.queue))

	for {
		select {
		case <-ctx.Done():
			log.Println("recorder stopped: context cancelled")
			r.drain()
			return
		case <-r.stopChan:
			log.Println("recorder stopped: stop signal received")
			r.drain()
			return
		case job := <-r.queue:
			r.process(job)
		}
	}
}

// Stop gracefully stops the recorder, draining buffered writes first.
func (r *Recorder) Stop() {
	close(r.stopChan)
	<-r.doneChan
	log.Println("recorder shutdown complete")
}

// RecordSearch enqueues the side effects of a served search: a history
// entry when a user identity is present, and a search-appearance bump for
// every item on the returned page.
func (r *Recorder) RecordSearch(userID, query string, contentIDs []string) {
	if userID != "" {
		entry := &domain.SearchHistoryEntry{
			ID:        uuid.NewString(),
			UserID:    userID,
			Query:     query,
			CreatedAt: time.Now().UTC(),
		}
		r.enqueue(recordJob{
			name: "search_history",
			run: func(ctx context.Context) error {
				return r.history.Append(ctx, entry)
			},
		})
	}

	if len(contentIDs) > 0 {
		ids := append([]string(nil), contentIDs...)
		r.enqueue(recordJob{
			name: "search_appearances",
			run: func(ctx context.Context) error {
				return r.counters.IncrementSearchAppearances(ctx, ids)
			},
		})
	}
}

// RecordInteraction validates and enqueues an interaction event. View
// events additionally bump the item's view counter.
func (r *Recorder) RecordInteraction(event *domain.InteractionEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	if err := domain.ValidateInteractionEvent(event); err != nil {
		return domain.NewDomainErrorWithCause(domain.ErrCodeValidation, "invalid interaction event", err)
	}

	r.enqueue(recordJob{
		name: "interaction_event",
		run: func(ctx context.Context) error {
			if err := r.events.Append(ctx, event); err != nil {
				return err
			}
			if event.Type == domain.InteractionTypeView {
				return r.counters.IncrementViewCount(ctx, event.ContentID)
			}
			return nil
		},
	})
	return nil
}

func (r *Recorder) enqueue(job recordJob) {
	select {
	case r.queue <- job:
	default:
		log.Printf("recorder: queue full, dropping %s write", job.name)
	}
}

func (r *Recorder) process(job recordJob) {
	// Each write gets its own deadline, detached from any request context.
	ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
	defer cancel()

	if err := job.run(ctx); err != nil {
		log.Printf("recorder: %s write failed: %v", job.name, err)
	}
}

func (r *Recorder) drain() {
	for {
		select {
		case job := <-r.queue:
			r.process(job)
		default:
			return
		}
	}
}
