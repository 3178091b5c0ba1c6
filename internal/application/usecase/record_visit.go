// Package usecase contains navkit's application use cases.
package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bnema/navkit/internal/domain/entity"
	"github.com/bnema/navkit/internal/domain/repository"
	"github.com/bnema/navkit/internal/logging"
	"github.com/bnema/navkit/internal/navigation"
)

const (
	// visitQueueSize is the buffer size for the async visit queue.
	// If the queue is full, new records are dropped with a warning.
	visitQueueSize = 100

	// visitFlushInterval coalesces bursts into fewer persistence writes.
	visitFlushInterval = 100 * time.Millisecond

	// visitDeduplicationWindow is the time window in which repeated
	// dispatches of the same URI count as a single visit. Prevents
	// inflation from redirects and rapid history replacement.
	visitDeduplicationWindow = 2 * time.Second

	logURIMaxLen = 60
)

// visitRecord holds data for async visit recording.
type visitRecord struct {
	uri    string
	visits int
}

// RecordVisitUseCase journals dispatched locations into the visit repository
// without blocking the dispatch path. Records are queued, coalesced by a
// background worker and upserted in batches.
type RecordVisitUseCase struct {
	visitRepo repository.VisitRepository

	recentMu       sync.Mutex
	lastURI        string
	lastRecordedAt time.Time

	queue chan visitRecord
	done  chan struct{}
	wg    sync.WaitGroup
	ctx   context.Context // Base context for the background worker
}

// NewRecordVisitUseCase creates the use case and starts its worker.
func NewRecordVisitUseCase(ctx context.Context, visitRepo repository.VisitRepository) *RecordVisitUseCase {
	if ctx == nil {
		ctx = context.Background()
	}

	uc := &RecordVisitUseCase{
		visitRepo: visitRepo,
		queue:     make(chan visitRecord, visitQueueSize),
		done:      make(chan struct{}),
		ctx:       ctx,
	}

	uc.wg.Add(1)
	go uc.worker()

	return uc
}

// Close shuts down the background worker and drains any pending records.
func (uc *RecordVisitUseCase) Close() {
	close(uc.done)
	uc.wg.Wait()
}

// Attach registers the recorder as a change listener on the manager.
// The returned handle can be passed to RemoveListener to detach.
func (uc *RecordVisitUseCase) Attach(ctx context.Context, m *navigation.Manager) (*navigation.Listener, error) {
	return m.AddListener(ctx, func(newURI string) {
		uc.Record(ctx, newURI)
	})
}

// Record queues a visit for async recording. Non-blocking: dispatch fan-out
// must never wait on persistence I/O.
func (uc *RecordVisitUseCase) Record(ctx context.Context, rawURI string) {
	log := logging.FromContext(ctx)
	rawURI = strings.TrimSpace(rawURI)
	if rawURI == "" {
		return
	}

	now := time.Now()

	uc.recentMu.Lock()
	if uc.lastURI == rawURI && now.Sub(uc.lastRecordedAt) < visitDeduplicationWindow {
		uc.recentMu.Unlock()
		return
	}
	uc.lastURI = rawURI
	uc.lastRecordedAt = now
	uc.recentMu.Unlock()

	select {
	case uc.queue <- visitRecord{uri: rawURI, visits: 1}:
	default:
		log.Warn().Str("uri", logging.TruncateURL(rawURI, logURIMaxLen)).Msg("visit queue full, dropping record")
	}
}

// worker drains the queue and persists records without blocking dispatch.
func (uc *RecordVisitUseCase) worker() {
	defer uc.wg.Done()

	log := logging.FromContext(uc.ctx).With().
		Str("component", "visit-worker").
		Logger()

	ticker := time.NewTicker(visitFlushInterval)
	defer ticker.Stop()

	pending := make(map[string]int)

	flushPending := func() {
		if len(pending) == 0 {
			return
		}
		for visitURI, visits := range pending {
			uc.persist(uc.ctx, visitRecord{uri: visitURI, visits: visits})
		}
		clear(pending)
	}

	drainQueue := func() {
		for {
			select {
			case record := <-uc.queue:
				pending[record.uri] += record.visits
			default:
				return
			}
		}
	}

	for {
		select {
		case record := <-uc.queue:
			pending[record.uri] += record.visits
		case <-ticker.C:
			flushPending()
		case <-uc.done:
			log.Debug().Int("remaining", len(uc.queue)).Msg("draining visit queue")
			drainQueue()
			flushPending()
			log.Debug().Msg("visit worker shutdown complete")
			return
		}
	}
}

// persist writes a visit record to the repository.
// Called from the background worker goroutine.
func (uc *RecordVisitUseCase) persist(ctx context.Context, record visitRecord) {
	log := logging.FromContext(ctx)

	existing, err := uc.visitRepo.FindByURI(ctx, record.uri)
	if err != nil {
		log.Warn().Err(err).Str("uri", record.uri).Msg("failed to check visit")
		return
	}

	visits := int64(max(1, record.visits))
	if existing != nil {
		existing.Record(visits)
		if err := uc.visitRepo.Save(ctx, existing); err != nil {
			log.Warn().Err(err).Str("uri", record.uri).Msg("failed to update visit")
		}
		return
	}

	visit := entity.NewVisit(record.uri)
	visit.Count = visits
	if err := uc.visitRepo.Save(ctx, visit); err != nil {
		log.Warn().Err(err).Str("uri", record.uri).Msg("failed to save visit")
	}
}
