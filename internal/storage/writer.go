package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"fincontrol/internal/logger"
	"fincontrol/internal/metrics"
	"fincontrol/internal/models"
)

// ErrWriterClosed is returned when a snapshot is queued after Close.
var ErrWriterClosed = errors.New("storage: writer closed")

// WriterConfig configures the asynchronous writer.
type WriterConfig struct {
	// WriteTimeout bounds a single backend write (default: 5s).
	WriteTimeout time.Duration
}

type writeOp struct {
	key   string
	txs   []models.Transaction
	goals []models.Goal
}

// Writer saves collection snapshots in the background.
//
// Each key has one pending slot. A save replaces whatever snapshot of that
// key is still waiting, so a slow backend only ever skips stale states and
// the last snapshot taken is always the one written. Failures are logged and
// counted, never returned to the caller.
type Writer struct {
	repo    *Repository
	config  WriterConfig
	metrics metrics.Recorder

	mu      sync.Mutex
	pending map[string]writeOp
	order   []string
	closed  bool
	wake    chan struct{}
	done    chan struct{}
}

// NewWriter starts the background worker. Call Close to flush it.
func NewWriter(repo *Repository, config WriterConfig, recorder metrics.Recorder) *Writer {
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = 5 * time.Second
	}
	if recorder == nil {
		recorder = metrics.NoOp{}
	}

	w := &Writer{
		repo:    repo,
		config:  config,
		metrics: recorder,
		pending: make(map[string]writeOp),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.worker()
	return w
}

// SaveTransactions queues a snapshot of the transaction collection.
func (w *Writer) SaveTransactions(txs []models.Transaction) error {
	snapshot := make([]models.Transaction, len(txs))
	copy(snapshot, txs)
	return w.enqueue(writeOp{key: TransactionsKey, txs: snapshot})
}

// SaveGoals queues a snapshot of the goal collection.
func (w *Writer) SaveGoals(goals []models.Goal) error {
	snapshot := make([]models.Goal, len(goals))
	copy(snapshot, goals)
	return w.enqueue(writeOp{key: GoalsKey, goals: snapshot})
}

func (w *Writer) enqueue(op writeOp) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWriterClosed
	}

	if _, waiting := w.pending[op.key]; waiting {
		w.metrics.RecordPersistSuperseded(op.key)
	} else {
		w.order = append(w.order, op.key)
	}
	w.pending[op.key] = op

	select {
	case w.wake <- struct{}{}:
	default:
	}
	return nil
}

func (w *Writer) worker() {
	defer close(w.done)
	for range w.wake {
		w.flush()
	}
	w.flush()
}

// flush writes every pending snapshot in the order its key was first queued.
func (w *Writer) flush() {
	for {
		w.mu.Lock()
		if len(w.order) == 0 {
			w.mu.Unlock()
			return
		}
		key := w.order[0]
		w.order = w.order[1:]
		op := w.pending[key]
		delete(w.pending, key)
		w.mu.Unlock()

		w.write(op)
	}
}

func (w *Writer) write(op writeOp) {
	ctx, cancel := context.WithTimeout(context.Background(), w.config.WriteTimeout)
	defer cancel()

	start := time.Now()
	var err error
	if op.key == TransactionsKey {
		err = w.repo.SaveTransactions(ctx, op.txs)
	} else {
		err = w.repo.SaveGoals(ctx, op.goals)
	}
	w.metrics.RecordPersistWrite(op.key, err == nil, time.Since(start))

	if err != nil {
		logger.Get().Errorw("Failed to save collection",
			"key", op.key, "backend", w.repo.Store().Name(), "error", err)
	}
}

// Close stops accepting snapshots and waits until every pending one is
// written or ctx ends, whichever comes first.
func (w *Writer) Close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.wake)
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
