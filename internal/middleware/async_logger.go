package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/logger"
)

// LogWriter persists log entries.
type LogWriter interface {
	CreateLog(ctx context.Context, entry *model.LogEntry) error
}

// AsyncLoggerConfig sizes the async logger.
type AsyncLoggerConfig struct {
	BufferSize   int
	NumWorkers   int
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the production sizing.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncLogger writes log entries from a fixed worker pool. Entries are dropped when the
// buffer is full so a slow database never blocks a request. A nil *AsyncLogger accepts
// and discards entries.
type AsyncLogger struct {
	writer       LogWriter
	entryCh      chan *model.LogEntry
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
	writeTimeout time.Duration

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	errors   atomic.Int64
}

// AsyncLoggerStats are counters since start.
type AsyncLoggerStats struct {
	Enqueued int64 `json:"enqueued"`
	Dropped  int64 `json:"dropped"`
	Written  int64 `json:"written"`
	Errors   int64 `json:"errors"`
}

// NewAsyncLogger starts the workers. It returns nil when writer is nil.
func NewAsyncLogger(writer LogWriter, cfg AsyncLoggerConfig) *AsyncLogger {
	if writer == nil {
		return nil
	}
	def := DefaultAsyncLoggerConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = def.NumWorkers
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	al := &AsyncLogger{
		writer:       writer,
		entryCh:      make(chan *model.LogEntry, cfg.BufferSize),
		stopCh:       make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
	}
	for range cfg.NumWorkers {
		al.wg.Add(1)
		go al.worker()
	}
	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	for {
		select {
		case entry := <-al.entryCh:
			al.write(entry)
		case <-al.stopCh:
			for {
				select {
				case entry := <-al.entryCh:
					al.write(entry)
				default:
					return
				}
			}
		}
	}
}

func (al *AsyncLogger) write(entry *model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.writer.CreateLog(ctx, entry); err != nil {
		al.errors.Add(1)
		log := logger.Logger()
		log.Warn().Err(err).Str("request_id", entry.RequestID).Msg("failed to persist log entry")
		return
	}
	al.written.Add(1)
}

// Log enqueues entry and reports whether it was accepted.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	if al == nil || entry == nil {
		return false
	}
	select {
	case <-al.stopCh:
		al.dropped.Add(1)
		return false
	default:
	}
	select {
	case al.entryCh <- entry:
		al.enqueued.Add(1)
		return true
	default:
		al.dropped.Add(1)
		return false
	}
}

// Stop drains buffered entries and waits for the workers. It is safe to call twice.
func (al *AsyncLogger) Stop() {
	if al == nil {
		return
	}
	al.stopOnce.Do(func() {
		close(al.stopCh)
		al.wg.Wait()
	})
}

// Stats returns the current counters.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	if al == nil {
		return AsyncLoggerStats{}
	}
	return AsyncLoggerStats{
		Enqueued: al.enqueued.Load(),
		Dropped:  al.dropped.Load(),
		Written:  al.written.Load(),
		Errors:   al.errors.Load(),
	}
}
