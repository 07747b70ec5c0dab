// Package notify hands mentor notifications to a Notifier in the background.
// Delivery is best effort: a failed or dropped notification is logged and
// never reported back to the request that caused it.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
)

//go:generate mockgen -source=dispatcher.go -destination=../../mocks/notifier.go -package=mocks

// MentorRequest is the payload of a "you have a new mentoring request" notice.
type MentorRequest struct {
	Match  domain.Match
	Mentor domain.User
	Mentee domain.User
}

type Notifier interface {
	NotifyMentorOfRequest(ctx context.Context, req MentorRequest) error
}

// Outcomes reported to the OutcomeRecorder.
const (
	OutcomeSent    = "sent"
	OutcomeFailed  = "failed"
	OutcomeDropped = "dropped"
)

type OutcomeRecorder interface {
	ObserveNotification(outcome string)
}

type Config struct {
	Workers int
	Buffer  int
	Timeout time.Duration
}

type Dispatcher struct {
	notifier Notifier
	recorder OutcomeRecorder
	logger   *slog.Logger
	timeout  time.Duration
	workers  int

	tasks  chan MentorRequest
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(notifier Notifier, cfg Config, logger *slog.Logger, recorder OutcomeRecorder) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Buffer < 0 {
		cfg.Buffer = 0
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		notifier: notifier,
		recorder: recorder,
		logger:   logger,
		timeout:  cfg.Timeout,
		workers:  cfg.Workers,
		tasks:    make(chan MentorRequest, cfg.Buffer),
	}
}

// Start launches the workers. They run until Close.
func (d *Dispatcher) Start() {
	d.wg.Add(d.workers)
	for i := 0; i < d.workers; i++ {
		go func() {
			defer d.wg.Done()
			for req := range d.tasks {
				d.deliver(req)
			}
		}()
	}
}

// Dispatch queues req without blocking. It returns false when the queue is
// full or the dispatcher is closed; the notification is then dropped.
func (d *Dispatcher) Dispatch(req MentorRequest) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(req, "dispatcher closed")
		return false
	}
	select {
	case d.tasks <- req:
		return true
	default:
		d.drop(req, "queue full")
		return false
	}
}

// Close stops accepting work and waits for queued notifications to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.tasks)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) deliver(req MentorRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.notifier.NotifyMentorOfRequest(ctx, req); err != nil {
		d.logger.Error("mentor notification failed",
			slog.String("match_id", req.Match.ID.String()),
			slog.String("mentor_id", req.Mentor.ID.String()),
			slog.String("error", err.Error()),
		)
		d.observe(OutcomeFailed)
		return
	}
	d.observe(OutcomeSent)
}

func (d *Dispatcher) drop(req MentorRequest, reason string) {
	d.logger.Warn("mentor notification dropped",
		slog.String("match_id", req.Match.ID.String()),
		slog.String("reason", reason),
	)
	d.observe(OutcomeDropped)
}

func (d *Dispatcher) observe(outcome string) {
	if d.recorder != nil {
		d.recorder.ObserveNotification(outcome)
	}
}
