// Package runner executes submitted ranking runs in the background: load
// the uploaded dataset, validate, rank, write the result file, then hand
// it to delivery.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sommit1/topsis-web/internal/events"
	"github.com/Sommit1/topsis-web/internal/mailer"
	"github.com/Sommit1/topsis-web/internal/metrics"
	"github.com/Sommit1/topsis-web/internal/store"
	"github.com/Sommit1/topsis-web/internal/topsis"
)

type Runner struct {
	store  store.Store
	files  *store.Files
	mailer mailer.Mailer // nil disables delivery
	events events.Client // nil disables events
	logger *slog.Logger

	queue   chan uuid.UUID
	workers int

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func New(s store.Store, f *store.Files, m mailer.Mailer, ev events.Client, workers, queueSize int, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		store:   s,
		files:   f,
		mailer:  m,
		events:  ev,
		logger:  logger,
		queue:   make(chan uuid.UUID, queueSize),
		workers: workers,
		stopCh:  make(chan struct{}),
	}
}

func (r *Runner) Start(ctx context.Context) {
	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.workLoop(ctx)
	}
}

func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

// Submit enqueues a created run for processing. It never blocks; a full
// queue is reported to the caller instead.
func (r *Runner) Submit(id uuid.UUID) error {
	select {
	case r.queue <- id:
		return nil
	default:
		return fmt.Errorf("run queue full")
	}
}

func (r *Runner) workLoop(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case id := <-r.queue:
			r.process(ctx, id)
		}
	}
}

func (r *Runner) process(ctx context.Context, id uuid.UUID) {
	run, err := r.store.GetRun(ctx, id)
	if err != nil || run == nil {
		r.logger.Error("run vanished before processing", "run_id", id, "error", err)
		return
	}

	now := time.Now()
	run.Status = store.StatusRunning
	run.StartedAt = &now
	if err := r.store.UpdateRun(ctx, run); err != nil {
		r.logger.Error("failed to mark run running", "run_id", id, "error", err)
		return
	}

	start := time.Now()
	rows, err := r.execute(run)
	elapsed := time.Since(start)
	metrics.RunDuration.Observe(elapsed.Seconds())

	done := time.Now()
	run.CompletedAt = &done

	if err != nil {
		kind := string(topsis.KindOf(err))
		run.Status = store.StatusFailed
		run.ErrorKind = kind
		run.Error = err.Error()
		if err := r.store.UpdateRun(ctx, run); err != nil {
			r.logger.Error("failed to mark run failed", "run_id", id, "error", err)
		}
		metrics.RunsFailed.WithLabelValues(kind).Inc()
		r.logger.Warn("run failed", "run_id", id, "kind", kind, "error", err)
		r.publish(events.SubjectRunFailed(id.String()), events.RunFailedEvent{
			RunID: id.String(),
			Kind:  kind,
			Error: err.Error(),
		})
		return
	}

	run.Status = store.StatusCompleted
	if err := r.store.UpdateRun(ctx, run); err != nil {
		r.logger.Error("failed to mark run completed", "run_id", id, "error", err)
		return
	}
	metrics.RunsCompleted.Inc()
	r.logger.Info("run completed", "run_id", id, "result_file", run.ResultFile, "rows", rows, "duration_ms", elapsed.Milliseconds())
	r.publish(events.SubjectRunCompleted(id.String()), events.RunCompletedEvent{
		RunID:      id.String(),
		ResultFile: run.ResultFile,
		Rows:       rows,
		DurationMs: float64(elapsed.Milliseconds()),
	})

	if run.Email != "" {
		r.deliver(ctx, run)
	}
}

// execute runs the strictly linear pipeline for one run and fills in
// ResultFile on success. Nothing is written when any stage fails.
func (r *Runner) execute(run *store.Run) (int, error) {
	tbl, err := topsis.LoadFile(run.InputPath)
	if err != nil {
		return 0, err
	}
	res, err := topsis.Score(tbl, run.Weights, run.Impacts)
	if err != nil {
		return 0, err
	}

	name := r.files.ResultName(run.ID)
	path, err := r.files.ResultPath(name)
	if err != nil {
		return 0, err
	}
	if err := res.WriteFile(path); err != nil {
		return 0, err
	}
	run.ResultFile = name
	return len(res.Scores), nil
}

func (r *Runner) deliver(ctx context.Context, run *store.Run) {
	if r.mailer == nil {
		r.logger.Warn("run requested email but delivery is disabled", "run_id", run.ID)
		return
	}

	path, err := r.files.ResultPath(run.ResultFile)
	if err == nil {
		err = r.mailer.SendResult(run.Email, path)
	}
	if err != nil {
		run.Error = fmt.Sprintf("email delivery failed: %v", err)
		run.ErrorKind = "delivery"
		if uerr := r.store.UpdateRun(ctx, run); uerr != nil {
			r.logger.Error("failed to record delivery error", "run_id", run.ID, "error", uerr)
		}
		r.logger.Error("delivery failed", "run_id", run.ID, "email", run.Email, "error", err)
		return
	}

	run.Emailed = true
	if err := r.store.UpdateRun(ctx, run); err != nil {
		r.logger.Error("failed to record delivery", "run_id", run.ID, "error", err)
	}
	r.logger.Info("result emailed", "run_id", run.ID, "email", run.Email)
	r.publish(events.SubjectRunDelivered(run.ID.String()), events.RunDeliveredEvent{
		RunID: run.ID.String(),
		Email: run.Email,
	})
}

func (r *Runner) publish(subject string, payload interface{}) {
	if r.events == nil {
		return
	}
	if err := r.events.Publish(subject, payload); err != nil {
		r.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}
