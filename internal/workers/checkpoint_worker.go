package workers

import (
	"context"
	"time"

	"freehunt_backend/internal/logger"
	"freehunt_backend/internal/repositories"
)

// CheckpointWorker periodically flags overdue, unsubmitted checkpoints as
// delayed. It is a safety net behind the manual delay endpoint: the status
// converges even when nobody looks at the project for a while.
type CheckpointWorker struct {
	checkpoints repositories.CheckpointRepository
	interval    time.Duration
	stop        chan struct{}
	done        chan struct{}
}

func NewCheckpointWorker(checkpoints repositories.CheckpointRepository, interval time.Duration) *CheckpointWorker {
	return &CheckpointWorker{
		checkpoints: checkpoints,
		interval:    interval,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

func (w *CheckpointWorker) Start() {
	go w.run()
}

func (w *CheckpointWorker) Stop() {
	close(w.stop)
	<-w.done
}

func (w *CheckpointWorker) run() {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep()
	for {
		select {
		case <-ticker.C:
			w.sweep()
		case <-w.stop:
			return
		}
	}
}

func (w *CheckpointWorker) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	flagged, err := w.checkpoints.MarkOverdueDelayed(ctx, time.Now())
	logger.WorkerLog("checkpoint", "mark_overdue_delayed", err)
	if err == nil && flagged > 0 {
		logger.Info("overdue checkpoints flagged delayed", "count", flagged)
	}
}
