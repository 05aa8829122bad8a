package bootstrap

import (
	"log/slog"
	"time"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/scheduler"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/session"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/worker"
)

// Background is the worker pool and the scheduler feeding it
type Background struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartBackground starts the worker pool and schedules the periodic autosave of live sessions
func StartBackground(workers int, autosaveInterval time.Duration, sessions *session.Manager) *Background {
	pool := worker.NewPool(workers, WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(autosaveInterval, session.NewAutosaveJob(sessions))

	slog.Info(LogMsgBackgroundStarted, "workers", workers, "autosave_interval", autosaveInterval)
	return &Background{Pool: pool, Scheduler: sched}
}

// Stop halts scheduling, then waits for in-flight jobs
func (b *Background) Stop() {
	b.Scheduler.Stop()
	b.Pool.Stop()
}
