package worker

import (
	"errors"
	"time"
)

// DefaultJobTimeout bounds a single job's context
const DefaultJobTimeout = 10 * time.Second

// ErrPoolStopped is returned when enqueueing onto a stopped pool
var ErrPoolStopped = errors.New("worker pool stopped")

// Log messages
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobDropped  = "Worker queue full, job dropped"
	LogMsgWorkerPoolStopped = "Worker pool stopped"
)
