package session

import (
	"context"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/event"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/logger"
)

// AutosaveJob is the worker.Job the scheduler enqueues every autosave interval
type AutosaveJob struct {
	manager *Manager
}

// NewAutosaveJob creates an autosave job over the manager's live sessions
func NewAutosaveJob(manager *Manager) *AutosaveJob {
	return &AutosaveJob{manager: manager}
}

// Process saves every live session
func (j *AutosaveJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgAutosaveStarted, "sessions", j.manager.Len())

	if err := j.manager.SaveAll(ctx, event.SaveReasonAutosave); err != nil {
		return err
	}

	log.Debug(LogMsgAutosaveCompleted)
	return nil
}
