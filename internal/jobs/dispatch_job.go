package job

import (
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/publora/backend/internal/queue"
)

// DispatchJob is the cron side of the dispatcher: every tick it drops a
// dispatch task on the serialized queue.
type DispatchJob struct {
	client *asynq.Client
}

func NewDispatchJob(client *asynq.Client) *DispatchJob {
	return &DispatchJob{client: client}
}

func (j *DispatchJob) EnqueueDispatch() {
	err := queue.EnqueueDispatch(j.client)
	if err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			// previous pass still queued, skip this tick
			return
		}
		slog.Error("unable to enqueue dispatch task", "error", err)
	}
}
