package queue

import (
	"github.com/publora/backend/internal/dispatcher"
)

type Worker struct {
	d *dispatcher.Dispatcher
}

func NewWorker(d *dispatcher.Dispatcher) *Worker {
	return &Worker{d: d}
}

const TaskTypeDispatchScheduled = "dispatch:scheduled"

// QueueDispatch is consumed with concurrency 1 so two dispatch passes
// never run at the same time.
const QueueDispatch = "dispatch"
