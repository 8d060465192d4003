package queue

import (
	"time"

	"github.com/hibiken/asynq"
)

// EnqueueDispatch queues one dispatch pass. The task is unique per
// minute: if the previous pass is still pending the duplicate is
// dropped instead of piling up behind it.
func EnqueueDispatch(asynqClient *asynq.Client) error {
	task := asynq.NewTask(TaskTypeDispatchScheduled, nil)

	_, err := asynqClient.Enqueue(task,
		asynq.Queue(QueueDispatch),
		asynq.Unique(time.Minute),
	)
	if err != nil {
		return err
	}

	return nil
}
