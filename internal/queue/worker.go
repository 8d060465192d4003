package queue

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
)

func (w *Worker) HandleDispatchTask(ctx context.Context, task *asynq.Task) error {
	summary, err := w.d.Run(ctx)
	if err != nil {
		return err
	}

	if summary.Processed > 0 {
		slog.Info("dispatch pass finished", "processed", summary.Processed)
	}
	return nil
}
