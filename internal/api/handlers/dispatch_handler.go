package handlers

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/publora/backend/internal/dispatcher"
)

type Dispatcher interface {
	Run(ctx context.Context) (*dispatcher.RunSummary, error)
}

// DispatchHandler exposes the dispatcher to an external scheduler as a
// plain HTTP endpoint. The scheduler is expected to serialize its
// invocations; the endpoint itself takes no lock.
type DispatchHandler struct {
	d Dispatcher
}

func NewDispatchHandler(d Dispatcher) *DispatchHandler {
	return &DispatchHandler{d: d}
}

func (h *DispatchHandler) PublishScheduled(c *fiber.Ctx) error {
	summary, err := h.d.Run(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	message := fmt.Sprintf("Processed %d scheduled posts", summary.Processed)
	if summary.Processed == 0 {
		message = "No posts due for publishing"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   message,
		"processed": summary.Processed,
		"results":   summary.Results,
	})
}
