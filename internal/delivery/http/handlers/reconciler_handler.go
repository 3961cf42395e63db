package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prospectops/zone-assignment-service/internal/reconciler"
)

// ReconcilerHandler exposes the operational escape hatches: one forced
// pass, synchronous, equivalent to a scheduler tick.
type ReconcilerHandler struct {
	scheduler *reconciler.Scheduler
}

func NewReconcilerHandler(scheduler *reconciler.Scheduler) *ReconcilerHandler {
	return &ReconcilerHandler{scheduler: scheduler}
}

// ForceActivate POST /reconciler/activate.
func (h *ReconcilerHandler) ForceActivate(c *fiber.Ctx) error {
	h.scheduler.ForceActivate(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}

// ForceDeactivate POST /reconciler/deactivate.
func (h *ReconcilerHandler) ForceDeactivate(c *fiber.Ctx) error {
	h.scheduler.ForceDeactivate(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}
