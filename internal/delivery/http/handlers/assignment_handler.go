package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prospectops/zone-assignment-service/internal/delivery/http/dto/request"
	"github.com/prospectops/zone-assignment-service/internal/delivery/http/dto/response"
	"github.com/prospectops/zone-assignment-service/internal/usecase"
	assignmentdto "github.com/prospectops/zone-assignment-service/internal/usecase/dto/assignment"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// managerHeader carries the manager identity resolved by the auth
// gateway in front of this service. Absent header means admin scope.
const managerHeader = "X-Manager-ID"

type AssignmentHandler struct {
	assignmentUc usecase.AssignmentUsecase
}

func NewAssignmentHandler(assignmentUc usecase.AssignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{assignmentUc: assignmentUc}
}

// AssignZone POST /zones/:id/assignments.
func (h *AssignmentHandler) AssignZone(c *fiber.Ctx) error {
	var req request.AssignZoneRequest
	if err := c.BodyParser(&req); err != nil {
		return status.Error(codes.InvalidArgument, "invalid payload")
	}

	input := &assignmentdto.AssignZoneInput{
		ZoneID:          c.Params("id"),
		AssigneeType:    req.AssigneeType,
		AssigneeID:      req.AssigneeID,
		DurationDays:    req.DurationDays,
		ActorID:         req.ActorID,
		ActorName:       req.ActorName,
		ActingManagerID: c.Get(managerHeader),
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(time.RFC3339, *req.StartDate)
		if err != nil {
			return status.Error(codes.InvalidArgument, "start_date must be RFC3339")
		}
		input.StartDate = &startDate
	}

	output, err := h.assignmentUc.AssignZone(input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(response.ToAssignmentResponse(output))
}

// StopAssignment POST /assignments/:id/stop.
func (h *AssignmentHandler) StopAssignment(c *fiber.Ctx) error {
	var req request.StopAssignmentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return status.Error(codes.InvalidArgument, "invalid payload")
		}
	}

	output, err := h.assignmentUc.StopAssignment(&assignmentdto.StopAssignmentInput{
		AssignmentID:    c.Params("id"),
		ActorID:         req.ActorID,
		ActingManagerID: c.Get(managerHeader),
	})
	if err != nil {
		return err
	}
	return c.JSON(response.ToAssignmentResponse(output))
}

// ListAssignments GET /assignments.
func (h *AssignmentHandler) ListAssignments(c *fiber.Ctx) error {
	output, err := h.assignmentUc.ListAssignments(c.Get(managerHeader))
	if err != nil {
		return err
	}

	return c.JSON(response.AssignmentListResponse{
		Active:  toResponses(output.Active),
		Future:  toResponses(output.Future),
		Expired: toResponses(output.Expired),
		Summary: response.AssignmentSummaryResponse{
			Total:   output.Summary.Total,
			Active:  output.Summary.Active,
			Future:  output.Summary.Future,
			Expired: output.Summary.Expired,
		},
	})
}

// ZoneHistory GET /zones/:id/assignments.
func (h *AssignmentHandler) ZoneHistory(c *fiber.Ctx) error {
	history, err := h.assignmentUc.GetZoneHistory(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"history": response.ToAssignmentResponses(history)})
}

func toResponses(outputs []*assignmentdto.AssignmentOutput) []response.AssignmentResponse {
	return response.ToAssignmentResponses(outputs)
}
