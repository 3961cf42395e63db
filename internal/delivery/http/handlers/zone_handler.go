package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prospectops/zone-assignment-service/internal/delivery/http/dto/request"
	"github.com/prospectops/zone-assignment-service/internal/delivery/http/dto/response"
	"github.com/prospectops/zone-assignment-service/internal/usecase"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ZoneHandler struct {
	zoneUc usecase.ZoneUsecase
}

func NewZoneHandler(zoneUc usecase.ZoneUsecase) *ZoneHandler {
	return &ZoneHandler{zoneUc: zoneUc}
}

// CreateZone POST /zones.
func (h *ZoneHandler) CreateZone(c *fiber.Ctx) error {
	var req request.CreateZoneRequest
	if err := c.BodyParser(&req); err != nil {
		return status.Error(codes.InvalidArgument, "invalid payload")
	}

	zone, err := h.zoneUc.CreateZone(req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(response.ToZoneResponse(zone))
}

// RenameZone PUT /zones/:id.
func (h *ZoneHandler) RenameZone(c *fiber.Ctx) error {
	var req request.RenameZoneRequest
	if err := c.BodyParser(&req); err != nil {
		return status.Error(codes.InvalidArgument, "invalid payload")
	}

	zone, err := h.zoneUc.RenameZone(c.Params("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(response.ToZoneResponse(zone))
}

// GetZone GET /zones/:id.
func (h *ZoneHandler) GetZone(c *fiber.Ctx) error {
	zone, err := h.zoneUc.GetZoneByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(response.ToZoneResponse(zone))
}

// ListZones GET /zones.
func (h *ZoneHandler) ListZones(c *fiber.Ctx) error {
	zones, err := h.zoneUc.GetZones()
	if err != nil {
		return err
	}

	items := make([]response.ZoneResponse, len(zones))
	for i, zone := range zones {
		items[i] = response.ToZoneResponse(zone)
	}
	return c.JSON(fiber.Map{"zones": items})
}
