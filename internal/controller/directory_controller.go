package controller

import (
	"legal-assist-be/internal/pkg/serverutils"
	"legal-assist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDirectoryController interface {
	RegisterRoutes(r fiber.Router)
	SearchLawyers(ctx *fiber.Ctx) error
	GetActionTemplate(ctx *fiber.Ctx) error
}

type directoryController struct {
	directoryService service.IDirectoryService
}

func NewDirectoryController(directoryService service.IDirectoryService) IDirectoryController {
	return &directoryController{
		directoryService: directoryService,
	}
}

func (c *directoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/directory/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("lawyers", c.SearchLawyers)
	h.Get("templates", c.GetActionTemplate)
}

func (c *directoryController) GetActionTemplate(ctx *fiber.Ctx) error {
	topic := ctx.Query("topic", "")
	jurisdiction := ctx.Query("jurisdiction", "")

	if topic == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Query parameter 'topic' is required"))
	}

	res, err := c.directoryService.GetActionTemplate(ctx.Context(), topic, jurisdiction)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No template for this topic"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get action template", res))
}

func (c *directoryController) SearchLawyers(ctx *fiber.Ctx) error {
	legalArea := ctx.Query("legal_area", "")
	jurisdiction := ctx.Query("jurisdiction", "")

	res, err := c.directoryService.SearchLawyers(ctx.Context(), legalArea, jurisdiction)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search lawyers", res))
}
