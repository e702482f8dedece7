package controller

import (
	"term-catalog-be/internal/pkg/serverutils"
	"term-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISyncController interface {
	RegisterRoutes(r fiber.Router)
	Export(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
	TestFetch(ctx *fiber.Ctx) error
}

type syncController struct {
	service service.ISyncService
}

func NewSyncController(service service.ISyncService) ISyncController {
	return &syncController{service: service}
}

func (c *syncController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/terms")
	h.Post("/send_to_airtable", c.Export)
	h.Get("/fetch_from_airtable", c.Import)
	h.Get("/test_fetch", c.TestFetch)
}

func (c *syncController) Export(ctx *fiber.Ctx) error {
	res, err := c.service.Export(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("All terms sent to Airtable successfully", res))
}

func (c *syncController) Import(ctx *fiber.Ctx) error {
	res, err := c.service.Import(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Database updated successfully from Airtable", res))
}

func (c *syncController) TestFetch(ctx *fiber.Ctx) error {
	res, err := c.service.TestFetch(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch remote records", res))
}
