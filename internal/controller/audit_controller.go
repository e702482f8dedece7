package controller

import (
	"term-catalog-be/internal/dto"
	"term-catalog-be/internal/pkg/serverutils"
	"term-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuditController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type auditController struct {
	service service.IAuditService
}

func NewAuditController(service service.IAuditService) IAuditController {
	return &auditController{service: service}
}

func (c *auditController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/audit")
	h.Post("/", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
}

func (c *auditController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return serverutils.BadRequest("invalid audit id")
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show audit", res))
}

func (c *auditController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAuditRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create audit", res))
}

func (c *auditController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return serverutils.BadRequest("invalid audit id")
	}

	var req dto.UpdateAuditRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update audit", res))
}
