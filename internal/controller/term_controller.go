package controller

import (
	"term-catalog-be/internal/dto"
	"term-catalog-be/internal/pkg/serverutils"
	"term-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITermController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	DeleteAll(ctx *fiber.Ctx) error
	DeleteAbove(ctx *fiber.Ctx) error
}

type termController struct {
	service service.ITermService
}

func NewTermController(service service.ITermService) ITermController {
	return &termController{service: service}
}

func (c *termController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/terms")
	h.Get("/", c.GetAll)
	// Static segments before the :id wildcard.
	h.Delete("/delete_all", c.DeleteAll)
	h.Delete("/delete_terms_above/:limit", c.DeleteAbove)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *termController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all terms", res))
}

func (c *termController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return serverutils.BadRequest("invalid term id")
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show term", res))
}

func (c *termController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return serverutils.BadRequest("invalid term id")
	}

	var req dto.UpdateTermRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update term", res))
}

func (c *termController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return serverutils.BadRequest("invalid term id")
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete term", nil))
}

func (c *termController) DeleteAll(ctx *fiber.Ctx) error {
	res, err := c.service.DeleteAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete all terms", res))
}

func (c *termController) DeleteAbove(ctx *fiber.Ctx) error {
	limit, err := ctx.ParamsInt("limit")
	if err != nil {
		return serverutils.BadRequest("invalid id limit")
	}

	res, err := c.service.DeleteAbove(ctx.Context(), limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete terms above limit", res))
}
