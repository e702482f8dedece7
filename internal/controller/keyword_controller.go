package controller

import (
	"term-catalog-be/internal/dto"
	"term-catalog-be/internal/pkg/serverutils"
	"term-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IKeywordController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
	Sync(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type keywordController struct {
	service service.IKeywordService
}

func NewKeywordController(service service.IKeywordService) IKeywordController {
	return &keywordController{service: service}
}

func (c *keywordController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/terms")
	h.Get("/keywords", c.GetAll)
	h.Post("/keywords", c.Add)
	h.Post("/sync_keywords", c.Sync)
	h.Delete("/clear_keywords", c.Clear)
}

func (c *keywordController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all keywords", res))
}

func (c *keywordController) Add(ctx *fiber.Ctx) error {
	var req dto.AddKeywordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Add(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add keyword", res))
}

func (c *keywordController) Sync(ctx *fiber.Ctx) error {
	if err := c.service.Sync(ctx.Context()); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success sync keywords", nil))
}

func (c *keywordController) Clear(ctx *fiber.Ctx) error {
	if err := c.service.Clear(ctx.Context()); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear keywords", nil))
}
