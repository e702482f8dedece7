package controller

import (
	"term-catalog-be/internal/dto"
	"term-catalog-be/internal/pkg/serverutils"
	"term-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGenerationController interface {
	RegisterRoutes(r fiber.Router)
	CreateTerm(ctx *fiber.Ctx) error
	Regenerate(ctx *fiber.Ctx) error
	NewFaqPair(ctx *fiber.Ctx) error
	CustomQuestion(ctx *fiber.Ctx) error
}

type generationController struct {
	service service.IGenerationService
}

func NewGenerationController(service service.IGenerationService) IGenerationController {
	return &generationController{service: service}
}

func (c *generationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/terms")
	h.Post("/new", c.CreateTerm)
	h.Post("/process_custom_question", c.CustomQuestion)

	// Editor helpers live outside the terms group.
	r.Post("/regenerate", c.Regenerate)
	r.Post("/generate-new-faq", c.NewFaqPair)
}

func (c *generationController) CreateTerm(ctx *fiber.Ctx) error {
	var req dto.CreateTermRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateTerm(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create term", res))
}

func (c *generationController) Regenerate(ctx *fiber.Ctx) error {
	var req dto.RegenerateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Regenerate(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success regenerate text", res))
}

func (c *generationController) NewFaqPair(ctx *fiber.Ctx) error {
	var req dto.NewFaqRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.NewFaqPair(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate new FAQ", res))
}

func (c *generationController) CustomQuestion(ctx *fiber.Ctx) error {
	var req dto.CustomQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CustomQuestion(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success answer custom question", res))
}
