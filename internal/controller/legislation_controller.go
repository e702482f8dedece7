package controller

import (
	"term-catalog-be/internal/dto"
	"term-catalog-be/internal/pkg/serverutils"
	"term-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILegislationController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	GenerateMeta(ctx *fiber.Ctx) error
	Summarize(ctx *fiber.Ctx) error
}

type legislationController struct {
	service service.ILegislationService
}

func NewLegislationController(service service.ILegislationService) ILegislationController {
	return &legislationController{service: service}
}

func (c *legislationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/legislation")
	h.Get("/", c.GetAll)
	h.Post("/", c.Create)
	h.Post("/summarize", c.Summarize)
	h.Get("/:congress_id/:legislative_id", c.Show)
	h.Put("/:congress_id/:legislative_id", c.Update)
	h.Post("/:congress_id/:legislative_id/generate", c.GenerateMeta)
}

func (c *legislationController) billKeys(ctx *fiber.Ctx) (int, string, error) {
	congressID, err := ctx.ParamsInt("congress_id")
	if err != nil {
		return 0, "", serverutils.BadRequest("invalid congress id")
	}
	legislativeID := ctx.Params("legislative_id")
	if legislativeID == "" {
		return 0, "", serverutils.BadRequest("invalid legislative id")
	}
	return congressID, legislativeID, nil
}

func (c *legislationController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all legislative bills", res))
}

func (c *legislationController) Show(ctx *fiber.Ctx) error {
	congressID, legislativeID, err := c.billKeys(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), congressID, legislativeID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show legislative bill", res))
}

func (c *legislationController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateBillRequest
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
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create legislative bill", res))
}

func (c *legislationController) Update(ctx *fiber.Ctx) error {
	congressID, legislativeID, err := c.billKeys(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateBillRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.CongressIdParam = congressID
	req.LegislativeIdParam = legislativeID

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update legislative bill", res))
}

func (c *legislationController) GenerateMeta(ctx *fiber.Ctx) error {
	congressID, legislativeID, err := c.billKeys(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GenerateMeta(ctx.Context(), congressID, legislativeID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate bill name and summary", res))
}

func (c *legislationController) Summarize(ctx *fiber.Ctx) error {
	var req dto.SummarizeBillRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Summarize(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success summarize legislative bill", res))
}
