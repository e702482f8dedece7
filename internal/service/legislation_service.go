package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"term-catalog-be/internal/config"
	"term-catalog-be/internal/dto"
	"term-catalog-be/internal/entity"
	"term-catalog-be/internal/pkg/serverutils"
	"term-catalog-be/internal/repository/unitofwork"
	"term-catalog-be/pkg/llm"
	"term-catalog-be/pkg/prompts"
)

// billTextLimit caps how much of a fetched document is fed to the
// model; full bill texts can run to hundreds of thousands of runes.
const billTextLimit = 48000

type ILegislationService interface {
	GetAll(ctx context.Context) ([]*dto.LegislativeBillResponse, error)
	Show(ctx context.Context, congressID int, legislativeID string) (*dto.LegislativeBillResponse, error)
	Create(ctx context.Context, req *dto.CreateBillRequest) (*dto.LegislativeBillResponse, error)
	Update(ctx context.Context, req *dto.UpdateBillRequest) (*dto.LegislativeBillResponse, error)
	// GenerateMeta fills the bill's name and summary from its stored
	// text via the generative service.
	GenerateMeta(ctx context.Context, congressID int, legislativeID string) (*dto.LegislativeBillResponse, error)
	// Summarize fetches the bill document from its link, stores the
	// text, and generates name and summary in one pass.
	Summarize(ctx context.Context, req *dto.SummarizeBillRequest) (*dto.LegislativeBillResponse, error)
}

type legislationService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   llm.LLMProvider
	aiConfig   config.AIConfig
	httpClient *http.Client
}

func NewLegislationService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.LLMProvider,
	aiConfig config.AIConfig,
) ILegislationService {
	return &legislationService{
		uowFactory: uowFactory,
		provider:   provider,
		aiConfig:   aiConfig,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *legislationService) GetAll(ctx context.Context) ([]*dto.LegislativeBillResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	bills, err := uow.LegislativeBillRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.LegislativeBillResponse, 0, len(bills))
	for _, bill := range bills {
		result = append(result, billToResponse(bill))
	}
	return result, nil
}

func (c *legislationService) Show(ctx context.Context, congressID int, legislativeID string) (*dto.LegislativeBillResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	bill, err := uow.LegislativeBillRepository().FindByKeys(ctx, congressID, legislativeID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, serverutils.NotFound("legislative bill not found")
	}
	return billToResponse(bill), nil
}

func (c *legislationService) Create(ctx context.Context, req *dto.CreateBillRequest) (*dto.LegislativeBillResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	existing, err := uow.LegislativeBillRepository().FindByLegislativeID(ctx, req.LegislativeId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.Conflict("legislative bill already exists")
	}

	bill := &entity.LegislativeBill{
		LegislativeId: req.LegislativeId,
		CongressId:    req.CongressId,
		BillName:      req.BillName,
		Summary:       req.Summary,
		Text:          req.Text,
		Link:          req.Link,
		Charcount:     utf8.RuneCountInString(req.Text),
	}
	if err := uow.LegislativeBillRepository().Create(ctx, bill); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return billToResponse(bill), nil
}

func (c *legislationService) Update(ctx context.Context, req *dto.UpdateBillRequest) (*dto.LegislativeBillResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	bill, err := uow.LegislativeBillRepository().FindByKeys(ctx, req.CongressIdParam, req.LegislativeIdParam)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, serverutils.NotFound("legislative bill not found")
	}

	if req.LegislativeId != nil {
		bill.LegislativeId = *req.LegislativeId
	}
	if req.Summary != nil {
		bill.Summary = *req.Summary
	}
	if req.BillName != nil {
		bill.BillName = *req.BillName
	}
	if req.CongressId != nil {
		bill.CongressId = *req.CongressId
	}
	if req.Text != nil {
		bill.Text = *req.Text
		bill.Charcount = utf8.RuneCountInString(bill.Text)
	}
	if req.Link != nil {
		bill.Link = *req.Link
	}

	if err := uow.LegislativeBillRepository().Update(ctx, bill); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return billToResponse(bill), nil
}

func (c *legislationService) GenerateMeta(ctx context.Context, congressID int, legislativeID string) (*dto.LegislativeBillResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	bill, err := uow.LegislativeBillRepository().FindByKeys(ctx, congressID, legislativeID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, serverutils.NotFound("legislative bill not found")
	}
	if bill.Text == "" {
		return nil, serverutils.BadRequest("legislative bill has no text to summarize")
	}

	if err := c.generateInto(ctx, bill); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.LegislativeBillRepository().Update(ctx, bill); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return billToResponse(bill), nil
}

func (c *legislationService) Summarize(ctx context.Context, req *dto.SummarizeBillRequest) (*dto.LegislativeBillResponse, error) {
	text, err := c.fetchDocument(ctx, req.Link)
	if err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	bill, err := uow.LegislativeBillRepository().FindByKeys(ctx, req.CongressId, req.LegislativeId)
	if err != nil {
		return nil, err
	}
	created := bill == nil
	if created {
		bill = &entity.LegislativeBill{
			LegislativeId: req.LegislativeId,
			CongressId:    req.CongressId,
		}
	}
	bill.Link = req.Link
	bill.Text = text
	bill.Charcount = utf8.RuneCountInString(text)

	if err := c.generateInto(ctx, bill); err != nil {
		return nil, err
	}

	if created {
		err = uow.LegislativeBillRepository().Create(ctx, bill)
	} else {
		err = uow.LegislativeBillRepository().Update(ctx, bill)
	}
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return billToResponse(bill), nil
}

// generateInto writes a generated name and summary onto the bill.
func (c *legislationService) generateInto(ctx context.Context, bill *entity.LegislativeBill) error {
	text := bill.Text
	if utf8.RuneCountInString(text) > billTextLimit {
		runes := []rune(text)
		text = string(runes[:billTextLimit])
	}

	name, err := c.provider.Generate(ctx, prompts.BillName(text),
		llm.WithModel(c.aiConfig.Model),
	)
	if err != nil {
		return err
	}
	summary, err := c.provider.Generate(ctx, prompts.BillSummary(text),
		llm.WithModel(c.aiConfig.Model),
		llm.WithMaxTokens(summaryMaxTokens),
	)
	if err != nil {
		return err
	}

	bill.BillName = name
	bill.Summary = summary
	return nil
}

func (c *legislationService) fetchDocument(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching bill document: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func billToResponse(bill *entity.LegislativeBill) *dto.LegislativeBillResponse {
	return &dto.LegislativeBillResponse{
		Id:            bill.Id,
		LegislativeId: bill.LegislativeId,
		Summary:       bill.Summary,
		BillName:      bill.BillName,
		CongressId:    bill.CongressId,
		Text:          bill.Text,
		Link:          bill.Link,
		Charcount:     bill.Charcount,
	}
}
