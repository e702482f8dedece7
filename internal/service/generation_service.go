package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"term-catalog-be/internal/config"
	"term-catalog-be/internal/dto"
	"term-catalog-be/internal/entity"
	"term-catalog-be/internal/pkg/serverutils"
	"term-catalog-be/internal/repository/unitofwork"
	"term-catalog-be/pkg/faq"
	"term-catalog-be/pkg/llm"
	"term-catalog-be/pkg/prompts"
)

const (
	summaryMaxTokens = 650
	regenMaxTokens   = 1000
	regenTemperature = 0.7
)

type IGenerationService interface {
	CreateTerm(ctx context.Context, req *dto.CreateTermRequest) (*dto.CreateTermResponse, error)
	Regenerate(ctx context.Context, req *dto.RegenerateRequest) (*dto.RegenerateResponse, error)
	NewFaqPair(ctx context.Context, req *dto.NewFaqRequest) (*dto.NewFaqResponse, error)
	CustomQuestion(ctx context.Context, req *dto.CustomQuestionRequest) (*dto.CustomQuestionResponse, error)
}

type generationService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   llm.LLMProvider
	aiConfig   config.AIConfig

	// seqMu serializes id allocation with the insert that consumes it,
	// so two concurrent creates cannot both read the same max id.
	seqMu sync.Mutex
}

func NewGenerationService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.LLMProvider,
	aiConfig config.AIConfig,
) IGenerationService {
	return &generationService{
		uowFactory: uowFactory,
		provider:   provider,
		aiConfig:   aiConfig,
	}
}

func (c *generationService) CreateTerm(ctx context.Context, req *dto.CreateTermRequest) (*dto.CreateTermResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.TermRepository().FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.Conflict("term already exists")
	}

	summaryPrompt := req.CustomPrompt
	if summaryPrompt == "" {
		summaryPrompt = prompts.Summary(req.Name, req.Type, req.AdditionalKeywords)
	}

	// Two independent generation calls; a failure in either aborts the
	// create before anything is written locally.
	summary, err := c.provider.Generate(ctx, summaryPrompt,
		llm.WithModel(c.aiConfig.Model),
		llm.WithMaxTokens(summaryMaxTokens),
	)
	if err != nil {
		return nil, err
	}

	faqPrompt := prompts.FAQ(req.Name)
	faqRaw, err := c.provider.Generate(ctx, faqPrompt,
		llm.WithModel(c.aiConfig.Model),
	)
	if err != nil {
		return nil, err
	}
	segments := faq.Parse(faqRaw)

	c.seqMu.Lock()
	defer c.seqMu.Unlock()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	id, err := uow.TermRepository().MaxID(ctx)
	if err != nil {
		return nil, err
	}
	id++

	term := &entity.Term{
		Id:       id,
		Name:     req.Name,
		FaqTitle: faq.Segment(segments, 0),
		FaqQ1:    faq.Segment(segments, 1),
		FaqA1:    faq.Segment(segments, 2),
		FaqQ2:    faq.Segment(segments, 3),
		FaqA2:    faq.Segment(segments, 4),
		FaqQ3:    faq.Segment(segments, 5),
		FaqA3:    faq.Segment(segments, 6),
		FaqQ4:    faq.Segment(segments, 7),
		FaqA4:    faq.Segment(segments, 8),
		FaqQ5:    faq.Segment(segments, 9),
		FaqA5:    faq.Segment(segments, 10),
		Prompt:   summaryPrompt,
		Response: summary,
	}
	if err := uow.TermRepository().Create(ctx, term); err != nil {
		return nil, err
	}

	keyword := &entity.Keyword{
		Keyword:  req.Name,
		Priority: req.Priority,
		TermId:   id,
	}
	if err := uow.KeywordRepository().Create(ctx, keyword); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return &dto.CreateTermResponse{Id: id}, nil
}

func (c *generationService) Regenerate(ctx context.Context, req *dto.RegenerateRequest) (*dto.RegenerateResponse, error) {
	text, err := c.provider.Generate(ctx, req.Prompt,
		llm.WithModel(c.aiConfig.RegenModel),
		llm.WithMaxTokens(regenMaxTokens),
		llm.WithTemperature(regenTemperature),
	)
	if err != nil {
		return nil, err
	}
	return &dto.RegenerateResponse{GeneratedText: text}, nil
}

// NewFaqPair asks for one replacement question and answer. The model is
// told to join them with "@"; the editor splits on that marker.
func (c *generationService) NewFaqPair(ctx context.Context, req *dto.NewFaqRequest) (*dto.NewFaqResponse, error) {
	text, err := c.provider.Generate(ctx, prompts.ReplacementFAQ(req.ExistingFaq),
		llm.WithModel(c.aiConfig.RegenModel),
		llm.WithMaxTokens(regenMaxTokens),
		llm.WithTemperature(regenTemperature),
	)
	if err != nil {
		return nil, err
	}

	parts := strings.SplitN(text, "@", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("generated FAQ is missing the question/answer separator: %q", text)
	}
	question := strings.TrimSpace(parts[0])
	answer := strings.TrimSpace(parts[1])
	return &dto.NewFaqResponse{NewFaq: []string{question + "@" + answer}}, nil
}

func (c *generationService) CustomQuestion(ctx context.Context, req *dto.CustomQuestionRequest) (*dto.CustomQuestionResponse, error) {
	prompt := req.CustomQuestion + prompts.CustomQuestionSuffix
	text, err := c.provider.Generate(ctx, prompt,
		llm.WithModel(c.aiConfig.RegenModel),
		llm.WithMaxTokens(regenMaxTokens),
		llm.WithTemperature(regenTemperature),
	)
	if err != nil {
		return nil, err
	}
	return &dto.CustomQuestionResponse{Response: text}, nil
}
