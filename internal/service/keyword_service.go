package service

import (
	"context"

	"term-catalog-be/internal/dto"
	"term-catalog-be/internal/entity"
	"term-catalog-be/internal/pkg/serverutils"
	"term-catalog-be/internal/repository/unitofwork"
	"term-catalog-be/pkg/keywords"
)

type IKeywordService interface {
	GetAll(ctx context.Context) ([]*dto.KeywordResponse, error)
	Add(ctx context.Context, req *dto.AddKeywordRequest) (*dto.KeywordResponse, error)
	// Sync rescans every term against the keyword dictionary and writes
	// the matching tiers back. It is additive: a tier with no matches
	// keeps whatever tags it already carries.
	Sync(ctx context.Context) error
	// Clear empties the three body keyword tiers on every term. FAQ
	// tiers are left alone; they are only ever rewritten by Sync.
	Clear(ctx context.Context) error
}

type keywordService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewKeywordService(uowFactory unitofwork.RepositoryFactory) IKeywordService {
	return &keywordService{
		uowFactory: uowFactory,
	}
}

func (c *keywordService) GetAll(ctx context.Context) ([]*dto.KeywordResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.KeywordRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.KeywordResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dto.KeywordResponse{
			Id:       row.Id,
			Keyword:  row.Keyword,
			Priority: row.Priority,
		})
	}
	return result, nil
}

func (c *keywordService) Add(ctx context.Context, req *dto.AddKeywordRequest) (*dto.KeywordResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	existing, err := uow.KeywordRepository().FindByKeyword(ctx, req.Keyword)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.Conflict("keyword already exists")
	}

	keyword := &entity.Keyword{
		Keyword:  req.Keyword,
		Priority: req.Priority,
		TermId:   req.TermId,
	}
	if err := uow.KeywordRepository().Create(ctx, keyword); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return &dto.KeywordResponse{
		Id:       keyword.Id,
		Keyword:  keyword.Keyword,
		Priority: keyword.Priority,
	}, nil
}

func (c *keywordService) Sync(ctx context.Context) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.KeywordRepository().FindAll(ctx)
	if err != nil {
		return err
	}
	dictionary := make([]keywords.Entry, 0, len(rows))
	for _, row := range rows {
		dictionary = append(dictionary, keywords.Entry{
			Keyword:  row.Keyword,
			Priority: row.Priority,
		})
	}

	terms, err := uow.TermRepository().FindAll(ctx)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for _, term := range terms {
		body := term.Response
		faqContent := term.FaqContent()
		changed := false

		apply := func(target *string, text, tier string) {
			matches := keywords.Extract(text, dictionary, tier, term.Name)
			if len(matches) == 0 {
				return
			}
			joined := keywords.Join(matches)
			if *target != joined {
				*target = joined
				changed = true
			}
		}

		apply(&term.HighKeywords, body, "high")
		apply(&term.MediumKeywords, body, "medium")
		apply(&term.LowKeywords, body, "low")
		apply(&term.FaqHighKeywords, faqContent, "high")
		apply(&term.FaqMediumKeywords, faqContent, "medium")
		apply(&term.FaqLowKeywords, faqContent, "low")

		if !changed {
			continue
		}
		if err := uow.TermRepository().Update(ctx, term); err != nil {
			return err
		}
	}

	return uow.Commit()
}

func (c *keywordService) Clear(ctx context.Context) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	terms, err := uow.TermRepository().FindAll(ctx)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for _, term := range terms {
		if term.HighKeywords == "" && term.MediumKeywords == "" && term.LowKeywords == "" {
			continue
		}
		term.HighKeywords = ""
		term.MediumKeywords = ""
		term.LowKeywords = ""
		if err := uow.TermRepository().Update(ctx, term); err != nil {
			return err
		}
	}

	return uow.Commit()
}
