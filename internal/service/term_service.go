package service

import (
	"context"

	"term-catalog-be/internal/dto"
	"term-catalog-be/internal/entity"
	"term-catalog-be/internal/pkg/serverutils"
	"term-catalog-be/internal/repository/unitofwork"
)

type ITermService interface {
	GetAll(ctx context.Context) ([]*dto.TermResponse, error)
	Show(ctx context.Context, id int) (*dto.TermResponse, error)
	Update(ctx context.Context, req *dto.UpdateTermRequest) (*dto.TermResponse, error)
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) (*dto.DeleteSummary, error)
	DeleteAbove(ctx context.Context, limit int) (*dto.DeleteSummary, error)
}

type termService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTermService(uowFactory unitofwork.RepositoryFactory) ITermService {
	return &termService{
		uowFactory: uowFactory,
	}
}

func (c *termService) GetAll(ctx context.Context) ([]*dto.TermResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	terms, err := uow.TermRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TermResponse, 0, len(terms))
	for _, term := range terms {
		audit, err := uow.AuditRepository().FindByID(ctx, term.Id)
		if err != nil {
			return nil, err
		}
		result = append(result, termToResponse(term, audit))
	}
	return result, nil
}

func (c *termService) Show(ctx context.Context, id int) (*dto.TermResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	term, err := uow.TermRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if term == nil {
		return nil, serverutils.NotFound("term not found")
	}

	audit, err := uow.AuditRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := termToResponse(term, audit)
	// The keyword row written at creation carries the term's priority.
	keyword, err := uow.KeywordRepository().FindFirstByTermID(ctx, id)
	if err != nil {
		return nil, err
	}
	if keyword != nil {
		res.Priority = &keyword.Priority
	}
	return res, nil
}

func (c *termService) Update(ctx context.Context, req *dto.UpdateTermRequest) (*dto.TermResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	term, err := uow.TermRepository().FindByID(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if term == nil {
		return nil, serverutils.NotFound("term not found")
	}

	applyTermPatch(term, req)
	if err := uow.TermRepository().Update(ctx, term); err != nil {
		return nil, err
	}

	audit, err := uow.AuditRepository().FindByID(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if req.Audit != nil {
		if audit == nil {
			// Older rows predate the audit table; create the checklist
			// on first touch.
			audit = &entity.Audit{Id: req.Id}
			applyAuditPatch(audit, req.Audit)
			if err := uow.AuditRepository().Create(ctx, audit); err != nil {
				return nil, err
			}
		} else {
			applyAuditPatch(audit, req.Audit)
			if err := uow.AuditRepository().Update(ctx, audit); err != nil {
				return nil, err
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return termToResponse(term, audit), nil
}

func (c *termService) Delete(ctx context.Context, id int) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	term, err := uow.TermRepository().FindByID(ctx, id)
	if err != nil {
		return err
	}
	if term == nil {
		return serverutils.NotFound("term not found")
	}

	if err := uow.TermRepository().Delete(ctx, id); err != nil {
		return err
	}
	return uow.Commit()
}

func (c *termService) DeleteAll(ctx context.Context) (*dto.DeleteSummary, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	deleted, err := uow.TermRepository().DeleteAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return &dto.DeleteSummary{Deleted: deleted}, nil
}

func (c *termService) DeleteAbove(ctx context.Context, limit int) (*dto.DeleteSummary, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	deleted, err := uow.TermRepository().DeleteAbove(ctx, limit)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return &dto.DeleteSummary{Deleted: deleted}, nil
}

func termToResponse(term *entity.Term, audit *entity.Audit) *dto.TermResponse {
	res := &dto.TermResponse{
		Id:                term.Id,
		Name:              term.Name,
		FaqTitle:          term.FaqTitle,
		FaqQ1:             term.FaqQ1,
		FaqA1:             term.FaqA1,
		FaqQ2:             term.FaqQ2,
		FaqA2:             term.FaqA2,
		FaqQ3:             term.FaqQ3,
		FaqA3:             term.FaqA3,
		FaqQ4:             term.FaqQ4,
		FaqA4:             term.FaqA4,
		FaqQ5:             term.FaqQ5,
		FaqA5:             term.FaqA5,
		HighKeywords:      term.HighKeywords,
		MediumKeywords:    term.MediumKeywords,
		LowKeywords:       term.LowKeywords,
		FaqHighKeywords:   term.FaqHighKeywords,
		FaqMediumKeywords: term.FaqMediumKeywords,
		FaqLowKeywords:    term.FaqLowKeywords,
		Prompt:            term.Prompt,
		Response:          term.Response,
		Notes:             term.Notes,
	}
	if audit != nil {
		res.Audit = &dto.AuditBlock{
			FAQ:            audit.FAQ,
			Summary:        audit.Summary,
			TechnicalStuff: audit.TechnicalStuff,
			Notes:          audit.Notes,
		}
	}
	return res
}

func applyTermPatch(term *entity.Term, req *dto.UpdateTermRequest) {
	if req.Name != nil {
		term.Name = *req.Name
	}
	if req.FaqTitle != nil {
		term.FaqTitle = *req.FaqTitle
	}
	if req.FaqQ1 != nil {
		term.FaqQ1 = *req.FaqQ1
	}
	if req.FaqA1 != nil {
		term.FaqA1 = *req.FaqA1
	}
	if req.FaqQ2 != nil {
		term.FaqQ2 = *req.FaqQ2
	}
	if req.FaqA2 != nil {
		term.FaqA2 = *req.FaqA2
	}
	if req.FaqQ3 != nil {
		term.FaqQ3 = *req.FaqQ3
	}
	if req.FaqA3 != nil {
		term.FaqA3 = *req.FaqA3
	}
	if req.FaqQ4 != nil {
		term.FaqQ4 = *req.FaqQ4
	}
	if req.FaqA4 != nil {
		term.FaqA4 = *req.FaqA4
	}
	if req.FaqQ5 != nil {
		term.FaqQ5 = *req.FaqQ5
	}
	if req.FaqA5 != nil {
		term.FaqA5 = *req.FaqA5
	}
	if req.HighKeywords != nil {
		term.HighKeywords = *req.HighKeywords
	}
	if req.MediumKeywords != nil {
		term.MediumKeywords = *req.MediumKeywords
	}
	if req.LowKeywords != nil {
		term.LowKeywords = *req.LowKeywords
	}
	if req.FaqHighKeywords != nil {
		term.FaqHighKeywords = *req.FaqHighKeywords
	}
	if req.FaqMediumKeywords != nil {
		term.FaqMediumKeywords = *req.FaqMediumKeywords
	}
	if req.FaqLowKeywords != nil {
		term.FaqLowKeywords = *req.FaqLowKeywords
	}
	if req.Prompt != nil {
		term.Prompt = *req.Prompt
	}
	if req.Response != nil {
		term.Response = *req.Response
	}
	if req.Notes != nil {
		term.Notes = *req.Notes
	}
}

func applyAuditPatch(audit *entity.Audit, data *dto.UpdateAuditData) {
	if data.FAQ != nil {
		audit.FAQ = *data.FAQ
	}
	if data.Summary != nil {
		audit.Summary = *data.Summary
	}
	if data.TechnicalStuff != nil {
		audit.TechnicalStuff = *data.TechnicalStuff
	}
	if data.Notes != nil {
		audit.Notes = *data.Notes
	}
}
