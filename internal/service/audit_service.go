package service

import (
	"context"

	"term-catalog-be/internal/dto"
	"term-catalog-be/internal/entity"
	"term-catalog-be/internal/pkg/serverutils"
	"term-catalog-be/internal/repository/unitofwork"
)

type IAuditService interface {
	Show(ctx context.Context, id int) (*dto.AuditResponse, error)
	Create(ctx context.Context, req *dto.CreateAuditRequest) (*dto.AuditResponse, error)
	Update(ctx context.Context, req *dto.UpdateAuditRequest) (*dto.AuditResponse, error)
}

type auditService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAuditService(uowFactory unitofwork.RepositoryFactory) IAuditService {
	return &auditService{
		uowFactory: uowFactory,
	}
}

func (c *auditService) Show(ctx context.Context, id int) (*dto.AuditResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	audit, err := uow.AuditRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if audit == nil {
		return nil, serverutils.NotFound("audit not found")
	}
	return auditToResponse(audit), nil
}

func (c *auditService) Create(ctx context.Context, req *dto.CreateAuditRequest) (*dto.AuditResponse, error) {
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

	existing, err := uow.AuditRepository().FindByID(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.Conflict("audit already exists")
	}

	audit := &entity.Audit{Id: req.Id}
	applyAuditPatch(audit, &req.AuditData)
	if req.Notes != nil {
		audit.Notes = *req.Notes
	}
	if err := uow.AuditRepository().Create(ctx, audit); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return auditToResponse(audit), nil
}

func (c *auditService) Update(ctx context.Context, req *dto.UpdateAuditRequest) (*dto.AuditResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	audit, err := uow.AuditRepository().FindByID(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if audit == nil {
		// Older terms predate the audit table; the first update creates
		// their checklist row, provided the term itself exists.
		term, err := uow.TermRepository().FindByID(ctx, req.Id)
		if err != nil {
			return nil, err
		}
		if term == nil {
			return nil, serverutils.NotFound("term not found")
		}
		audit = &entity.Audit{Id: req.Id}
		applyAuditPatch(audit, &req.AuditData)
		if req.Notes != nil {
			audit.Notes = *req.Notes
		}
		if err := uow.AuditRepository().Create(ctx, audit); err != nil {
			return nil, err
		}
		if err := uow.Commit(); err != nil {
			return nil, err
		}
		return auditToResponse(audit), nil
	}

	applyAuditPatch(audit, &req.AuditData)
	if req.Notes != nil {
		audit.Notes = *req.Notes
	}
	if err := uow.AuditRepository().Update(ctx, audit); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return auditToResponse(audit), nil
}

func auditToResponse(audit *entity.Audit) *dto.AuditResponse {
	return &dto.AuditResponse{
		Id: audit.Id,
		AuditData: dto.AuditData{
			FAQ:            audit.FAQ,
			Summary:        audit.Summary,
			TechnicalStuff: audit.TechnicalStuff,
		},
		Notes: audit.Notes,
	}
}
