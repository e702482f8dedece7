package unitofwork

import (
	"context"

	"term-catalog-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TermRepository() contract.TermRepository
	AuditRepository() contract.AuditRepository
	KeywordRepository() contract.KeywordRepository
	LegislativeBillRepository() contract.LegislativeBillRepository
}
