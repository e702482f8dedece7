package contract

import (
	"context"

	"term-catalog-be/internal/entity"
)

type AuditRepository interface {
	Create(ctx context.Context, audit *entity.Audit) error
	Update(ctx context.Context, audit *entity.Audit) error
	FindByID(ctx context.Context, id int) (*entity.Audit, error)
}
