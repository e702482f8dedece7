package contract

import (
	"context"

	"term-catalog-be/internal/entity"
)

type LegislativeBillRepository interface {
	Create(ctx context.Context, bill *entity.LegislativeBill) error
	Update(ctx context.Context, bill *entity.LegislativeBill) error
	FindByKeys(ctx context.Context, congressID int, legislativeID string) (*entity.LegislativeBill, error)
	FindByLegislativeID(ctx context.Context, legislativeID string) (*entity.LegislativeBill, error)
	FindAll(ctx context.Context) ([]*entity.LegislativeBill, error)
}
