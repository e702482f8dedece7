package contract

import (
	"context"

	"term-catalog-be/internal/entity"
)

type KeywordRepository interface {
	Create(ctx context.Context, keyword *entity.Keyword) error
	FindByKeyword(ctx context.Context, keyword string) (*entity.Keyword, error)
	FindFirstByTermID(ctx context.Context, termID int) (*entity.Keyword, error)
	FindAll(ctx context.Context) ([]*entity.Keyword, error)
}
