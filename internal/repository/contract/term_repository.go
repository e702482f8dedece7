package contract

import (
	"context"

	"term-catalog-be/internal/entity"
)

type TermRepository interface {
	Create(ctx context.Context, term *entity.Term) error
	Update(ctx context.Context, term *entity.Term) error
	// OverwriteByName rewrites every mapped column of the row holding
	// name, including the primary key. Reconciliation uses it when a
	// remote record's name exists locally under a different id.
	OverwriteByName(ctx context.Context, name string, term *entity.Term) error
	// Delete removes the term and its cascading keyword and audit rows.
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) (int64, error)
	DeleteAbove(ctx context.Context, limit int) (int64, error)
	FindByID(ctx context.Context, id int) (*entity.Term, error)
	FindByName(ctx context.Context, name string) (*entity.Term, error)
	FindAll(ctx context.Context) ([]*entity.Term, error)
	AllIDs(ctx context.Context) ([]int, error)
	MaxID(ctx context.Context) (int, error)
	Count(ctx context.Context) (int64, error)
}
