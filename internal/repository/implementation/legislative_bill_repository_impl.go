package implementation

import (
	"context"
	"errors"

	"term-catalog-be/internal/entity"
	"term-catalog-be/internal/mapper"
	"term-catalog-be/internal/model"
	"term-catalog-be/internal/repository/contract"
	"term-catalog-be/internal/repository/specification"

	"gorm.io/gorm"
)

type LegislativeBillRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LegislativeBillMapper
}

func NewLegislativeBillRepository(db *gorm.DB) contract.LegislativeBillRepository {
	return &LegislativeBillRepositoryImpl{
		db:     db,
		mapper: mapper.NewLegislativeBillMapper(),
	}
}

func (r *LegislativeBillRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.LegislativeBill, error) {
	var m model.LegislativeBill
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LegislativeBillRepositoryImpl) Create(ctx context.Context, bill *entity.LegislativeBill) error {
	m := r.mapper.ToModel(bill)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*bill = *r.mapper.ToEntity(m)
	return nil
}

func (r *LegislativeBillRepositoryImpl) Update(ctx context.Context, bill *entity.LegislativeBill) error {
	m := r.mapper.ToModel(bill)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*bill = *r.mapper.ToEntity(m)
	return nil
}

func (r *LegislativeBillRepositoryImpl) FindByKeys(ctx context.Context, congressID int, legislativeID string) (*entity.LegislativeBill, error) {
	return r.findOne(ctx, specification.ByCongressAndLegislativeID{
		CongressID:    congressID,
		LegislativeID: legislativeID,
	})
}

func (r *LegislativeBillRepositoryImpl) FindByLegislativeID(ctx context.Context, legislativeID string) (*entity.LegislativeBill, error) {
	return r.findOne(ctx, specification.ByLegislativeID{LegislativeID: legislativeID})
}

func (r *LegislativeBillRepositoryImpl) FindAll(ctx context.Context) ([]*entity.LegislativeBill, error) {
	var models []*model.LegislativeBill
	query := specification.OrderBy{Field: "id"}.Apply(r.db.WithContext(ctx))
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
