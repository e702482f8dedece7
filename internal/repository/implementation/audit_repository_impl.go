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

type AuditRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AuditMapper
}

func NewAuditRepository(db *gorm.DB) contract.AuditRepository {
	return &AuditRepositoryImpl{
		db:     db,
		mapper: mapper.NewAuditMapper(),
	}
}

func (r *AuditRepositoryImpl) Create(ctx context.Context, audit *entity.Audit) error {
	m := r.mapper.ToModel(audit)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*audit = *r.mapper.ToEntity(m)
	return nil
}

func (r *AuditRepositoryImpl) Update(ctx context.Context, audit *entity.Audit) error {
	m := r.mapper.ToModel(audit)
	// Updates with a map: the review flags are booleans and must be
	// writable back to false.
	fields := map[string]any{
		"faq":             m.FAQ,
		"summary":         m.Summary,
		"technical_stuff": m.TechnicalStuff,
		"notes":           m.Notes,
	}
	query := specification.ByID{ID: m.Id}.Apply(r.db.WithContext(ctx).Model(&model.Audit{}))
	return query.Updates(fields).Error
}

func (r *AuditRepositoryImpl) FindByID(ctx context.Context, id int) (*entity.Audit, error) {
	var m model.Audit
	query := specification.ByID{ID: id}.Apply(r.db.WithContext(ctx))
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
