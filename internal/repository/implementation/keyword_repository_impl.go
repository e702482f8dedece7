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

type KeywordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KeywordMapper
}

func NewKeywordRepository(db *gorm.DB) contract.KeywordRepository {
	return &KeywordRepositoryImpl{
		db:     db,
		mapper: mapper.NewKeywordMapper(),
	}
}

func (r *KeywordRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.Keyword, error) {
	var m model.Keyword
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

func (r *KeywordRepositoryImpl) Create(ctx context.Context, keyword *entity.Keyword) error {
	m := r.mapper.ToModel(keyword)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*keyword = *r.mapper.ToEntity(m)
	return nil
}

func (r *KeywordRepositoryImpl) FindByKeyword(ctx context.Context, keyword string) (*entity.Keyword, error) {
	return r.findOne(ctx, specification.ByKeyword{Keyword: keyword})
}

func (r *KeywordRepositoryImpl) FindFirstByTermID(ctx context.Context, termID int) (*entity.Keyword, error) {
	return r.findOne(ctx, specification.ByTermID{TermID: termID}, specification.OrderBy{Field: "id"})
}

func (r *KeywordRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Keyword, error) {
	var models []*model.Keyword
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
