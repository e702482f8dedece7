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

type TermRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TermMapper
}

func NewTermRepository(db *gorm.DB) contract.TermRepository {
	return &TermRepositoryImpl{
		db:     db,
		mapper: mapper.NewTermMapper(),
	}
}

func (r *TermRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TermRepositoryImpl) Create(ctx context.Context, term *entity.Term) error {
	m := r.mapper.ToModel(term)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*term = *r.mapper.ToEntity(m)
	return nil
}

func (r *TermRepositoryImpl) Update(ctx context.Context, term *entity.Term) error {
	m := r.mapper.ToModel(term)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*term = *r.mapper.ToEntity(m)
	return nil
}

func (r *TermRepositoryImpl) OverwriteByName(ctx context.Context, name string, term *entity.Term) error {
	m := r.mapper.ToModel(term)
	// Updates with a map so zero values and the primary key are written
	// through; the FK constraints cascade the id change.
	fields := map[string]any{
		"id":                  m.Id,
		"name":                m.Name,
		"faq_title":           m.FaqTitle,
		"faq_q1":              m.FaqQ1,
		"faq_a1":              m.FaqA1,
		"faq_q2":              m.FaqQ2,
		"faq_a2":              m.FaqA2,
		"faq_q3":              m.FaqQ3,
		"faq_a3":              m.FaqA3,
		"faq_q4":              m.FaqQ4,
		"faq_a4":              m.FaqA4,
		"faq_q5":              m.FaqQ5,
		"faq_a5":              m.FaqA5,
		"high_keywords":       m.HighKeywords,
		"medium_keywords":     m.MediumKeywords,
		"low_keywords":        m.LowKeywords,
		"faq_high_keywords":   m.FaqHighKeywords,
		"faq_medium_keywords": m.FaqMediumKeywords,
		"faq_low_keywords":    m.FaqLowKeywords,
		"prompt":              m.Prompt,
		"response":            m.Response,
	}
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Term{}), specification.ByName{Name: name})
	return query.Updates(fields).Error
}

func (r *TermRepositoryImpl) Delete(ctx context.Context, id int) error {
	// Cascade explicitly rather than leaning on FK behavior alone.
	tx := r.db.WithContext(ctx)
	if err := r.applySpecifications(tx, specification.ByTermID{TermID: id}).Delete(&model.Keyword{}).Error; err != nil {
		return err
	}
	if err := tx.Delete(&model.Audit{}, id).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Term{}, id).Error
}

func (r *TermRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx)
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Keyword{}).Error; err != nil {
		return 0, err
	}
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Audit{}).Error; err != nil {
		return 0, err
	}
	result := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Term{})
	return result.RowsAffected, result.Error
}

func (r *TermRepositoryImpl) DeleteAbove(ctx context.Context, limit int) (int64, error) {
	ids := make([]int, 0)
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Term{}), specification.IDGreaterThan{ID: limit})
	if err := query.Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	for _, id := range ids {
		if err := r.Delete(ctx, id); err != nil {
			return 0, err
		}
	}
	return int64(len(ids)), nil
}

func (r *TermRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.Term, error) {
	var m model.Term
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TermRepositoryImpl) FindByID(ctx context.Context, id int) (*entity.Term, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *TermRepositoryImpl) FindByName(ctx context.Context, name string) (*entity.Term, error) {
	return r.findOne(ctx, specification.ByName{Name: name})
}

func (r *TermRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Term, error) {
	var models []*model.Term
	query := r.applySpecifications(r.db.WithContext(ctx), specification.OrderBy{Field: "id"})
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TermRepositoryImpl) AllIDs(ctx context.Context) ([]int, error) {
	ids := make([]int, 0)
	if err := r.db.WithContext(ctx).Model(&model.Term{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *TermRepositoryImpl) MaxID(ctx context.Context) (int, error) {
	var maxID int
	err := r.db.WithContext(ctx).Model(&model.Term{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error
	return maxID, err
}

func (r *TermRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Term{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
