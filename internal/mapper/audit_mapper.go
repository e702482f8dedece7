package mapper

import (
	"term-catalog-be/internal/entity"
	"term-catalog-be/internal/model"
)

type AuditMapper struct{}

func NewAuditMapper() *AuditMapper {
	return &AuditMapper{}
}

func (m *AuditMapper) ToEntity(a *model.Audit) *entity.Audit {
	if a == nil {
		return nil
	}
	return &entity.Audit{
		Id:             a.Id,
		FAQ:            a.FAQ,
		Summary:        a.Summary,
		TechnicalStuff: a.TechnicalStuff,
		Notes:          a.Notes,
	}
}

func (m *AuditMapper) ToModel(a *entity.Audit) *model.Audit {
	if a == nil {
		return nil
	}
	return &model.Audit{
		Id:             a.Id,
		FAQ:            a.FAQ,
		Summary:        a.Summary,
		TechnicalStuff: a.TechnicalStuff,
		Notes:          a.Notes,
	}
}
