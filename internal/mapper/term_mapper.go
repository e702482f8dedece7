package mapper

import (
	"term-catalog-be/internal/entity"
	"term-catalog-be/internal/model"
)

type TermMapper struct{}

func NewTermMapper() *TermMapper {
	return &TermMapper{}
}

func (m *TermMapper) ToEntity(t *model.Term) *entity.Term {
	if t == nil {
		return nil
	}
	return &entity.Term{
		Id:                t.Id,
		Name:              t.Name,
		FaqTitle:          t.FaqTitle,
		FaqQ1:             t.FaqQ1,
		FaqA1:             t.FaqA1,
		FaqQ2:             t.FaqQ2,
		FaqA2:             t.FaqA2,
		FaqQ3:             t.FaqQ3,
		FaqA3:             t.FaqA3,
		FaqQ4:             t.FaqQ4,
		FaqA4:             t.FaqA4,
		FaqQ5:             t.FaqQ5,
		FaqA5:             t.FaqA5,
		HighKeywords:      t.HighKeywords,
		MediumKeywords:    t.MediumKeywords,
		LowKeywords:       t.LowKeywords,
		FaqHighKeywords:   t.FaqHighKeywords,
		FaqMediumKeywords: t.FaqMediumKeywords,
		FaqLowKeywords:    t.FaqLowKeywords,
		Prompt:            t.Prompt,
		Response:          t.Response,
		Notes:             t.Notes,
	}
}

func (m *TermMapper) ToModel(t *entity.Term) *model.Term {
	if t == nil {
		return nil
	}
	return &model.Term{
		Id:                t.Id,
		Name:              t.Name,
		FaqTitle:          t.FaqTitle,
		FaqQ1:             t.FaqQ1,
		FaqA1:             t.FaqA1,
		FaqQ2:             t.FaqQ2,
		FaqA2:             t.FaqA2,
		FaqQ3:             t.FaqQ3,
		FaqA3:             t.FaqA3,
		FaqQ4:             t.FaqQ4,
		FaqA4:             t.FaqA4,
		FaqQ5:             t.FaqQ5,
		FaqA5:             t.FaqA5,
		HighKeywords:      t.HighKeywords,
		MediumKeywords:    t.MediumKeywords,
		LowKeywords:       t.LowKeywords,
		FaqHighKeywords:   t.FaqHighKeywords,
		FaqMediumKeywords: t.FaqMediumKeywords,
		FaqLowKeywords:    t.FaqLowKeywords,
		Prompt:            t.Prompt,
		Response:          t.Response,
		Notes:             t.Notes,
	}
}

func (m *TermMapper) ToEntities(terms []*model.Term) []*entity.Term {
	entities := make([]*entity.Term, len(terms))
	for i, t := range terms {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
