package mapper

import (
	"term-catalog-be/internal/entity"
	"term-catalog-be/internal/model"
)

type KeywordMapper struct{}

func NewKeywordMapper() *KeywordMapper {
	return &KeywordMapper{}
}

func (m *KeywordMapper) ToEntity(k *model.Keyword) *entity.Keyword {
	if k == nil {
		return nil
	}
	return &entity.Keyword{
		Id:       k.Id,
		Keyword:  k.Keyword,
		Priority: k.Priority,
		TermId:   k.TermId,
	}
}

func (m *KeywordMapper) ToModel(k *entity.Keyword) *model.Keyword {
	if k == nil {
		return nil
	}
	return &model.Keyword{
		Id:       k.Id,
		Keyword:  k.Keyword,
		Priority: k.Priority,
		TermId:   k.TermId,
	}
}

func (m *KeywordMapper) ToEntities(ks []*model.Keyword) []*entity.Keyword {
	entities := make([]*entity.Keyword, len(ks))
	for i, k := range ks {
		entities[i] = m.ToEntity(k)
	}
	return entities
}
