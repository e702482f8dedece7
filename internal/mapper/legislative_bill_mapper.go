package mapper

import (
	"term-catalog-be/internal/entity"
	"term-catalog-be/internal/model"
)

type LegislativeBillMapper struct{}

func NewLegislativeBillMapper() *LegislativeBillMapper {
	return &LegislativeBillMapper{}
}

func (m *LegislativeBillMapper) ToEntity(b *model.LegislativeBill) *entity.LegislativeBill {
	if b == nil {
		return nil
	}
	return &entity.LegislativeBill{
		Id:            b.Id,
		LegislativeId: b.LegislativeId,
		Summary:       b.Summary,
		BillName:      b.BillName,
		CongressId:    b.CongressId,
		Text:          b.Text,
		Link:          b.Link,
		Charcount:     b.Charcount,
	}
}

func (m *LegislativeBillMapper) ToModel(b *entity.LegislativeBill) *model.LegislativeBill {
	if b == nil {
		return nil
	}
	return &model.LegislativeBill{
		Id:            b.Id,
		LegislativeId: b.LegislativeId,
		Summary:       b.Summary,
		BillName:      b.BillName,
		CongressId:    b.CongressId,
		Text:          b.Text,
		Link:          b.Link,
		Charcount:     b.Charcount,
	}
}

func (m *LegislativeBillMapper) ToEntities(bills []*model.LegislativeBill) []*entity.LegislativeBill {
	entities := make([]*entity.LegislativeBill, len(bills))
	for i, b := range bills {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
