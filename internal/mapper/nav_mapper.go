package mapper

import (
	"hulunote-be/internal/entity"
	"hulunote-be/internal/model"
)

type NavMapper struct{}

func NewNavMapper() *NavMapper {
	return &NavMapper{}
}

func (m *NavMapper) ToEntity(n *model.Nav) *entity.Nav {
	if n == nil {
		return nil
	}
	return &entity.Nav{
		Id:            n.Id,
		Parid:         n.Parid,
		SameDeepOrder: n.SameDeepOrder,
		Content:       n.Content,
		AccountId:     n.AccountId,
		NoteId:        n.NoteId,
		DatabaseId:    n.DatabaseId,
		IsDisplay:     n.IsDisplay,
		IsPublic:      n.IsPublic,
		IsDelete:      n.IsDelete,
		Properties:    n.Properties,
		ExtraId:       n.ExtraId,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func (m *NavMapper) ToModel(n *entity.Nav) *model.Nav {
	if n == nil {
		return nil
	}
	return &model.Nav{
		Id:            n.Id,
		Parid:         n.Parid,
		SameDeepOrder: n.SameDeepOrder,
		Content:       n.Content,
		AccountId:     n.AccountId,
		NoteId:        n.NoteId,
		DatabaseId:    n.DatabaseId,
		IsDisplay:     n.IsDisplay,
		IsPublic:      n.IsPublic,
		IsDelete:      n.IsDelete,
		Properties:    n.Properties,
		ExtraId:       n.ExtraId,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func (m *NavMapper) ToEntities(navs []*model.Nav) []*entity.Nav {
	entities := make([]*entity.Nav, len(navs))
	for i, n := range navs {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
