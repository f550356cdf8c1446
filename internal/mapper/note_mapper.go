package mapper

import (
	"hulunote-be/internal/entity"
	"hulunote-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}
	return &entity.Note{
		Id:         n.Id,
		Title:      n.Title,
		DatabaseId: n.DatabaseId,
		RootNavId:  n.RootNavId,
		IsDelete:   n.IsDelete,
		IsPublic:   n.IsPublic,
		IsShortcut: n.IsShortcut,
		AccountId:  n.AccountId,
		Pv:         n.Pv,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}
	return &model.Note{
		Id:         n.Id,
		Title:      n.Title,
		DatabaseId: n.DatabaseId,
		RootNavId:  n.RootNavId,
		IsDelete:   n.IsDelete,
		IsPublic:   n.IsPublic,
		IsShortcut: n.IsShortcut,
		AccountId:  n.AccountId,
		Pv:         n.Pv,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
