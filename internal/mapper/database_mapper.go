package mapper

import (
	"hulunote-be/internal/entity"
	"hulunote-be/internal/model"
)

type DatabaseMapper struct{}

func NewDatabaseMapper() *DatabaseMapper {
	return &DatabaseMapper{}
}

func (m *DatabaseMapper) ToEntity(d *model.Database) *entity.Database {
	if d == nil {
		return nil
	}
	return &entity.Database{
		Id:          d.Id,
		Name:        d.Name,
		Description: d.Description,
		IsDelete:    d.IsDelete,
		IsPublic:    d.IsPublic,
		IsDefault:   d.IsDefault,
		AccountId:   d.AccountId,
		Setting:     d.Setting,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (m *DatabaseMapper) ToModel(d *entity.Database) *model.Database {
	if d == nil {
		return nil
	}
	return &model.Database{
		Id:          d.Id,
		Name:        d.Name,
		Description: d.Description,
		IsDelete:    d.IsDelete,
		IsPublic:    d.IsPublic,
		IsDefault:   d.IsDefault,
		AccountId:   d.AccountId,
		Setting:     d.Setting,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (m *DatabaseMapper) ToEntities(databases []*model.Database) []*entity.Database {
	entities := make([]*entity.Database, len(databases))
	for i, d := range databases {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
