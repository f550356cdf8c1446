package implementation

import (
	"context"
	"errors"
	"time"

	"hulunote-be/internal/entity"
	"hulunote-be/internal/mapper"
	"hulunote-be/internal/model"
	"hulunote-be/internal/repository/contract"
	"hulunote-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NavRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NavMapper
}

func NewNavRepository(db *gorm.DB) contract.NavRepository {
	return &NavRepositoryImpl{
		db:     db,
		mapper: mapper.NewNavMapper(),
	}
}

func (r *NavRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NavRepositoryImpl) Create(ctx context.Context, nav *entity.Nav) error {
	m := r.mapper.ToModel(nav)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*nav = *r.mapper.ToEntity(m)
	return nil
}

func (r *NavRepositoryImpl) CreateIgnoreDuplicate(ctx context.Context, nav *entity.Nav) error {
	m := r.mapper.ToModel(nav)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(m).Error
}

func (r *NavRepositoryImpl) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()
	return r.db.WithContext(ctx).
		Model(&model.Nav{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *NavRepositoryImpl) SoftDeleteByDatabaseId(ctx context.Context, databaseId string) error {
	return r.db.WithContext(ctx).
		Model(&model.Nav{}).
		Where("database_id = ?", databaseId).
		Updates(map[string]interface{}{"is_delete": true, "updated_at": time.Now()}).Error
}

func (r *NavRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Nav, error) {
	var m model.Nav
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NavRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Nav, error) {
	var models []*model.Nav
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NavRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Nav{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
