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
)

type DatabaseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DatabaseMapper
}

func NewDatabaseRepository(db *gorm.DB) contract.DatabaseRepository {
	return &DatabaseRepositoryImpl{
		db:     db,
		mapper: mapper.NewDatabaseMapper(),
	}
}

func (r *DatabaseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DatabaseRepositoryImpl) Create(ctx context.Context, database *entity.Database) error {
	m := r.mapper.ToModel(database)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*database = *r.mapper.ToEntity(m)
	return nil
}

func (r *DatabaseRepositoryImpl) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()
	return r.db.WithContext(ctx).
		Model(&model.Database{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *DatabaseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Database, error) {
	var m model.Database
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DatabaseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Database, error) {
	var models []*model.Database
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DatabaseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Database{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
