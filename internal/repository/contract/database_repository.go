package contract

import (
	"context"

	"hulunote-be/internal/entity"
	"hulunote-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DatabaseRepository interface {
	Create(ctx context.Context, database *entity.Database) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Database, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Database, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
