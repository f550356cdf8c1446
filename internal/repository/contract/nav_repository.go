package contract

import (
	"context"

	"hulunote-be/internal/entity"
	"hulunote-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NavRepository interface {
	Create(ctx context.Context, nav *entity.Nav) error
	// CreateIgnoreDuplicate inserts the nav and silently skips a pre-existing
	// id, so a replay of a partially committed import is tolerated at the nav
	// level.
	CreateIgnoreDuplicate(ctx context.Context, nav *entity.Nav) error
	// UpdateFields applies a field-mask update by id alone: only the listed
	// columns are written, plus updated_at.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	// SoftDeleteByDatabaseId cascades a database soft delete onto its navs.
	SoftDeleteByDatabaseId(ctx context.Context, databaseId string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Nav, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Nav, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
