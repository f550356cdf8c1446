package contract

import (
	"context"

	"hulunote-be/internal/entity"
	"hulunote-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	// UpdateFields applies a field-mask update: only the listed columns are
	// written, plus updated_at.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	// SoftDeleteByDatabaseId cascades a database soft delete onto its notes.
	SoftDeleteByDatabaseId(ctx context.Context, databaseId string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
