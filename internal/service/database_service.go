package service

import (
	"context"
	"time"

	"hulunote-be/internal/dto"
	"hulunote-be/internal/entity"
	"hulunote-be/internal/pkg/apperror"
	"hulunote-be/internal/repository/specification"
	"hulunote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// An account may hold at most this many live databases.
const maxDatabasesPerAccount = 5

type IDatabaseService interface {
	Create(ctx context.Context, accountId int64, req *dto.CreateDatabaseRequest) (*dto.CreateDatabaseResponse, error)
	GetList(ctx context.Context, accountId int64) (*dto.GetDatabaseListResponse, error)
	Update(ctx context.Context, accountId int64, req *dto.UpdateDatabaseRequest) error
	Delete(ctx context.Context, accountId int64, req *dto.DeleteDatabaseRequest) error
}

type databaseService struct {
	uowFactory unitofwork.RepositoryFactory
	resolver   IResolverService
}

func NewDatabaseService(uowFactory unitofwork.RepositoryFactory, resolver IResolverService) IDatabaseService {
	return &databaseService{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

func (s *databaseService) Create(ctx context.Context, accountId int64, req *dto.CreateDatabaseRequest) (*dto.CreateDatabaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.DatabaseRepository()

	count, err := repo.Count(ctx,
		specification.ByAccountID{AccountID: accountId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if count >= maxDatabasesPerAccount {
		return nil, apperror.BadRequest("Maximum %d databases allowed", maxDatabasesPerAccount)
	}

	existing, err := repo.FindOne(ctx,
		specification.ByName{Name: req.DatabaseName},
		specification.ByAccountID{AccountID: accountId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.BadRequest("Database '%s' already exists", req.DatabaseName)
	}

	database := entity.Database{
		Id:          uuid.New(),
		Name:        req.DatabaseName,
		Description: req.Description,
		AccountId:   accountId,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := repo.Create(ctx, &database); err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.CreateDatabaseResponse{
		Database: toDatabaseInfo(&database),
		Success:  true,
	}, nil
}

func (s *databaseService) GetList(ctx context.Context, accountId int64) (*dto.GetDatabaseListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	databases, err := uow.DatabaseRepository().FindAll(ctx,
		specification.ByAccountID{AccountID: accountId},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	list := make([]*dto.DatabaseInfo, 0, len(databases))
	for _, database := range databases {
		list = append(list, toDatabaseInfo(database))
	}

	return &dto.GetDatabaseListResponse{
		DatabaseList: list,
		Settings:     map[string]interface{}{},
	}, nil
}

func (s *databaseService) Update(ctx context.Context, accountId int64, req *dto.UpdateDatabaseRequest) error {
	rawId := req.DatabaseId
	if rawId == "" {
		rawId = req.Id
	}
	if rawId == "" {
		return apperror.BadRequest("Database ID required")
	}
	databaseId, err := uuid.Parse(rawId)
	if err != nil {
		return apperror.BadRequest("Invalid database ID")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.DatabaseRepository()

	database, err := repo.FindOne(ctx, specification.ByID{ID: databaseId})
	if err != nil {
		return apperror.Internal(err)
	}
	if database == nil {
		return apperror.NotFound("Database not found")
	}
	if database.AccountId != accountId {
		return apperror.PermissionDenied("Cannot update other's database")
	}

	// Field-mask update: only supplied fields are written.
	fields := map[string]interface{}{}
	if req.IsPublic != nil {
		fields["is_public"] = *req.IsPublic
	}
	if req.IsDefault != nil {
		fields["is_default"] = *req.IsDefault
	}
	if req.IsDelete != nil {
		fields["is_delete"] = *req.IsDelete
	}
	if req.DbName != nil {
		fields["name"] = *req.DbName
	}
	if len(fields) == 0 {
		return nil
	}

	if err := repo.UpdateFields(ctx, databaseId, fields); err != nil {
		return apperror.Internal(err)
	}

	if req.DbName != nil || req.IsDelete != nil {
		s.resolver.InvalidateName(accountId, database.Name)
	}
	return nil
}

// Delete soft-deletes the database and cascades the flag onto its notes and
// navs. The three updates are sequential single statements; the rows stay
// visible to the sync feed afterwards.
func (s *databaseService) Delete(ctx context.Context, accountId int64, req *dto.DeleteDatabaseRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.DatabaseRepository()

	var databaseId uuid.UUID
	if req.DatabaseId != "" {
		id, err := uuid.Parse(req.DatabaseId)
		if err != nil {
			return apperror.BadRequest("Invalid database ID")
		}
		databaseId = id
	} else if req.DatabaseName != "" {
		database, err := repo.FindOne(ctx,
			specification.ByName{Name: req.DatabaseName},
			specification.ByAccountID{AccountID: accountId},
			specification.NotDeleted{},
		)
		if err != nil {
			return apperror.Internal(err)
		}
		if database == nil {
			return apperror.NotFound("Database not found")
		}
		databaseId = database.Id
	} else {
		return apperror.BadRequest("Database ID or name required")
	}

	database, err := repo.FindOne(ctx,
		specification.ByID{ID: databaseId},
		specification.NotDeleted{},
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if database == nil {
		return apperror.NotFound("Database not found")
	}
	if database.AccountId != accountId {
		return apperror.PermissionDenied("Cannot delete other's database")
	}

	if err := repo.UpdateFields(ctx, databaseId, map[string]interface{}{"is_delete": true}); err != nil {
		return apperror.Internal(err)
	}
	if err := uow.NoteRepository().SoftDeleteByDatabaseId(ctx, databaseId.String()); err != nil {
		return apperror.Internal(err)
	}
	if err := uow.NavRepository().SoftDeleteByDatabaseId(ctx, databaseId.String()); err != nil {
		return apperror.Internal(err)
	}

	s.resolver.InvalidateName(accountId, database.Name)
	return nil
}

func toDatabaseInfo(d *entity.Database) *dto.DatabaseInfo {
	return &dto.DatabaseInfo{
		Id:          d.Id.String(),
		Name:        d.Name,
		Description: d.Description,
		IsDelete:    d.IsDelete,
		IsPublic:    d.IsPublic,
		IsDefault:   d.IsDefault,
		AccountId:   d.AccountId,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   d.UpdatedAt.Format(time.RFC3339),
	}
}
