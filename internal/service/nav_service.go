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

const (
	defaultNavSyncSize = 1000
	maxNavSyncSize     = 5000
)

// INavService is the outline store plus its sync cursor protocol: field-level
// nav patches, per-note tree listing, and the "changed since checkpoint" feed
// over a whole database.
type INavService interface {
	CreateOrUpdateNav(ctx context.Context, accountId int64, req *dto.CreateOrUpdateNavRequest) (*dto.CreateNavResponse, error)
	GetNoteNavs(ctx context.Context, accountId int64, req *dto.GetNavsRequest) (*dto.GetNavsResponse, error)
	GetAllNavsByPage(ctx context.Context, accountId int64, req *dto.GetAllNavsRequest) (*dto.GetAllNavsByPageResponse, error)
	GetAllNavs(ctx context.Context, accountId int64, req *dto.GetAllNavsRequest) (*dto.GetAllNavsResponse, error)
}

type navService struct {
	uowFactory unitofwork.RepositoryFactory
	resolver   IResolverService
}

func NewNavService(uowFactory unitofwork.RepositoryFactory, resolver IResolverService) INavService {
	return &navService{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

// resolveDatabaseForNav resolves the target database, falling back to the
// note's own database when neither id nor name is usable. The fallback
// belongs here, not in the resolver.
func (s *navService) resolveDatabaseForNav(ctx context.Context, accountId int64, ref dto.DatabaseRef, noteId string) (string, error) {
	databaseId, err := s.resolver.ResolveDatabaseId(ctx, accountId, ref.DatabaseId, ref.Name())
	if err != nil {
		return "", apperror.Internal(err)
	}
	if databaseId != "" {
		return databaseId, nil
	}

	parsed, parseErr := uuid.Parse(noteId)
	if parseErr != nil {
		return "", apperror.BadRequest("Invalid note ID format")
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: parsed})
	if err != nil {
		return "", apperror.Internal(err)
	}
	if note == nil {
		return "", apperror.BadRequest("Database not found")
	}
	return note.DatabaseId, nil
}

// CreateOrUpdateNav is the single write path of the outline store. With an id
// that matches an existing nav it applies a field-mask patch (only non-nil
// request fields are written, each bumping updated_at); otherwise it creates
// the nav, honoring a well-formed client-supplied id.
func (s *navService) CreateOrUpdateNav(ctx context.Context, accountId int64, req *dto.CreateOrUpdateNavRequest) (*dto.CreateNavResponse, error) {
	databaseId, err := s.resolveDatabaseForNav(ctx, accountId, req.DatabaseRef, req.NoteId)
	if err != nil {
		return nil, err
	}

	// Best-effort "now" for the client's next checkpoint; deliberately not
	// round-tripped from the row's write time.
	backendTs := time.Now().UnixMilli()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.NavRepository()

	if req.Id != "" {
		navId, parseErr := uuid.Parse(req.Id)
		if parseErr != nil {
			return nil, apperror.BadRequest("Invalid nav ID")
		}

		existing, err := repo.FindOne(ctx, specification.ByID{ID: navId})
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if existing != nil {
			// Update by id alone, no note/database cross-check: the
			// protocol is a field-level patch, not a record replace.
			fields := map[string]interface{}{}
			if req.Content != nil {
				fields["content"] = *req.Content
			}
			if req.Parid != nil {
				fields["parid"] = *req.Parid
			}
			if req.Order != nil {
				fields["same_deep_order"] = *req.Order
			}
			if req.IsDelete != nil {
				fields["is_delete"] = *req.IsDelete
			}
			if req.IsDisplay != nil {
				fields["is_display"] = *req.IsDisplay
			}
			if req.Properties != nil {
				fields["properties"] = *req.Properties
			}
			fields["account_id"] = accountId

			if err := repo.UpdateFields(ctx, navId, fields); err != nil {
				return nil, apperror.Internal(err)
			}

			return &dto.CreateNavResponse{
				Success:   true,
				Id:        navId.String(),
				BackendTs: backendTs,
			}, nil
		}
	}

	navId := uuid.New()
	if req.Id != "" {
		if id, parseErr := uuid.Parse(req.Id); parseErr == nil {
			navId = id
		}
	}

	nav := entity.Nav{
		Id:            navId,
		Parid:         entity.RootNavParid,
		SameDeepOrder: 0,
		Content:       "",
		AccountId:     accountId,
		NoteId:        req.NoteId,
		DatabaseId:    databaseId,
		IsDisplay:     true,
		Properties:    "",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if req.Parid != nil {
		nav.Parid = *req.Parid
	}
	if req.Content != nil {
		nav.Content = *req.Content
	}
	if req.Order != nil {
		nav.SameDeepOrder = *req.Order
	}
	if req.Properties != nil {
		nav.Properties = *req.Properties
	}
	if req.IsDisplay != nil {
		nav.IsDisplay = *req.IsDisplay
	}
	if req.IsDelete != nil {
		nav.IsDelete = *req.IsDelete
	}

	if err := repo.Create(ctx, &nav); err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.CreateNavResponse{
		Success:   true,
		Id:        nav.Id.String(),
		Nav:       toNavInfo(&nav),
		BackendTs: backendTs,
	}, nil
}

// GetNoteNavs lists a note's live navs in sibling order. Soft-deleted navs
// are excluded here; only the sync feed sees them.
func (s *navService) GetNoteNavs(ctx context.Context, accountId int64, req *dto.GetNavsRequest) (*dto.GetNavsResponse, error) {
	noteId, err := uuid.Parse(req.NoteId)
	if err != nil {
		return nil, apperror.BadRequest("Invalid note ID format")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if note == nil {
		return nil, apperror.NotFound("Note not found")
	}

	navs, err := uow.NavRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: req.NoteId},
		specification.NotDeleted{},
		specification.TreeOrder{},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.GetNavsResponse{NavList: toNavInfos(navs)}, nil
}

// GetAllNavsByPage is the paged sync pull: navs whose updated_at strictly
// exceeds the checkpoint, soft-deleted rows included, ascending updated_at.
func (s *navService) GetAllNavsByPage(ctx context.Context, accountId int64, req *dto.GetAllNavsRequest) (*dto.GetAllNavsByPageResponse, error) {
	databaseId, err := s.resolver.ResolveDatabaseId(ctx, accountId, req.DatabaseId, req.Name())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if databaseId == "" {
		return nil, apperror.BadRequest("Database not found")
	}

	page := clampPage(req.Page)
	size := clampSize(req.Size, defaultNavSyncSize, maxNavSyncSize)
	cursor := syncCursor(req)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.NavRepository()

	total, err := repo.Count(ctx,
		specification.ByDatabaseID{DatabaseID: databaseId},
		cursor,
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	navs, err := repo.FindAll(ctx,
		specification.ByDatabaseID{DatabaseID: databaseId},
		cursor,
		specification.SyncOrder{},
		specification.Pagination{Limit: int(size), Offset: int((page - 1) * size)},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.GetAllNavsByPageResponse{
		NavList:   toNavInfos(navs),
		AllPages:  allPages(total, size),
		BackendTs: time.Now().UnixMilli(),
	}, nil
}

// GetAllNavs is the unpaged sync variant: the database's entire changed set.
func (s *navService) GetAllNavs(ctx context.Context, accountId int64, req *dto.GetAllNavsRequest) (*dto.GetAllNavsResponse, error) {
	databaseId, err := s.resolver.ResolveDatabaseId(ctx, accountId, req.DatabaseId, req.Name())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if databaseId == "" {
		return nil, apperror.BadRequest("Database not found")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	navs, err := uow.NavRepository().FindAll(ctx,
		specification.ByDatabaseID{DatabaseID: databaseId},
		syncCursor(req),
		specification.SyncOrder{},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.GetAllNavsResponse{
		NavList:   toNavInfos(navs),
		BackendTs: time.Now().UnixMilli(),
	}, nil
}

// syncCursor builds the checkpoint filter. A well-formed last-nav-id upgrades
// the timestamp checkpoint to a composite cursor so rows written in the
// checkpoint millisecond cannot be skipped across pages.
func syncCursor(req *dto.GetAllNavsRequest) specification.UpdatedSince {
	cursor := specification.UpdatedSince{Millis: req.BackendTs}
	if req.LastNavId != "" {
		if id, err := uuid.Parse(req.LastNavId); err == nil {
			cursor.AfterId = &id
		}
	}
	return cursor
}

func toNavInfo(n *entity.Nav) *dto.NavInfo {
	return &dto.NavInfo{
		Id:            n.Id.String(),
		Parid:         n.Parid,
		SameDeepOrder: n.SameDeepOrder,
		Content:       n.Content,
		AccountId:     n.AccountId,
		LastAccountId: n.AccountId,
		NoteId:        n.NoteId,
		HulunoteNote:  n.NoteId,
		DatabaseId:    n.DatabaseId,
		IsDisplay:     n.IsDisplay,
		IsPublic:      n.IsPublic,
		IsDelete:      n.IsDelete,
		Properties:    n.Properties,
		CreatedAt:     n.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     n.UpdatedAt.Format(time.RFC3339),
	}
}

func toNavInfos(navs []*entity.Nav) []*dto.NavInfo {
	infos := make([]*dto.NavInfo, 0, len(navs))
	for _, n := range navs {
		infos = append(infos, toNavInfo(n))
	}
	return infos
}
