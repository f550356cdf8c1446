package service

import (
	"context"
	"math"
	"time"

	"hulunote-be/internal/dto"
	"hulunote-be/internal/entity"
	"hulunote-be/internal/pkg/apperror"
	"hulunote-be/internal/repository/specification"
	"hulunote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	defaultNoteListSize = 100
	maxNoteListSize     = 1000
)

type INoteService interface {
	Create(ctx context.Context, accountId int64, req *dto.CreateNoteRequest) (*dto.NoteInfo, error)
	GetList(ctx context.Context, accountId int64, req *dto.GetNoteListRequest) (*dto.GetNoteListResponse, error)
	GetAllList(ctx context.Context, accountId int64, req *dto.GetNoteListRequest) (*dto.GetAllNoteListResponse, error)
	GetShortcutsList(ctx context.Context, accountId int64, req *dto.GetNoteListRequest) (*dto.GetAllNoteListResponse, error)
	Update(ctx context.Context, accountId int64, req *dto.UpdateNoteRequest) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	resolver   IResolverService
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, resolver IResolverService) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

func (s *noteService) resolveDatabase(ctx context.Context, accountId int64, ref dto.DatabaseRef) (string, error) {
	databaseId, err := s.resolver.ResolveDatabaseId(ctx, accountId, ref.DatabaseId, ref.Name())
	if err != nil {
		return "", apperror.Internal(err)
	}
	if databaseId == "" {
		return "", apperror.BadRequest("Database not found")
	}
	return databaseId, nil
}

// Create inserts the note together with its root nav: the root carries the
// reserved content marker, order 0 and the root sentinel parent, and is the
// tree's single traversal entry point. Client-assigned ids are honored when
// they parse.
func (s *noteService) Create(ctx context.Context, accountId int64, req *dto.CreateNoteRequest) (*dto.NoteInfo, error) {
	databaseId, err := s.resolveDatabase(ctx, accountId, req.DatabaseRef)
	if err != nil {
		return nil, err
	}

	noteId := uuid.New()
	if id, parseErr := uuid.Parse(req.NoteId); parseErr == nil && req.NoteId != "" {
		noteId = id
	}
	rootNavId := uuid.New()
	if id, parseErr := uuid.Parse(req.RootNavId); parseErr == nil && req.RootNavId != "" {
		rootNavId = id
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	note := entity.Note{
		Id:         noteId,
		Title:      req.Title,
		DatabaseId: databaseId,
		RootNavId:  rootNavId.String(),
		AccountId:  accountId,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, apperror.Internal(err)
	}

	rootNav := entity.Nav{
		Id:         rootNavId,
		Parid:      entity.RootNavParid,
		Content:    entity.RootNavContent,
		AccountId:  accountId,
		NoteId:     noteId.String(),
		DatabaseId: databaseId,
		IsDisplay:  true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := uow.NavRepository().Create(ctx, &rootNav); err != nil {
		return nil, apperror.Internal(err)
	}

	return toNoteInfo(&note), nil
}

func (s *noteService) GetList(ctx context.Context, accountId int64, req *dto.GetNoteListRequest) (*dto.GetNoteListResponse, error) {
	databaseId, err := s.resolveDatabase(ctx, accountId, req.DatabaseRef)
	if err != nil {
		return nil, err
	}

	page := clampPage(req.Page)
	size := clampSize(req.Size, defaultNoteListSize, maxNoteListSize)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.NoteRepository()

	total, err := repo.Count(ctx,
		specification.ByDatabaseID{DatabaseID: databaseId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	notes, err := repo.FindAll(ctx,
		specification.ByDatabaseID{DatabaseID: databaseId},
		specification.NotDeleted{},
		specification.OrderBy{Field: "updated_at", Desc: true},
		specification.Pagination{Limit: int(size), Offset: int((page - 1) * size)},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.GetNoteListResponse{
		NoteList: toNoteInfos(notes),
		AllPages: allPages(total, size),
	}, nil
}

func (s *noteService) GetAllList(ctx context.Context, accountId int64, req *dto.GetNoteListRequest) (*dto.GetAllNoteListResponse, error) {
	databaseId, err := s.resolveDatabase(ctx, accountId, req.DatabaseRef)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByDatabaseID{DatabaseID: databaseId},
		specification.NotDeleted{},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.GetAllNoteListResponse{NoteList: toNoteInfos(notes)}, nil
}

func (s *noteService) GetShortcutsList(ctx context.Context, accountId int64, req *dto.GetNoteListRequest) (*dto.GetAllNoteListResponse, error) {
	databaseId, err := s.resolveDatabase(ctx, accountId, req.DatabaseRef)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByDatabaseID{DatabaseID: databaseId},
		specification.NotDeleted{},
		specification.ShortcutsOnly{},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.GetAllNoteListResponse{NoteList: toNoteInfos(notes)}, nil
}

func (s *noteService) Update(ctx context.Context, accountId int64, req *dto.UpdateNoteRequest) error {
	noteId, err := uuid.Parse(req.NoteId)
	if err != nil {
		return apperror.BadRequest("Invalid note ID")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.NoteRepository()

	note, err := repo.FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return apperror.Internal(err)
	}
	if note == nil {
		return apperror.NotFound("Note not found")
	}
	if note.AccountId != accountId {
		return apperror.PermissionDenied("Cannot update other's note")
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.IsDelete != nil {
		fields["is_delete"] = *req.IsDelete
	}
	if req.IsPublic != nil {
		fields["is_public"] = *req.IsPublic
	}
	if req.IsShortcut != nil {
		fields["is_shortcut"] = *req.IsShortcut
	}
	if len(fields) == 0 {
		return nil
	}

	if err := repo.UpdateFields(ctx, noteId, fields); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// clampPage floors 1-based page numbers to 1.
func clampPage(page int64) int64 {
	if page < 1 {
		return 1
	}
	return page
}

// clampSize applies the default and the per-listing maximum that bounds
// response size.
func clampSize(size, def, max int64) int64 {
	if size <= 0 {
		return def
	}
	if size > max {
		return max
	}
	return size
}

func allPages(total, size int64) int64 {
	return int64(math.Ceil(float64(total) / float64(size)))
}

func toNoteInfo(n *entity.Note) *dto.NoteInfo {
	return &dto.NoteInfo{
		Id:         n.Id.String(),
		Title:      n.Title,
		DatabaseId: n.DatabaseId,
		RootNavId:  n.RootNavId,
		IsDelete:   n.IsDelete,
		IsPublic:   n.IsPublic,
		IsShortcut: n.IsShortcut,
		AccountId:  n.AccountId,
		Pv:         n.Pv,
		CreatedAt:  n.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  n.UpdatedAt.Format(time.RFC3339),
	}
}

func toNoteInfos(notes []*entity.Note) []*dto.NoteInfo {
	infos := make([]*dto.NoteInfo, 0, len(notes))
	for _, n := range notes {
		infos = append(infos, toNoteInfo(n))
	}
	return infos
}
