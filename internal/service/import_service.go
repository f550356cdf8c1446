package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"hulunote-be/internal/dto"
	"hulunote-be/internal/entity"
	"hulunote-be/internal/pkg/apperror"
	"hulunote-be/internal/pkg/logger"
	"hulunote-be/internal/repository/specification"
	"hulunote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// UploadedFile is one multipart file part, already read into memory.
type UploadedFile struct {
	Name string
	Data []byte
}

// IImportService ingests outline documents, one note per document, into a
// target database. Documents commit atomically and independently: one
// document's failure rolls back only that document and becomes a batch item.
type IImportService interface {
	ImportNotes(ctx context.Context, accountId int64, ref dto.DatabaseRef, files []UploadedFile) (*dto.ImportNotesResponse, error)
}

type importService struct {
	uowFactory unitofwork.RepositoryFactory
	resolver   IResolverService
	log        logger.ILogger
}

func NewImportService(uowFactory unitofwork.RepositoryFactory, resolver IResolverService, log logger.ILogger) IImportService {
	return &importService{
		uowFactory: uowFactory,
		resolver:   resolver,
		log:        log,
	}
}

// CollectJsonFiles normalizes an upload into documents. A .zip is expanded
// into its .json entries (case-insensitive extension, directories skipped);
// anything else passes through as a single document.
func CollectJsonFiles(filename string, data []byte) ([]UploadedFile, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".zip") {
		return []UploadedFile{{Name: filename, Data: data}}, nil
	}

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, apperror.BadRequest("Invalid ZIP file %s: %v", filename, err)
	}

	var files []UploadedFile
	for _, entry := range archive.File {
		if entry.FileInfo().IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name), ".json") {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, apperror.BadRequest("Failed to read ZIP entry %s: %v", entry.Name, err)
		}
		buf, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, apperror.BadRequest("Failed to read ZIP entry %s: %v", entry.Name, err)
		}
		files = append(files, UploadedFile{Name: entry.Name, Data: buf})
	}
	return files, nil
}

// ImportNotes resolves the target database once for the batch, then processes
// documents sequentially so one document's rollback cannot race another's
// writes. Only structural failures (no documents, unresolvable database) fail
// the call itself.
func (s *importService) ImportNotes(ctx context.Context, accountId int64, ref dto.DatabaseRef, files []UploadedFile) (*dto.ImportNotesResponse, error) {
	var documents []UploadedFile
	for _, f := range files {
		extracted, err := CollectJsonFiles(f.Name, f.Data)
		if err != nil {
			return nil, err
		}
		documents = append(documents, extracted...)
	}
	if len(documents) == 0 {
		return nil, apperror.BadRequest("No JSON files uploaded (or ZIP contains no .json files)")
	}

	databaseId, err := s.resolver.ResolveDatabaseId(ctx, accountId, ref.DatabaseId, ref.Name())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if databaseId == "" {
		return nil, apperror.BadRequest("Database not found")
	}

	res := &dto.ImportNotesResponse{
		Success:  true,
		Imported: make([]*dto.ImportedNote, 0),
		Errors:   make([]*dto.ImportError, 0),
	}
	for _, doc := range documents {
		imported, err := s.importSingleNote(ctx, accountId, databaseId, doc.Name, doc.Data)
		if err != nil {
			s.log.Warn("import", "document rejected", map[string]interface{}{
				"file":  doc.Name,
				"error": err.Error(),
			})
			res.Errors = append(res.Errors, &dto.ImportError{File: doc.Name, Error: err.Error()})
			continue
		}
		res.Imported = append(res.Imported, imported)
	}
	res.ImportedCount = len(res.Imported)
	res.ErrorCount = len(res.Errors)

	s.log.Info("import", "batch finished", map[string]interface{}{
		"database-id":    databaseId,
		"imported-count": res.ImportedCount,
		"error-count":    res.ErrorCount,
	})
	return res, nil
}

// importSingleNote validates and commits one document. Validation happens
// before any write; the note row, root nav and child navs then go in as one
// transaction. Child navs insert idempotently (a replayed id is skipped), but
// a pre-existing note id rejects the whole document so a re-import is a
// no-op failure rather than a merge.
func (s *importService) importSingleNote(ctx context.Context, accountId int64, databaseId, filename string, data []byte) (*dto.ImportedNote, error) {
	var doc dto.ImportNoteJson
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("Invalid JSON in %s: %v", filename, err)
	}

	noteId, err := uuid.Parse(doc.Note.Id)
	if err != nil {
		return nil, fmt.Errorf("Invalid note ID in %s", filename)
	}
	rootNavId, err := uuid.Parse(doc.Note.RootNavId)
	if err != nil {
		return nil, fmt.Errorf("Invalid root nav ID in %s", filename)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("Note %s already exists (id=%s), skipped", doc.Note.Title, doc.Note.Id)
	}

	titleClash, err := uow.NoteRepository().FindOne(ctx,
		specification.ByDatabaseID{DatabaseID: databaseId},
		specification.ByTitle{Title: doc.Note.Title},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if titleClash != nil {
		return nil, fmt.Errorf("Note with title '%s' already exists in this database, skipped", doc.Note.Title)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	note := entity.Note{
		Id:         noteId,
		Title:      doc.Note.Title,
		DatabaseId: databaseId,
		RootNavId:  rootNavId.String(),
		IsDelete:   boolOr(doc.Note.IsDelete, false),
		IsPublic:   boolOr(doc.Note.IsPublic, false),
		IsShortcut: boolOr(doc.Note.IsShortcut, false),
		AccountId:  accountId,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
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
	if err := uow.NavRepository().CreateIgnoreDuplicate(ctx, &rootNav); err != nil {
		return nil, err
	}

	navCount := 0
	for _, navData := range doc.Navs {
		navId, err := uuid.Parse(navData.Id)
		if err != nil {
			return nil, fmt.Errorf("Invalid nav ID: %s", navData.Id)
		}

		nav := entity.Nav{
			Id:            navId,
			Parid:         navData.Parid,
			SameDeepOrder: navData.SameDeepOrder,
			Content:       navData.Content,
			AccountId:     accountId,
			NoteId:        noteId.String(),
			DatabaseId:    databaseId,
			IsDisplay:     boolOr(navData.IsDisplay, true),
			IsDelete:      boolOr(navData.IsDelete, false),
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		if err := uow.NavRepository().CreateIgnoreDuplicate(ctx, &nav); err != nil {
			return nil, err
		}
		navCount++
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.ImportedNote{
		File:     filename,
		NoteId:   noteId.String(),
		Title:    doc.Note.Title,
		NavCount: navCount,
	}, nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
