package integration

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"testing"
	"time"

	"hulunote-be/internal/dto"
	"hulunote-be/internal/model"
	"hulunote-be/internal/pkg/logger"
	"hulunote-be/internal/repository/unitofwork"
	"hulunote-be/internal/service"
	"hulunote-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// End-to-end exercise of the outline store against a real Postgres. Runs only
// when DB_CONNECTION_STRING is set.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "Failed to connect to DB")

	require.NoError(t, gormDB.AutoMigrate(&model.Database{}, &model.Note{}, &model.Nav{}))
	return gormDB
}

type testStack struct {
	databases service.IDatabaseService
	notes     service.INoteService
	navs      service.INavService
	imports   service.IImportService
}

func newTestStack(db *gorm.DB) testStack {
	factory := unitofwork.NewRepositoryFactory(db)
	resolver := service.NewResolverService(factory)
	sysLogger := logger.NewZapLogger(os.DevNull, false)
	return testStack{
		databases: service.NewDatabaseService(factory, resolver),
		notes:     service.NewNoteService(factory, resolver),
		navs:      service.NewNavService(factory, resolver),
		imports:   service.NewImportService(factory, resolver, sysLogger),
	}
}

func cleanupDatabase(t *testing.T, db *gorm.DB, databaseId string) {
	t.Cleanup(func() {
		db.Exec("DELETE FROM hulunote_navs WHERE database_id = ?", databaseId)
		db.Exec("DELETE FROM hulunote_notes WHERE database_id = ?", databaseId)
		db.Exec("DELETE FROM hulunote_databases WHERE id = ?", databaseId)
	})
}

func TestOutlineLifecycle(t *testing.T) {
	db := setupDB(t)
	stack := newTestStack(db)
	ctx := context.Background()
	accountId := rand.Int63n(1 << 40)

	// Database
	dbName := fmt.Sprintf("it-%s", uuid.NewString()[:8])
	created, err := stack.databases.Create(ctx, accountId, &dto.CreateDatabaseRequest{DatabaseName: dbName})
	require.NoError(t, err)
	databaseId := created.Database.Id
	cleanupDatabase(t, db, databaseId)

	// Note, resolved by database name rather than id
	note, err := stack.notes.Create(ctx, accountId, &dto.CreateNoteRequest{
		DatabaseRef: dto.DatabaseRef{DatabaseName: dbName},
		Title:       "integration note",
	})
	require.NoError(t, err)
	assert.Equal(t, databaseId, note.DatabaseId)

	// The root nav is created alongside and anchors the tree
	navs, err := stack.navs.GetNoteNavs(ctx, accountId, &dto.GetNavsRequest{NoteId: note.Id})
	require.NoError(t, err)
	require.Len(t, navs.NavList, 1)
	assert.Equal(t, "ROOT", navs.NavList[0].Content)
	assert.Equal(t, note.RootNavId, navs.NavList[0].Id)

	// Keep the root clearly behind the upcoming checkpoint millisecond
	time.Sleep(5 * time.Millisecond)

	// Child nav under the root
	content := "first bullet"
	order := 1.0
	res, err := stack.navs.CreateOrUpdateNav(ctx, accountId, &dto.CreateOrUpdateNavRequest{
		DatabaseRef: dto.DatabaseRef{DatabaseId: databaseId},
		NoteId:      note.Id,
		Parid:       &note.RootNavId,
		Content:     &content,
		Order:       &order,
	})
	require.NoError(t, err)
	require.True(t, res.Success)
	navId := res.Id

	checkpoint := res.BackendTs

	// Patch one field; the others must survive
	time.Sleep(5 * time.Millisecond)
	patched := "first bullet, edited"
	_, err = stack.navs.CreateOrUpdateNav(ctx, accountId, &dto.CreateOrUpdateNavRequest{
		DatabaseRef: dto.DatabaseRef{DatabaseId: databaseId},
		NoteId:      note.Id,
		Id:          navId,
		Content:     &patched,
	})
	require.NoError(t, err)

	navs, err = stack.navs.GetNoteNavs(ctx, accountId, &dto.GetNavsRequest{NoteId: note.Id})
	require.NoError(t, err)
	require.Len(t, navs.NavList, 2)
	assert.Equal(t, patched, navs.NavList[1].Content)
	assert.Equal(t, order, navs.NavList[1].SameDeepOrder)
	assert.Equal(t, note.RootNavId, navs.NavList[1].Parid)

	// Incremental sync from the pre-patch checkpoint sees the patched nav
	// but not the untouched root
	sync, err := stack.navs.GetAllNavs(ctx, accountId, &dto.GetAllNavsRequest{
		DatabaseRef: dto.DatabaseRef{DatabaseId: databaseId},
		BackendTs:   checkpoint,
	})
	require.NoError(t, err)
	syncedIds := make([]string, 0, len(sync.NavList))
	for _, n := range sync.NavList {
		syncedIds = append(syncedIds, n.Id)
	}
	assert.Contains(t, syncedIds, navId)
	assert.NotContains(t, syncedIds, note.RootNavId)

	// Soft delete: hidden from the tree, still visible to sync
	time.Sleep(5 * time.Millisecond)
	isDelete := true
	_, err = stack.navs.CreateOrUpdateNav(ctx, accountId, &dto.CreateOrUpdateNavRequest{
		DatabaseRef: dto.DatabaseRef{DatabaseId: databaseId},
		NoteId:      note.Id,
		Id:          navId,
		IsDelete:    &isDelete,
	})
	require.NoError(t, err)

	navs, err = stack.navs.GetNoteNavs(ctx, accountId, &dto.GetNavsRequest{NoteId: note.Id})
	require.NoError(t, err)
	require.Len(t, navs.NavList, 1, "deleted nav must leave the tree")

	sync, err = stack.navs.GetAllNavs(ctx, accountId, &dto.GetAllNavsRequest{
		DatabaseRef: dto.DatabaseRef{DatabaseId: databaseId},
		BackendTs:   checkpoint,
	})
	require.NoError(t, err)
	found := false
	for _, n := range sync.NavList {
		if n.Id == navId {
			found = true
			assert.True(t, n.IsDelete)
		}
	}
	assert.True(t, found, "deleted nav must flow through the sync feed")
}

func TestSyncPagination(t *testing.T) {
	db := setupDB(t)
	stack := newTestStack(db)
	ctx := context.Background()
	accountId := rand.Int63n(1 << 40)

	dbName := fmt.Sprintf("it-%s", uuid.NewString()[:8])
	created, err := stack.databases.Create(ctx, accountId, &dto.CreateDatabaseRequest{DatabaseName: dbName})
	require.NoError(t, err)
	databaseId := created.Database.Id
	cleanupDatabase(t, db, databaseId)

	note, err := stack.notes.Create(ctx, accountId, &dto.CreateNoteRequest{
		DatabaseRef: dto.DatabaseRef{DatabaseId: databaseId},
		Title:       "pagination note",
	})
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		content := fmt.Sprintf("bullet %d", i)
		order := float64(i)
		_, err := stack.navs.CreateOrUpdateNav(ctx, accountId, &dto.CreateOrUpdateNavRequest{
			DatabaseRef: dto.DatabaseRef{DatabaseId: databaseId},
			NoteId:      note.Id,
			Parid:       &note.RootNavId,
			Content:     &content,
			Order:       &order,
		})
		require.NoError(t, err)
	}

	// 8 navs total (root + 7), pages of 3
	seen := map[string]bool{}
	var lastPages int64
	for page := int64(1); page <= 3; page++ {
		res, err := stack.navs.GetAllNavsByPage(ctx, accountId, &dto.GetAllNavsRequest{
			DatabaseRef: dto.DatabaseRef{DatabaseId: databaseId},
			BackendTs:   0,
			Page:        page,
			Size:        3,
		})
		require.NoError(t, err)
		lastPages = res.AllPages
		for _, n := range res.NavList {
			assert.False(t, seen[n.Id], "no nav may appear on two pages")
			seen[n.Id] = true
		}
	}
	assert.Equal(t, int64(3), lastPages)
	assert.Len(t, seen, 8)
}

func TestDatabaseDeleteCascade(t *testing.T) {
	db := setupDB(t)
	stack := newTestStack(db)
	ctx := context.Background()
	accountId := rand.Int63n(1 << 40)

	dbName := fmt.Sprintf("it-%s", uuid.NewString()[:8])
	created, err := stack.databases.Create(ctx, accountId, &dto.CreateDatabaseRequest{DatabaseName: dbName})
	require.NoError(t, err)
	databaseId := created.Database.Id
	cleanupDatabase(t, db, databaseId)

	note, err := stack.notes.Create(ctx, accountId, &dto.CreateNoteRequest{
		DatabaseRef: dto.DatabaseRef{DatabaseId: databaseId},
		Title:       "cascade note",
	})
	require.NoError(t, err)

	require.NoError(t, stack.databases.Delete(ctx, accountId, &dto.DeleteDatabaseRequest{DatabaseId: databaseId}))

	// The rows survive as soft-deleted and keep flowing through sync
	sync, err := stack.navs.GetAllNavs(ctx, accountId, &dto.GetAllNavsRequest{
		DatabaseRef: dto.DatabaseRef{DatabaseId: databaseId},
		BackendTs:   0,
	})
	require.NoError(t, err)
	require.NotEmpty(t, sync.NavList)
	for _, n := range sync.NavList {
		assert.True(t, n.IsDelete)
	}

	var noteDeleted bool
	require.NoError(t, db.Raw("SELECT is_delete FROM hulunote_notes WHERE id = ?", note.Id).Scan(&noteDeleted).Error)
	assert.True(t, noteDeleted)
}

func TestImportRoundTrip(t *testing.T) {
	db := setupDB(t)
	stack := newTestStack(db)
	ctx := context.Background()
	accountId := rand.Int63n(1 << 40)

	dbName := fmt.Sprintf("it-%s", uuid.NewString()[:8])
	created, err := stack.databases.Create(ctx, accountId, &dto.CreateDatabaseRequest{DatabaseName: dbName})
	require.NoError(t, err)
	databaseId := created.Database.Id
	cleanupDatabase(t, db, databaseId)

	rootNavId := uuid.NewString()
	childId := uuid.NewString()
	doc := fmt.Sprintf(`{
		"note": {
			"hulunote-notes/id": %q,
			"hulunote-notes/title": "imported note",
			"hulunote-navs/root-nav-id": %q
		},
		"navs": [
			{"id": %q, "parid": %q, "content": "imported bullet", "same-deep-order": 1}
		]
	}`, uuid.NewString(), rootNavId, childId, rootNavId)

	res, err := stack.imports.ImportNotes(ctx, accountId, dto.DatabaseRef{DatabaseId: databaseId},
		[]service.UploadedFile{{Name: "doc.json", Data: []byte(doc)}})
	require.NoError(t, err)
	require.Equal(t, 1, res.ImportedCount)
	require.Equal(t, 0, res.ErrorCount)

	navs, err := stack.navs.GetNoteNavs(ctx, accountId, &dto.GetNavsRequest{NoteId: res.Imported[0].NoteId})
	require.NoError(t, err)
	require.Len(t, navs.NavList, 2)

	// Re-importing the same document is rejected wholesale
	res, err = stack.imports.ImportNotes(ctx, accountId, dto.DatabaseRef{DatabaseId: databaseId},
		[]service.UploadedFile{{Name: "doc.json", Data: []byte(doc)}})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ImportedCount)
	assert.Equal(t, 1, res.ErrorCount)
}
