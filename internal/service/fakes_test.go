package service

import (
	"context"

	"hulunote-be/internal/entity"
	"hulunote-be/internal/repository/contract"
	"hulunote-be/internal/repository/specification"
	"hulunote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repository fakes. Queries are stubbed with function fields (a nil
// field answers "nothing found"); writes are recorded for assertions.

type fieldUpdate struct {
	id     uuid.UUID
	fields map[string]interface{}
}

type fakeDatabaseRepo struct {
	findOneFn func(specs []specification.Specification) (*entity.Database, error)
	findAllFn func(specs []specification.Specification) ([]*entity.Database, error)
	countFn   func(specs []specification.Specification) (int64, error)

	created []*entity.Database
	updates []fieldUpdate
}

func (r *fakeDatabaseRepo) Create(_ context.Context, d *entity.Database) error {
	r.created = append(r.created, d)
	return nil
}

func (r *fakeDatabaseRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	r.updates = append(r.updates, fieldUpdate{id: id, fields: fields})
	return nil
}

func (r *fakeDatabaseRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Database, error) {
	if r.findOneFn == nil {
		return nil, nil
	}
	return r.findOneFn(specs)
}

func (r *fakeDatabaseRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Database, error) {
	if r.findAllFn == nil {
		return nil, nil
	}
	return r.findAllFn(specs)
}

func (r *fakeDatabaseRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	if r.countFn == nil {
		return 0, nil
	}
	return r.countFn(specs)
}

type fakeNoteRepo struct {
	findOneFn func(specs []specification.Specification) (*entity.Note, error)
	findAllFn func(specs []specification.Specification) ([]*entity.Note, error)
	countFn   func(specs []specification.Specification) (int64, error)

	created     []*entity.Note
	updates     []fieldUpdate
	softDeleted []string
}

func (r *fakeNoteRepo) Create(_ context.Context, n *entity.Note) error {
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNoteRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	r.updates = append(r.updates, fieldUpdate{id: id, fields: fields})
	return nil
}

func (r *fakeNoteRepo) SoftDeleteByDatabaseId(_ context.Context, databaseId string) error {
	r.softDeleted = append(r.softDeleted, databaseId)
	return nil
}

func (r *fakeNoteRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Note, error) {
	if r.findOneFn == nil {
		return nil, nil
	}
	return r.findOneFn(specs)
}

func (r *fakeNoteRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	if r.findAllFn == nil {
		return nil, nil
	}
	return r.findAllFn(specs)
}

func (r *fakeNoteRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	if r.countFn == nil {
		return 0, nil
	}
	return r.countFn(specs)
}

type fakeNavRepo struct {
	findOneFn func(specs []specification.Specification) (*entity.Nav, error)
	findAllFn func(specs []specification.Specification) ([]*entity.Nav, error)
	countFn   func(specs []specification.Specification) (int64, error)

	created       []*entity.Nav
	createIgnored []*entity.Nav
	updates       []fieldUpdate
	softDeleted   []string
}

func (r *fakeNavRepo) Create(_ context.Context, n *entity.Nav) error {
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNavRepo) CreateIgnoreDuplicate(_ context.Context, n *entity.Nav) error {
	r.createIgnored = append(r.createIgnored, n)
	return nil
}

func (r *fakeNavRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	r.updates = append(r.updates, fieldUpdate{id: id, fields: fields})
	return nil
}

func (r *fakeNavRepo) SoftDeleteByDatabaseId(_ context.Context, databaseId string) error {
	r.softDeleted = append(r.softDeleted, databaseId)
	return nil
}

func (r *fakeNavRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Nav, error) {
	if r.findOneFn == nil {
		return nil, nil
	}
	return r.findOneFn(specs)
}

func (r *fakeNavRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Nav, error) {
	if r.findAllFn == nil {
		return nil, nil
	}
	return r.findAllFn(specs)
}

func (r *fakeNavRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	if r.countFn == nil {
		return 0, nil
	}
	return r.countFn(specs)
}

type fakeUnitOfWork struct {
	databases *fakeDatabaseRepo
	notes     *fakeNoteRepo
	navs      *fakeNavRepo

	begins    int
	commits   int
	rollbacks int
	inTx      bool
}

func (u *fakeUnitOfWork) Begin(_ context.Context) error {
	u.begins++
	u.inTx = true
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.commits++
	u.inTx = false
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	if u.inTx {
		u.rollbacks++
		u.inTx = false
	}
	return nil
}

func (u *fakeUnitOfWork) DatabaseRepository() contract.DatabaseRepository { return u.databases }
func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository         { return u.notes }
func (u *fakeUnitOfWork) NavRepository() contract.NavRepository           { return u.navs }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		uow: &fakeUnitOfWork{
			databases: &fakeDatabaseRepo{},
			notes:     &fakeNoteRepo{},
			navs:      &fakeNavRepo{},
		},
	}
}

func (f *fakeFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// fakeResolver answers a fixed id for every reference.
type fakeResolver struct {
	databaseId    string
	err           error
	invalidations []string
}

func (r *fakeResolver) ResolveDatabaseId(_ context.Context, _ int64, _, _ string) (string, error) {
	return r.databaseId, r.err
}

func (r *fakeResolver) InvalidateName(_ int64, databaseName string) {
	r.invalidations = append(r.invalidations, databaseName)
}

type nullLogger struct{}

func (nullLogger) Debug(_, _ string, _ map[string]interface{}) {}
func (nullLogger) Info(_, _ string, _ map[string]interface{})  {}
func (nullLogger) Warn(_, _ string, _ map[string]interface{})  {}
func (nullLogger) Error(_, _ string, _ map[string]interface{}) {}
func (nullLogger) Sync() error                                 { return nil }

func hasSpec[T specification.Specification](specs []specification.Specification) bool {
	for _, s := range specs {
		if _, ok := s.(T); ok {
			return true
		}
	}
	return false
}
