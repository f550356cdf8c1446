package unitofwork

import (
	"context"

	"hulunote-be/internal/repository/contract"
)

// UnitOfWork hands out repositories bound to one connection. Between Begin
// and Commit/Rollback every repository shares the same transaction; this is
// the atomicity boundary the bulk import engine wraps each document in.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	DatabaseRepository() contract.DatabaseRepository
	NoteRepository() contract.NoteRepository
	NavRepository() contract.NavRepository
}
