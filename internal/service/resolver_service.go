package service

import (
	"context"
	"fmt"
	"time"

	"hulunote-be/internal/repository/specification"
	"hulunote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// IResolverService maps a client-supplied database reference (explicit id
// and/or human name) plus the authenticated account to a canonical database
// id. Returns "" when nothing is resolvable.
type IResolverService interface {
	ResolveDatabaseId(ctx context.Context, accountId int64, databaseId, databaseName string) (string, error)
	// InvalidateName drops a cached name lookup; called after a database is
	// renamed or deleted.
	InvalidateName(accountId int64, databaseName string)
}

type resolverService struct {
	uowFactory unitofwork.RepositoryFactory
	nameCache  *gocache.Cache
}

func NewResolverService(uowFactory unitofwork.RepositoryFactory) IResolverService {
	return &resolverService{
		uowFactory: uowFactory,
		nameCache:  gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// ResolveDatabaseId resolves in order:
//  1. an explicit id that parses as a UUID is returned as-is, with no
//     ownership or existence check — id correctness is structural, not
//     authorizing, and callers needing a guarantee check separately;
//  2. a name is looked up among the account's non-deleted databases;
//  3. otherwise "" (not found).
func (s *resolverService) ResolveDatabaseId(ctx context.Context, accountId int64, databaseId, databaseName string) (string, error) {
	if databaseId != "" {
		if id, err := uuid.Parse(databaseId); err == nil {
			return id.String(), nil
		}
	}

	if databaseName != "" {
		cacheKey := fmt.Sprintf("%d:%s", accountId, databaseName)
		if cached, ok := s.nameCache.Get(cacheKey); ok {
			return cached.(string), nil
		}

		uow := s.uowFactory.NewUnitOfWork(ctx)
		database, err := uow.DatabaseRepository().FindOne(ctx,
			specification.ByName{Name: databaseName},
			specification.ByAccountID{AccountID: accountId},
			specification.NotDeleted{},
		)
		if err != nil {
			return "", err
		}
		if database == nil {
			return "", nil
		}

		id := database.Id.String()
		s.nameCache.Set(cacheKey, id, gocache.DefaultExpiration)
		return id, nil
	}

	return "", nil
}

func (s *resolverService) InvalidateName(accountId int64, databaseName string) {
	if databaseName == "" {
		return
	}
	s.nameCache.Delete(fmt.Sprintf("%d:%s", accountId, databaseName))
}
