package unitofwork

import "context"

// RepositoryFactory hands out fresh units of work. Services take the factory
// so each request can decide whether to run transactionally.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
