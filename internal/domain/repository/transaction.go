package repository

import "context"

// TransactionManager runs a unit of work inside one database transaction.
// If fn returns an error the transaction is rolled back, otherwise committed.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the surrounding transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	RefreshTokenRepo() RefreshTokenRepository
	CategoryRepo() CategoryRepository
	LedgerRepo() LedgerRepository
}
