package repository

import "context"

// TransactionManager runs multi-step writes such as checkout, cart merge and
// registration atomically.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. Repositories
	// obtained from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewAuthRepository() AuthRepository
	NewAddressRepository() AddressRepository
	NewProductRepository() ProductRepository
	NewCartRepository() CartRepository
	NewOrderRepository() OrderRepository
}
