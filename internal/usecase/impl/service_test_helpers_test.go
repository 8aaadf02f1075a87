package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"aurelise/config"
	"aurelise/internal/domain/repository"
	mockRepo "aurelise/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(enforceTransitions bool) *config.Config {
	return &config.Config{
		Stripe: &config.StripeConfig{Currency: "gbp"},
		Orders: &config.OrdersConfig{
			NumberPrefix:       "AUR",
			EnforceTransitions: enforceTransitions,
			DefaultPageSize:    20,
		},
	}
}

// expectTx runs the transaction body against a factory prepared by setup and
// returns whatever the body returns.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			setup(mockFactory)

			return fn(mockFactory)
		}).
		Once()
}
