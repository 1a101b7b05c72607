package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// serviceFixtures bundles the mocked transaction manager shared by every
// service under test. onExecute arms one Execute call: the setup callback
// wires repository expectations onto a fresh factory, then the transactional
// function runs against it and its error becomes the Execute result, the
// same contract the real manager honors on commit and rollback.
type serviceFixtures struct {
	t         *testing.T
	txManager *mockRepo.MockTransactionManager
}

func newServiceFixtures(t *testing.T) serviceFixtures {
	return serviceFixtures{
		t:         t,
		txManager: mockRepo.NewMockTransactionManager(t),
	}
}

func (fx serviceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}
