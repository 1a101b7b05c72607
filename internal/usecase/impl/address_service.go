package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetAddress retrieves a single address by ID.
func (srv *addressService) GetAddress(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var address *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AddressRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
			}

			return errors.Wrap(err, "failed to find address")
		}
		address = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return address, nil
}

// ListAddresses returns one page of addresses.
func (srv *addressService) ListAddresses(ctx context.Context, input usecase.ListAddressesInput) ([]*entity.Address, error) {
	var addresses []*entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AddressRepo().FindAll(ctx, input.Count, input.Page)
		if err != nil {
			return errors.Wrap(err, "failed to list addresses")
		}
		addresses = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return addresses, nil
}

// ListAddressesByUser returns all addresses owned by a user.
func (srv *addressService) ListAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var addresses []*entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AddressRepo().FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list addresses by user")
		}
		addresses = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return addresses, nil
}

// CreateAddress persists a new address, applying the State/ZipCode defaults.
func (srv *addressService) CreateAddress(ctx context.Context, input usecase.CreateAddressInput) (*entity.Address, error) {
	srv.logger.Debug("Creating address", "userID", input.UserID)

	address := &entity.Address{
		UserID:    input.UserID,
		Street:    input.Street,
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		Country:   input.Country,
		IsPrimary: input.IsPrimary,
	}
	if address.State == "" {
		address.State = entity.DefaultState
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AddressRepo().Create(ctx, address)
	})

	if err != nil {
		return nil, err
	}

	return address, nil
}

// UpdateAddress applies a partial update and returns the refreshed entity.
func (srv *addressService) UpdateAddress(ctx context.Context, id uuid.UUID, input usecase.UpdateAddressInput) (*entity.Address, error) {
	srv.logger.Debug("Updating address", "id", id)

	var address *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		found, err := addressRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
			}

			return errors.Wrap(err, "failed to find address")
		}

		if input.Street != nil {
			found.Street = *input.Street
		}
		if input.City != nil {
			found.City = *input.City
		}
		if input.State != nil {
			found.State = *input.State
		}
		if input.ZipCode != nil {
			found.ZipCode = *input.ZipCode
		}
		if input.Country != nil {
			found.Country = *input.Country
		}
		if input.IsPrimary != nil {
			found.IsPrimary = *input.IsPrimary
		}

		if err := addressRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update address")
		}
		address = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return address, nil
}

// DeleteAddress removes an address; absent IDs are a no-op.
func (srv *addressService) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	srv.logger.Debug("Deleting address", "id", id)

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AddressRepo().Delete(ctx, id)
	})
}
