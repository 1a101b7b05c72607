package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for address-related handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListAddresses handles the paginated address listing.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	if key, ok := checkQueryKeys(c, "count", "page"); !ok {
		return response.BadRequest(c, "UNKNOWN_FILTER", "unknown filter key: "+key)
	}

	input := usecase.ListAddressesInput{
		Count: defaultPageSize,
		Page:  defaultPage,
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing parameters")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponses(addresses), "")
}

// GetAddress handles the single address lookup.
func (h *AddressHandler) GetAddress(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Malformed address ID")
	}

	address, err := h.uc.GetAddress(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address), "")
}

// CreateAddress handles the address creation request.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var input usecase.CreateAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAddressResponse(address), "Address created successfully")
}

// UpdateAddress handles the partial address update request.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Malformed address ID")
	}

	var input usecase.UpdateAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address), "Address updated successfully")
}

// DeleteAddress handles the address deletion request.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Malformed address ID")
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
