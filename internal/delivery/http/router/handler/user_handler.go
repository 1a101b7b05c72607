package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc        usecase.UserUsecase
	addressUC usecase.AddressUsecase
	orderUC   usecase.OrderUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
// The address and order usecases back the relationship lookups under /users/:id.
func NewUserHandler(
	uc usecase.UserUsecase,
	addressUC usecase.AddressUsecase,
	orderUC usecase.OrderUsecase,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		uc:        uc,
		addressUC: addressUC,
		orderUC:   orderUC,
		logger:    logger,
	}
}

// ListUsers handles the filtered, paginated user listing.
func (h *UserHandler) ListUsers(c echo.Context) error {
	if key, ok := checkQueryKeys(c, "count", "page", "username", "email", "description"); !ok {
		return response.BadRequest(c, "UNKNOWN_FILTER", "unknown filter key: "+key)
	}

	input := usecase.ListUsersInput{
		Count: defaultPageSize,
		Page:  defaultPage,
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing parameters")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.ListUsers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, UserListResponse{
		Users: toUserResponses(output.Users),
		Total: output.Total,
	}, "")
}

// GetUser handles the single user lookup.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Malformed user ID")
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// CreateUser handles the user creation request.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.CreateUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "User created successfully")
}

// UpdateUser handles the partial user update request.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Malformed user ID")
	}

	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User updated successfully")
}

// DeleteUser handles the user deletion request.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Malformed user ID")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListUserAddresses returns every address owned by the user.
func (h *UserHandler) ListUserAddresses(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Malformed user ID")
	}

	addresses, err := h.addressUC.ListAddressesByUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponses(addresses), "")
}

// ListUserOrders returns every order placed by the user.
func (h *UserHandler) ListUserOrders(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Malformed user ID")
	}

	orders, err := h.orderUC.ListOrdersByUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "")
}
