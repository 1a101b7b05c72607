package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
// Orders have no update route; they are immutable once placed.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListOrders handles the paginated order listing.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	if key, ok := checkQueryKeys(c, "count", "page"); !ok {
		return response.BadRequest(c, "UNKNOWN_FILTER", "unknown filter key: "+key)
	}

	input := usecase.ListOrdersInput{
		Count: defaultPageSize,
		Page:  defaultPage,
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing parameters")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "")
}

// GetOrder handles the single order lookup, products included.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Malformed order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "")
}

// CreateOrder handles the order placement request.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var input usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order), "Order created successfully")
}

// DeleteOrder handles the order deletion request.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Malformed order ID")
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
