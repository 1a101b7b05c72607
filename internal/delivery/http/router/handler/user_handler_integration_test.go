package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// newTestContext builds an Echo context the way the server does, validator
// included, so Bind and Validate behave as in production.
func newTestContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// newTestUserHandler wires real services over a mocked transaction manager,
// so a handler call exercises the whole stack below the transport.
func newTestUserHandler(t *testing.T) (*UserHandler, *mockRepo.MockTransactionManager) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &UserHandler{
		uc:        impl.NewUserService(txManager, logger),
		addressUC: impl.NewAddressService(txManager, logger),
		orderUC:   impl.NewOrderService(txManager, logger),
		logger:    logger,
	}, txManager
}

// onExecute arms one transactional call: setup wires repository expectations
// onto a fresh factory, then the transactional function runs against it.
func onExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func TestUserHandler_GetUser_Integration(t *testing.T) {
	h, txManager := newTestUserHandler(t)

	userID := uuid.New()
	onExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{
			ID:          userID,
			Username:    "daniil",
			Email:       "daniil@example.com",
			Description: entity.DefaultDescription,
		}, nil)
		factory.EXPECT().UserRepo().Return(userRepo)
	})

	c, rec := newTestContext(t, http.MethodGet, "/users/"+userID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(userID.String())

	err := h.GetUser(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":true`)
	assert.Contains(t, responseBody, "daniil")
	assert.Contains(t, responseBody, userID.String())
}

func TestUserHandler_GetUser_MalformedID(t *testing.T) {
	h, _ := newTestUserHandler(t)

	c, rec := newTestContext(t, http.MethodGet, "/users/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.GetUser(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestUserHandler_ListUsers_UnknownFilterKey(t *testing.T) {
	h, _ := newTestUserHandler(t)

	c, rec := newTestContext(t, http.MethodGet, "/users?usernme=alice", "")

	err := h.ListUsers(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNKNOWN_FILTER")
	assert.Contains(t, rec.Body.String(), "usernme")
}

func TestUserHandler_ListUsers_DefaultPagination(t *testing.T) {
	h, txManager := newTestUserHandler(t)

	onExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		userRepo.EXPECT().
			FindByFilter(mock.Anything, repository.UserFilter{}, 10, 0).
			Return([]*entity.User{}, int64(0), nil)
		factory.EXPECT().UserRepo().Return(userRepo)
	})

	c, rec := newTestContext(t, http.MethodGet, "/users", "")

	err := h.ListUsers(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":0`)
}

func TestUserHandler_CreateUser_InvalidEmail(t *testing.T) {
	h, _ := newTestUserHandler(t)

	c, _ := newTestContext(t, http.MethodPost, "/users", `{"username":"alice","email":"not-an-email"}`)

	err := h.CreateUser(c)
	assert.Error(t, err)

	var httpErr *echo.HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUserHandler_CreateUser_Integration(t *testing.T) {
	h, txManager := newTestUserHandler(t)

	onExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		userRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.User")).
			RunAndReturn(func(ctx context.Context, user *entity.User) error {
				user.ID = uuid.New()

				return nil
			})
		factory.EXPECT().UserRepo().Return(userRepo)
	})

	c, rec := newTestContext(t, http.MethodPost, "/users", `{"username":"alice","email":"alice@example.com"}`)

	err := h.CreateUser(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "User created successfully")
	assert.Contains(t, rec.Body.String(), entity.DefaultDescription)
}
