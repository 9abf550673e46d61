package hruser_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/PADMANABAN5/hrms/internal/hruser"
	hrusererrors "github.com/PADMANABAN5/hrms/internal/hruser/errors"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

type fakeHRUserService struct {
	createFn       func(ctx context.Context, req hruser.CreateHRUserRequest) (hruser.HRUserResponse, error)
	getAllFn       func(ctx context.Context) ([]hruser.HRUserResponse, error)
	getByIDFn      func(ctx context.Context, id string) (hruser.HRUserResponse, error)
	updateFn       func(ctx context.Context, id string, req hruser.UpdateHRUserRequest) (hruser.HRUserResponse, error)
	toggleStatusFn func(ctx context.Context, id string, isActive bool) error
	deleteFn       func(ctx context.Context, id string) error
}

func (f *fakeHRUserService) Create(ctx context.Context, req hruser.CreateHRUserRequest) (hruser.HRUserResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeHRUserService) GetAll(ctx context.Context) ([]hruser.HRUserResponse, error) {
	return f.getAllFn(ctx)
}

func (f *fakeHRUserService) GetByID(ctx context.Context, id string) (hruser.HRUserResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeHRUserService) Update(ctx context.Context, id string, req hruser.UpdateHRUserRequest) (hruser.HRUserResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeHRUserService) ToggleStatus(ctx context.Context, id string, isActive bool) error {
	return f.toggleStatusFn(ctx, id, isActive)
}

func (f *fakeHRUserService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestHRUserHandler_Create_ValidationError(t *testing.T) {
	h := hruser.NewHandler(&fakeHRUserService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/hr-users", strings.NewReader(`{"username":"ab"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestHRUserHandler_Create_Conflict(t *testing.T) {
	svc := &fakeHRUserService{
		createFn: func(ctx context.Context, req hruser.CreateHRUserRequest) (hruser.HRUserResponse, error) {
			return hruser.HRUserResponse{}, hrusererrors.ErrEmailAlreadyUsed
		},
	}
	h := hruser.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"username":"asha","email":"asha@example.com","password":"longenough"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/hr-users", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Ok)
}
