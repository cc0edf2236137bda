package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/botfarm-io/botfarm/internal/modules/model"
	"github.com/botfarm-io/botfarm/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, name string) (*model.Project, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, name string) (*model.Project, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, limit int) ([]model.Project, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, name string, patch service.ProjectPatch) (*model.Project, error) {
	args := m.Called(ctx, name, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func setupProjectRouter(svc service.ProjectService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewProjectHandler(svc)
	r.POST("/projects", h.CreateProject)
	r.GET("/projects", h.ListProjects)
	r.GET("/projects/:name", h.GetProject)
	r.PATCH("/projects/:name", h.UpdateProject)
	r.DELETE("/projects/:name", h.DeleteProject)
	return r
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewBuffer(raw)
}

func TestProjectHandler_CreateProject(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setup          func(*MockProjectService)
		expectedStatus int
	}{
		{
			name: "successful creation",
			body: map[string]string{"name": "alpha"},
			setup: func(svc *MockProjectService) {
				svc.On("Create", mock.Anything, "alpha").
					Return(&model.Project{ID: uuid.New(), Name: "alpha"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           map[string]string{},
			setup:          func(svc *MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service layer error",
			body: map[string]string{"name": "alpha"},
			setup: func(svc *MockProjectService) {
				svc.On("Create", mock.Anything, "alpha").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockProjectService{}
			tt.setup(mockSvc)

			r := setupProjectRouter(mockSvc)
			req := httptest.NewRequest(http.MethodPost, "/projects", jsonBody(t, tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestProjectHandler_GetProject(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*MockProjectService)
		expectedStatus int
	}{
		{
			name: "found",
			setup: func(svc *MockProjectService) {
				svc.On("Get", mock.Anything, "alpha").
					Return(&model.Project{ID: uuid.New(), Name: "alpha"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found maps to 422",
			setup: func(svc *MockProjectService) {
				svc.On("Get", mock.Anything, "alpha").Return(nil, model.ErrProjectNotFound)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockProjectService{}
			tt.setup(mockSvc)

			r := setupProjectRouter(mockSvc)
			req := httptest.NewRequest(http.MethodGet, "/projects/alpha", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestProjectHandler_ListProjects(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		mockSvc := &MockProjectService{}
		mockSvc.On("List", mock.Anything, 100).Return([]model.Project{}, nil)

		r := setupProjectRouter(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/projects", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("explicit limit", func(t *testing.T) {
		mockSvc := &MockProjectService{}
		mockSvc.On("List", mock.Anything, 5).Return([]model.Project{{ID: uuid.New(), Name: "alpha"}}, nil)

		r := setupProjectRouter(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/projects?limit=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("limit below one is rejected", func(t *testing.T) {
		mockSvc := &MockProjectService{}

		r := setupProjectRouter(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/projects?limit=0", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestProjectHandler_UpdateProject(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		mockSvc := &MockProjectService{}
		mockSvc.On("Update", mock.Anything, "alpha", mock.MatchedBy(func(p service.ProjectPatch) bool {
			return p.Name != nil && *p.Name == "beta"
		})).Return(&model.Project{ID: uuid.New(), Name: "beta"}, nil)

		r := setupProjectRouter(mockSvc)
		req := httptest.NewRequest(http.MethodPatch, "/projects/alpha", jsonBody(t, map[string]string{"name": "beta"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing project maps to 422", func(t *testing.T) {
		mockSvc := &MockProjectService{}
		mockSvc.On("Update", mock.Anything, "ghost", mock.Anything).Return(nil, model.ErrProjectNotFound)

		r := setupProjectRouter(mockSvc)
		req := httptest.NewRequest(http.MethodPatch, "/projects/ghost", jsonBody(t, map[string]string{"name": "beta"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestProjectHandler_DeleteProject(t *testing.T) {
	t.Run("deleted with no body", func(t *testing.T) {
		mockSvc := &MockProjectService{}
		mockSvc.On("Delete", mock.Anything, "alpha").Return(nil)

		r := setupProjectRouter(mockSvc)
		req := httptest.NewRequest(http.MethodDelete, "/projects/alpha", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("missing project maps to 422", func(t *testing.T) {
		mockSvc := &MockProjectService{}
		mockSvc.On("Delete", mock.Anything, "ghost").Return(model.ErrProjectNotFound)

		r := setupProjectRouter(mockSvc)
		req := httptest.NewRequest(http.MethodDelete, "/projects/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
