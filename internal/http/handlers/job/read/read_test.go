package read

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/abandonment-garden/internal/models"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Ready() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockService) GetByID(id string) *models.Job {
	args := m.Called(id)
	if res := args.Get(0); res != nil {
		return res.(*models.Job)
	}
	return nil
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		jobID          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "успешное чтение вакансии",
			jobID: "job-1",
			setupMock: func(m *MockService) {
				job := &models.Job{
					ID:      "job-1",
					Title:   "Senior Disappointment Engineer",
					Company: "Voidworks",
				}
				m.On("Ready").Return(true)
				m.On("GetByID", "job-1").Return(job)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"Senior Disappointment Engineer"`,
		},
		{
			name:  "вакансия не найдена",
			jobID: "missing",
			setupMock: func(m *MockService) {
				m.On("Ready").Return(true)
				m.On("GetByID", "missing").Return(nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `job not found`,
		},
		{
			name:  "каталог не готов",
			jobID: "job-1",
			setupMock: func(m *MockService) {
				m.On("Ready").Return(false)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `job catalog is not ready`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+tt.jobID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.jobID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
