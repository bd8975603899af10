package save

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/abandonment-garden/internal/http/middlewarectx"
)

// MockService реализует интерфейс save.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) SaveJob(ctx context.Context, userID, jobID string) (bool, error) {
	args := m.Called(ctx, userID, jobID)
	return args.Bool(0), args.Error(1)
}

func TestSaveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		userID         string
		jobID          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "успешное сохранение",
			userID: "u1",
			jobID:  "job-1",
			setupMock: func(m *MockService) {
				m.On("SaveJob", mock.Anything, "u1", "job-1").Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"saved":true`,
		},
		{
			name:   "повторное сохранение",
			userID: "u1",
			jobID:  "job-1",
			setupMock: func(m *MockService) {
				m.On("SaveJob", mock.Anything, "u1", "job-1").Return(false, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `job already saved`,
		},
		{
			name:           "нет идентификации пользователя",
			userID:         "",
			jobID:          "job-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `user identification missing`,
		},
		{
			name:   "внутренняя ошибка сервиса",
			userID: "u1",
			jobID:  "job-1",
			setupMock: func(m *MockService) {
				m.On("SaveJob", mock.Anything, "u1", "job-1").Return(false, errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not save job`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/"+tt.jobID+"/save", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.jobID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.userID != "" {
				ctx = context.WithValue(ctx, middlewarectx.User, tt.userID)
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
