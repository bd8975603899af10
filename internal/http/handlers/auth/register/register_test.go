package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/abandonment-garden/internal/models"
	"github.com/magabrotheeeer/abandonment-garden/internal/services/auth"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, req models.DummyRegister) (*models.SessionUser, string, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*models.SessionUser), args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			body: `{"name":"Sad Seeker","email":"seeker@example.com","password":"hunter2hunter2"}`,
			setupMock: func(m *MockService) {
				user := &models.SessionUser{
					ID:    "u1",
					Name:  "Sad Seeker",
					Email: "seeker@example.com",
				}
				m.On("Register", mock.Anything, mock.Anything).Return(user, "sometoken", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"sometoken"`,
		},
		{
			name:           "некорректное тело запроса",
			body:           `{not json`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "пустой email не проходит валидацию",
			body:           `{"name":"Sad Seeker","email":"","password":"hunter2hunter2"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email is a required field`,
		},
		{
			name:           "короткий пароль не проходит валидацию",
			body:           `{"name":"Sad Seeker","email":"seeker@example.com","password":"short"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Password is too short`,
		},
		{
			name: "email уже занят",
			body: `{"name":"Sad Seeker","email":"seeker@example.com","password":"hunter2hunter2"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, "", auth.ErrDuplicateAccount)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `account with this email already exists`,
		},
		{
			name: "внутренняя ошибка сервиса",
			body: `{"name":"Sad Seeker","email":"seeker@example.com","password":"hunter2hunter2"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, "", errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `failed to register user`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
