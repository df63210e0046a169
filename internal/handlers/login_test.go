package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-social/internal/models"
	"github.com/sbilibin2017/gw-social/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: `{"username":"alice","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "alice", "secret").
					Return("JWT_TOKEN", &models.UserSummary{ID: 1, Username: "alice"}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{
				"message": "Login successful!",
				"token":   "JWT_TOKEN",
				"user":    map[string]any{"id": float64(1), "username": "alice"},
			},
		},
		{
			name: "missing password",
			body: `{"username":"alice"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "alice", "").
					Return("", nil, services.ErrLoginFieldsRequired)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"message": "Username and password are required."},
		},
		{
			name: "invalid credentials",
			body: `{"username":"alice","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "alice", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode: 401,
			expectedBody: map[string]any{"message": "Invalid username or password."},
		},
		{
			name: "internal error",
			body: `{"username":"alice","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "alice", "secret").
					Return("", nil, errors.New("db down"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"message": "Server error during login."},
		},
		{
			name:         "invalid json",
			body:         "not json",
			expectedCode: 400,
			expectedBody: map[string]any{"message": "Invalid request body."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			NewLoginHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, decodeMap(t, rr))
		})
	}
}
