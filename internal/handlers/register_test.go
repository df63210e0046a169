package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-social/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pic := "http://img/alice.png"

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: `{"username":"alice","email":"alice@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret", nil).
					Return(int64(1), nil)
			},
			expectedCode: 201,
			expectedBody: map[string]any{"message": "User registered successfully!", "userId": float64(1)},
		},
		{
			name: "profile picture",
			body: `{"username":"alice","email":"alice@example.com","password":"secret","profilePictureUrl":"http://img/alice.png"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret", &pic).
					Return(int64(2), nil)
			},
			expectedCode: 201,
			expectedBody: map[string]any{"message": "User registered successfully!", "userId": float64(2)},
		},
		{
			name: "ImgLink alias",
			body: `{"username":"alice","email":"alice@example.com","password":"secret","ImgLink":"http://img/alice.png"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret", &pic).
					Return(int64(3), nil)
			},
			expectedCode: 201,
			expectedBody: map[string]any{"message": "User registered successfully!", "userId": float64(3)},
		},
		{
			name: "missing field",
			body: `{"username":"alice","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "", "secret", nil).
					Return(int64(0), services.ErrRegisterFieldsRequired)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"message": "All fields are required."},
		},
		{
			name: "user already exists",
			body: `{"username":"alice","email":"alice@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret", nil).
					Return(int64(0), services.ErrUserAlreadyExists)
			},
			expectedCode: 409,
			expectedBody: map[string]any{"message": "Username or email already exists."},
		},
		{
			name: "internal server error",
			body: `{"username":"bob","email":"bob@example.com","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "bob@example.com", "pass", nil).
					Return(int64(0), errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"message": "Server error during registration."},
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: 400,
			expectedBody: map[string]any{"message": "Invalid request body."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
