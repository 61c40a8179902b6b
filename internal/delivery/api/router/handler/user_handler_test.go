package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lostfound/internal/domain/entity"
	mockUsecase "lostfound/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserHandler_UpdateLocation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(m *mockUsecase.MockUserUsecase)
		wantCode int
	}{
		{
			name: "stores parsed location",
			body: `{"gps":" 7.4863 , 80.3623 "}`,
			setup: func(m *mockUsecase.MockUserUsecase) {
				m.EXPECT().UpdateLocation(mock.Anything, testAuthor, " 7.4863 , 80.3623 ").
					Return(&entity.User{ID: testAuthor.ID, GPS: "7.4863,80.3623"}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "rejects free text",
			body:     `{"gps":"Kandy town"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "rejects missing gps",
			body:     `{}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userUC := mockUsecase.NewMockUserUsecase(t)
			if tt.setup != nil {
				tt.setup(userUC)
			}
			h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: slog.New(slog.DiscardHandler)})

			e := newTestEcho()
			e.PUT("/me/location", h.UpdateLocation, asAuthor(testAuthor))

			req := httptest.NewRequest(http.MethodPut, "/me/location", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestUserHandler_SyncProfile(t *testing.T) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	e.PUT("/me", h.SyncProfile, asAuthor(testAuthor))

	userUC.EXPECT().SyncProfile(mock.Anything, testAuthor, "Nimal").
		Return(&entity.User{ID: testAuthor.ID, Email: testAuthor.Email, Name: "Nimal"}, nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/me", strings.NewReader(`{"name":"Nimal"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Nimal"`)
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	e.POST("/notifications/:id/read", h.MarkRead, asAuthor(testAuthor))

	id := uuid.New()
	notificationUC.EXPECT().MarkRead(mock.Anything, testAuthor.ID, id).Return(nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notifications/"+id.String()+"/read", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notifications/not-a-uuid/read", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
}

func TestNotificationHandler_ListNotifications(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	e.GET("/notifications", h.ListNotifications, asAuthor(testAuthor))

	notificationUC.EXPECT().ListNotifications(mock.Anything, testAuthor.ID, 2, 50).
		Return(nil, nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notifications?page=2&pageSize=500", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"pageSize"`)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notifications?page=2&pageSize=50", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_UnreadCount(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	e.GET("/notifications/unread-count", h.UnreadCount, asAuthor(testAuthor))

	notificationUC.EXPECT().UnreadCount(mock.Anything, testAuthor.ID).Return(int64(4), nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notifications/unread-count", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unread":4`)
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	e.POST("/devices", h.RegisterDevice, asAuthor(testAuthor))

	deviceUC.EXPECT().RegisterDevice(mock.Anything, testAuthor.ID, mock.Anything).
		Return(&entity.UserDevice{ID: uuid.New(), UserID: testAuthor.ID, Platform: "android"}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/devices",
		strings.NewReader(`{"fcm_token":"tok","device_id":"pixel-7","platform":"android"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/devices",
		strings.NewReader(`{"fcm_token":"tok","device_id":"pixel-7","platform":"symbian"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
