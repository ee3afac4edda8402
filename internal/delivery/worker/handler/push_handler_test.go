package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"socialgate/config"
	"socialgate/internal/domain/constants"
	"socialgate/internal/domain/service"
	mockUsecase "socialgate/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockThumbnailUsecase, *mockUsecase.MockPushUsecase) {
	thumbnailUsecase := mockUsecase.NewMockThumbnailUsecase(t)
	pushUsecase := mockUsecase.NewMockPushUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := NewPushHandler(PushHandlerParams{
		Config:       &config.Config{},
		Logger:       logger,
		ThumbnailSvc: thumbnailUsecase,
		PushSvc:      pushUsecase,
	})

	return handler, thumbnailUsecase, pushUsecase
}

func pushContext(t *testing.T, eventType string, payload any) (echo.Context, *httptest.ResponseRecorder) {
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.Attributes = map[string]string{
		"eventType":  eventType,
		"request_id": "req-123",
	}
	pushMsg.Message.MessageID = "msg-1"
	pushMsg.Subscription = "projects/test/subscriptions/worker"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush_LoginEvent(t *testing.T) {
	handler, _, pushUsecase := createTestPushHandler(t)

	pushUsecase.EXPECT().
		NotifyLogin(mock.Anything, mock.MatchedBy(func(event *service.LoginEvent) bool {
			return event.AccountID == "acct-1" && event.Provider == "facebook" && event.NewAccount
		})).
		Return(nil)

	c, rec := pushContext(t, service.EventTypeLogin, service.LoginEvent{
		AccountID:  "acct-1",
		Provider:   "facebook",
		NewAccount: true,
	})

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_StorageNotificationBackfillsEventType(t *testing.T) {
	handler, thumbnailUsecase, _ := createTestPushHandler(t)

	thumbnailUsecase.EXPECT().
		ProcessStorageObject(mock.Anything, mock.MatchedBy(func(event *service.StorageObjectEvent) bool {
			return event.Name == "uploads/photo.jpg" && event.EventType == "OBJECT_FINALIZE"
		})).
		Return(nil)

	// Bucket notifications carry the event type only in the attribute.
	c, rec := pushContext(t, "OBJECT_FINALIZE", map[string]string{
		"bucket":      "media",
		"name":        "uploads/photo.jpg",
		"contentType": "image/jpeg",
	})

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_StorageObjectEvent(t *testing.T) {
	handler, thumbnailUsecase, _ := createTestPushHandler(t)

	thumbnailUsecase.EXPECT().
		ProcessStorageObject(mock.Anything, mock.MatchedBy(func(event *service.StorageObjectEvent) bool {
			return event.EventType == "OBJECT_DELETE"
		})).
		Return(nil)

	c, rec := pushContext(t, service.EventTypeStorageObject, service.StorageObjectEvent{
		Bucket:      "media",
		Name:        "uploads/photo.jpg",
		ContentType: "image/jpeg",
		EventType:   "OBJECT_DELETE",
	})

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RetryableFailureReturns503(t *testing.T) {
	handler, thumbnailUsecase, _ := createTestPushHandler(t)

	thumbnailUsecase.EXPECT().
		ProcessStorageObject(mock.Anything, mock.Anything).
		Return(errors.New("bucket unreachable"))

	c, rec := pushContext(t, "OBJECT_FINALIZE", map[string]string{
		"bucket": "media",
		"name":   "uploads/photo.jpg",
	})

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_UnknownEventTypeIsSwallowed(t *testing.T) {
	handler, _, _ := createTestPushHandler(t)

	c, rec := pushContext(t, "somethingElse", map[string]string{})

	// 200 despite the failure so Pub/Sub does not redeliver forever.
	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MalformedBody(t *testing.T) {
	handler, _, _ := createTestPushHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader("not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_InvalidBase64(t *testing.T) {
	handler, _, _ := createTestPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "%%% not base64 %%%"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_MissingTokenRejected(t *testing.T) {
	thumbnailUsecase := mockUsecase.NewMockThumbnailUsecase(t)
	pushUsecase := mockUsecase.NewMockPushUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle},
	}
	cfg.Env.Env = "production"

	handler := NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       logger,
		ThumbnailSvc: thumbnailUsecase,
		PushSvc:      pushUsecase,
	})

	c, rec := pushContext(t, service.EventTypeLogin, service.LoginEvent{AccountID: "acct-1"})

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_VerifyAuthDisabledInDevelop(t *testing.T) {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle},
	}
	cfg.Env.Env = constants.EnvDevelop

	handler := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.False(t, handler.verifyPushAuth)
}
