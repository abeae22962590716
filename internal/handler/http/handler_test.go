package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/vidabem/securechat/internal/config"
	"github.com/vidabem/securechat/internal/expiration"
	"github.com/vidabem/securechat/internal/logger"
	"github.com/vidabem/securechat/internal/mock"
	"github.com/vidabem/securechat/internal/service"
	"github.com/vidabem/securechat/internal/store"
	"github.com/vidabem/securechat/internal/upload"
	"github.com/vidabem/securechat/internal/utils"
	"github.com/vidabem/securechat/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "securechat-test"
	testUserID  = int64(7)
)

type handlerFixture struct {
	router *chi.Mux

	messages    *mock.MockMessageService
	attachments *mock.MockAttachmentService
	exchange    *mock.MockExchangeService

	token string
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	messages := mock.NewMockMessageService(ctrl)
	attachments := mock.NewMockAttachmentService(ctrl)
	exchange := mock.NewMockExchangeService(ctrl)

	services := &service.Services{
		Messages:    messages,
		Attachments: attachments,
		Exchange:    exchange,
		Expiration:  expiration.NewService(),
	}

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:  testSignKey,
			TokenIssuer:   testIssuer,
			TokenDuration: time.Hour,
			Version:       "1.2.3",
		},
		Upload: config.Upload{MaxFileSizeBytes: 1 << 20},
	}

	token, err := utils.GenerateJWTToken(testIssuer, testUserID, time.Hour, testSignKey)
	require.NoError(t, err)

	handler := NewHandler(services, cfg, logger.Nop())

	return &handlerFixture{
		router:      handler.Init(),
		messages:    messages,
		attachments: attachments,
		exchange:    exchange,
		token:       token.SignedString,
	}
}

func (f *handlerFixture) request(t *testing.T, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+f.token)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, payload any) *bytes.Reader {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestHandler_Auth_MissingHeader(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/keys/public", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Auth_MalformedHeader(t *testing.T) {
	f := newHandlerFixture(t)

	for _, header := range []string{"Bearer", "Bearer ", "no-scheme-token"} {
		req := httptest.NewRequest(http.MethodGet, "/api/keys/public", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), utils.ErrInvalidAuthorizationHeader.Error())
	}
}

func TestHandler_Auth_InvalidToken(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/keys/public", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Auth_WrongIssuer(t *testing.T) {
	f := newHandlerFixture(t)

	token, err := utils.GenerateJWTToken("other-issuer", testUserID, time.Hour, testSignKey)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/keys/public", nil)
	req.Header.Set("Authorization", "Bearer "+token.SignedString)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Version_NoAuthRequired(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestHandler_TraceID_Propagated(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}

func TestHandler_SendMessage(t *testing.T) {
	f := newHandlerFixture(t)

	sendReq := models.SendMessageRequest{
		Plaintext:  "note",
		IndexTerms: []string{"term"},
		TTLSeconds: 3600,
	}
	stored := models.Message{ID: "msg-1", RoomID: "room-12", SenderID: testUserID}

	f.messages.EXPECT().
		Send(gomock.Any(), "room-12", testUserID, sendReq).
		Return(stored, nil)

	rec := f.request(t, http.MethodPost, "/api/rooms/room-12/messages", jsonBody(t, sendReq))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "msg-1", got.ID)
}

func TestHandler_SendMessage_MalformedBody(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.request(t, http.MethodPost, "/api/rooms/room-12/messages", bytes.NewReader([]byte("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_SendMessage_DisallowedTTL(t *testing.T) {
	f := newHandlerFixture(t)

	f.messages.EXPECT().
		Send(gomock.Any(), "room-12", testUserID, gomock.Any()).
		Return(models.Message{}, expiration.ErrInvalidPolicy)

	rec := f.request(t, http.MethodPost, "/api/rooms/room-12/messages",
		jsonBody(t, models.SendMessageRequest{Plaintext: "note", TTLSeconds: 42}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ReadMessage(t *testing.T) {
	f := newHandlerFixture(t)

	f.messages.EXPECT().
		Read(gomock.Any(), "msg-1").
		Return(models.DecryptedMessage{ID: "msg-1", Plaintext: []byte("note")}, nil)

	rec := f.request(t, http.MethodGet, "/api/messages/msg-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.DecryptedMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []byte("note"), got.Plaintext)
}

func TestHandler_ReadMessage_Unavailable(t *testing.T) {
	f := newHandlerFixture(t)

	f.messages.EXPECT().
		Read(gomock.Any(), "msg-1").
		Return(models.DecryptedMessage{}, service.ErrMessageUnavailable)

	rec := f.request(t, http.MethodGet, "/api/messages/msg-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ListRoomMessages_Limit(t *testing.T) {
	f := newHandlerFixture(t)

	f.messages.EXPECT().
		ListRoom(gomock.Any(), "room-12", uint64(5)).
		Return([]models.DecryptedMessage{}, nil)

	rec := f.request(t, http.MethodGet, "/api/rooms/room-12/messages?limit=5", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_ListRoomMessages_BadLimit(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.request(t, http.MethodGet, "/api/rooms/room-12/messages?limit=lots", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_SearchMessages(t *testing.T) {
	f := newHandlerFixture(t)

	f.messages.EXPECT().
		Search(gomock.Any(), "room-12", "anxious").
		Return([]models.DecryptedMessage{{ID: "msg-1"}}, nil)

	rec := f.request(t, http.MethodPost, "/api/rooms/room-12/messages/search",
		jsonBody(t, models.SearchRequest{Term: "anxious"}))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.DecryptedMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
}

func TestHandler_MessageExpiration(t *testing.T) {
	f := newHandlerFixture(t)

	f.messages.EXPECT().
		ExpirationStatus(gomock.Any(), "msg-1").
		Return(models.ExpirationStatus{IsExpired: false, TimeRemainingMs: 1000, TimeRemainingText: "1s"}, nil)

	rec := f.request(t, http.MethodGet, "/api/messages/msg-1/expiration", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.ExpirationStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "1s", got.TimeRemainingText)
}

func TestHandler_ExpirationOptions(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.request(t, http.MethodGet, "/api/expiration/options", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []int64{0, 3600, 86400, 604800}, got)
}

func TestHandler_UploadAttachment(t *testing.T) {
	f := newHandlerFixture(t)

	content := []byte("%PDF-1.5 test")
	f.attachments.EXPECT().
		Upload(gomock.Any(), "room-12", testUserID, content).
		Return(models.Attachment{ID: "att-1", DetectedType: "application/pdf"}, nil)

	rec := f.request(t, http.MethodPost, "/api/rooms/room-12/attachments", bytes.NewReader(content))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Attachment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "att-1", got.ID)
}

func TestHandler_UploadAttachment_BodyOverCap(t *testing.T) {
	f := newHandlerFixture(t)

	// Over the configured cap: rejected before the service is reached.
	oversized := bytes.Repeat([]byte("a"), (1<<20)+16)

	rec := f.request(t, http.MethodPost, "/api/rooms/room-12/attachments", bytes.NewReader(oversized))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandler_UploadAttachment_InvalidType(t *testing.T) {
	f := newHandlerFixture(t)

	content := []byte("MZ executable")
	f.attachments.EXPECT().
		Upload(gomock.Any(), "room-12", testUserID, content).
		Return(models.Attachment{}, upload.ErrInvalidType)

	rec := f.request(t, http.MethodPost, "/api/rooms/room-12/attachments", bytes.NewReader(content))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandler_UploadAttachment_ScanUnavailable(t *testing.T) {
	f := newHandlerFixture(t)

	content := []byte("%PDF-1.5 test")
	f.attachments.EXPECT().
		Upload(gomock.Any(), "room-12", testUserID, content).
		Return(models.Attachment{}, upload.ErrScanFailed)

	rec := f.request(t, http.MethodPost, "/api/rooms/room-12/attachments", bytes.NewReader(content))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_DownloadAttachment(t *testing.T) {
	f := newHandlerFixture(t)

	attachment := models.Attachment{
		ID:           "att-1",
		StorageName:  "0198b3c2.pdf",
		DetectedType: "application/pdf",
	}
	f.attachments.EXPECT().
		Download(gomock.Any(), "att-1").
		Return(attachment, []byte("%PDF-1.5 test"), nil)

	rec := f.request(t, http.MethodGet, "/api/attachments/att-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "0198b3c2.pdf")
	assert.Equal(t, "%PDF-1.5 test", rec.Body.String())
}

func TestHandler_GetPublicKey(t *testing.T) {
	f := newHandlerFixture(t)

	f.exchange.EXPECT().
		PublicKey(gomock.Any(), testUserID).
		Return(models.PublicKeyExport{OwnerID: testUserID, DER: []byte{0x30, 0x82}}, nil)

	rec := f.request(t, http.MethodGet, "/api/keys/public", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.PublicKeyExport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testUserID, got.OwnerID)
}

func TestHandler_WrapRoomKey(t *testing.T) {
	f := newHandlerFixture(t)

	f.exchange.EXPECT().
		WrapRoomKey(gomock.Any(), "room-12", []byte{0x30, 0x82}).
		Return([]byte("wrapped-blob"), nil)

	rec := f.request(t, http.MethodPost, "/api/rooms/room-12/keys/wrap",
		jsonBody(t, models.WrapKeyRequest{RecipientID: 9, PublicKey: []byte{0x30, 0x82}}))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.WrappedRoomKey
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "room-12", got.RoomID)
	assert.Equal(t, int64(9), got.RecipientID)
	assert.Equal(t, []byte("wrapped-blob"), got.Wrapped)
}

func TestHandler_AcceptRoomKey(t *testing.T) {
	f := newHandlerFixture(t)

	f.exchange.EXPECT().
		AcceptRoomKey(gomock.Any(), "room-12", testUserID, []byte("wrapped-blob")).
		Return(nil)

	rec := f.request(t, http.MethodPost, "/api/rooms/room-12/keys/accept",
		jsonBody(t, models.AcceptKeyRequest{Wrapped: []byte("wrapped-blob")}))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_AcceptRoomKey_ExistingKeyWins(t *testing.T) {
	f := newHandlerFixture(t)

	f.exchange.EXPECT().
		AcceptRoomKey(gomock.Any(), "room-12", testUserID, gomock.Any()).
		Return(store.ErrAlreadyExists)

	rec := f.request(t, http.MethodPost, "/api/rooms/room-12/keys/accept",
		jsonBody(t, models.AcceptKeyRequest{Wrapped: []byte("wrapped-blob")}))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_RotateRoomKey(t *testing.T) {
	f := newHandlerFixture(t)

	f.exchange.EXPECT().
		RotateRoomKey(gomock.Any(), "room-12").
		Return(nil)

	rec := f.request(t, http.MethodPost, "/api/rooms/room-12/keys/rotate", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
