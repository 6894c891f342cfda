package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/moneywise/internal/adapter/api/dto"
	"github.com/hugohenrick/moneywise/internal/adapter/repository"
	"github.com/hugohenrick/moneywise/pkg/assistant"
	"github.com/hugohenrick/moneywise/pkg/logger"
	"github.com/hugohenrick/moneywise/pkg/mcp"
	"github.com/hugohenrick/moneywise/pkg/mcp/intent"
	"github.com/hugohenrick/moneywise/pkg/storage"
	"github.com/hugohenrick/moneywise/pkg/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type transcriberFunc func(ctx context.Context, audio []byte, mimeType string) (string, error)

func (f transcriberFunc) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	return f(ctx, audio, mimeType)
}

func newTestServer(t *testing.T, opts ...assistant.Option) *gin.Engine {
	t.Helper()
	kv := storage.NewMemoryKV(0)
	log := logger.NewNopLogger()

	router := intent.NewRouter(
		repository.NewCustomerRepository(kv, nil, log),
		repository.NewProductRepository(kv, nil, log),
		repository.NewCreditRepository(kv, nil, log),
		repository.NewTransactionRepository(kv, nil, log),
		log,
	)
	a := assistant.NewAssistant(mcp.NewRuleSource(), router, repository.NewChatRepository(kv, nil, log), log, opts...)
	c := NewAssistantController(a, "rules", "memory", log)

	engine := gin.New()
	v1 := engine.Group("/api/v1")
	v1.GET("/health", c.Health)
	group := v1.Group("/assistant", tenant.Middleware(nil))
	group.POST("/messages", c.SendMessage)
	group.POST("/voice", c.SendVoice)
	group.POST("/commands", c.ExecuteCommand)
	group.GET("/history", tenant.RequireTenant(), c.GetHistory)
	group.DELETE("/history", tenant.RequireTenant(), c.DeleteHistory)
	return engine
}

func doJSON(engine *gin.Engine, method, path, body, tenantID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if tenantID != "" {
		req.Header.Set("tenant-id", tenantID)
	}
	req.Header.Set("user-id", "ana")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeReply(t *testing.T, w *httptest.ResponseRecorder) dto.ReplyResponse {
	t.Helper()
	var reply dto.ReplyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	return reply
}

func TestHealth(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(engine, http.MethodGet, "/api/v1/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","intent_source":"rules","storage_driver":"memory","speech_available":false}`, w.Body.String())
}

func TestSendMessage(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(engine, http.MethodPost, "/api/v1/assistant/messages",
		`{"text":"Adicionar fiado de 50 para Maria"}`, "Padaria")
	require.Equal(t, http.StatusOK, w.Code)

	reply := decodeReply(t, w)
	assert.True(t, reply.Success)
	assert.Equal(t, intent.PathCreditEntries, reply.NavigateTo)
	assert.Equal(t, "Adicionar fiado de 50 para Maria", reply.UserMessage.Text)

	w = doJSON(engine, http.MethodGet, "/api/v1/assistant/history?limit=10", "", "Padaria")
	require.Equal(t, http.StatusOK, w.Code)

	var history dto.HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Equal(t, 2, history.Count)
	assert.Equal(t, "Adicionar fiado de 50 para Maria", history.Messages[0].Text)
}

func TestSendMessage_WithoutTenant(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(engine, http.MethodPost, "/api/v1/assistant/messages", `{"text":"Ir para clientes"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	reply := decodeReply(t, w)
	assert.False(t, reply.Success)
	assert.Equal(t, intent.MsgNoTenant, reply.AssistantMessage.Text)

	w = doJSON(engine, http.MethodGet, "/api/v1/assistant/history", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMessage_InvalidBody(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(engine, http.MethodPost, "/api/v1/assistant/messages", `{}`, "Padaria")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(engine, http.MethodPost, "/api/v1/assistant/messages", `{"text":"   "}`, "Padaria")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteCommand(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(engine, http.MethodPost, "/api/v1/assistant/commands",
		`{"action":"initiateAddCustomer","parameters":{"customerName":"João Silva","phone":"11912345678"}}`, "Padaria")
	require.Equal(t, http.StatusOK, w.Code)

	reply := decodeReply(t, w)
	assert.True(t, reply.Success)
	assert.Equal(t, intent.PathCustomers, reply.NavigateTo)
	assert.Nil(t, reply.UserMessage)
	assert.NotEmpty(t, reply.Data["customer_id"])

	w = doJSON(engine, http.MethodPost, "/api/v1/assistant/commands",
		`{"action":"initiateAddCustomer","parameters":null}`, "Padaria")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decodeReply(t, w).Success)
}

func TestSendVoice(t *testing.T) {
	t.Run("transcrição em JSON", func(t *testing.T) {
		engine := newTestServer(t)

		w := doJSON(engine, http.MethodPost, "/api/v1/assistant/voice", `{"transcript":"Ir para produtos"}`, "Padaria")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, intent.PathProducts, decodeReply(t, w).NavigateTo)
	})

	t.Run("áudio sem reconhecimento de voz", func(t *testing.T) {
		engine := newTestServer(t)

		w := postAudio(t, engine, []byte("audio"))
		assert.Equal(t, http.StatusNotImplemented, w.Code)
	})

	t.Run("áudio com reconhecimento de voz", func(t *testing.T) {
		transcriber := transcriberFunc(func(_ context.Context, audio []byte, _ string) (string, error) {
			assert.Equal(t, []byte("audio"), audio)
			return "Ir para o caderno", nil
		})
		engine := newTestServer(t, assistant.WithTranscriber(transcriber))

		w := postAudio(t, engine, []byte("audio"))
		require.Equal(t, http.StatusOK, w.Code)

		reply := decodeReply(t, w)
		assert.Equal(t, intent.PathNotebook, reply.NavigateTo)
		assert.Equal(t, "Ir para o caderno", reply.UserMessage.Text)
	})
}

func TestDeleteHistory(t *testing.T) {
	engine := newTestServer(t)

	doJSON(engine, http.MethodPost, "/api/v1/assistant/messages", `{"text":"Ir para clientes"}`, "Padaria")

	w := doJSON(engine, http.MethodDelete, "/api/v1/assistant/history", "", "Padaria")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(engine, http.MethodGet, "/api/v1/assistant/history", "", "Padaria")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"messages":[],"count":0}`, w.Body.String())
}

func postAudio(t *testing.T, engine *gin.Engine, audio []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("audio", "fala.webm")
	require.NoError(t, err)
	_, err = part.Write(audio)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/voice", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("tenant-id", "Padaria")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}
