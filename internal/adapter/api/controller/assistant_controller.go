package controller

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/moneywise/internal/adapter/api/dto"
	"github.com/hugohenrick/moneywise/pkg/assistant"
	"github.com/hugohenrick/moneywise/pkg/chat"
	"github.com/hugohenrick/moneywise/pkg/logger"
	"github.com/hugohenrick/moneywise/pkg/tenant"
)

// MaxAudioBytes limita o tamanho do áudio enviado ao endpoint de voz
const MaxAudioBytes = 10 << 20

// AssistantService define as operações do assistente usadas pela API
type AssistantService interface {
	SubmitText(ctx context.Context, session assistant.Session, text string) (*assistant.Reply, error)
	SubmitTranscribedText(ctx context.Context, session assistant.Session, text string) (*assistant.Reply, error)
	SubmitAudio(ctx context.Context, session assistant.Session, audio []byte, mimeType string) (*assistant.Reply, error)
	Execute(ctx context.Context, session assistant.Session, action, parametersJSON string) (*assistant.Reply, error)
	History(ctx context.Context, session assistant.Session, limit int) ([]chat.Message, error)
	ClearHistory(ctx context.Context, session assistant.Session) error
	SpeechAvailable() bool
}

// AssistantController gerencia as requisições do assistente
type AssistantController struct {
	assistant     AssistantService
	intentSource  string
	storageDriver string
	logger        logger.Logger
}

// NewAssistantController cria uma nova instância de AssistantController
func NewAssistantController(assistant AssistantService, intentSource, storageDriver string, logger logger.Logger) *AssistantController {
	return &AssistantController{
		assistant:     assistant,
		intentSource:  intentSource,
		storageDriver: storageDriver,
		logger:        logger,
	}
}

// Health verifica o estado do serviço
// @Summary Health check
// @Description Retorna o estado do serviço e os recursos disponíveis
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *AssistantController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:          "ok",
		IntentSource:    c.intentSource,
		StorageDriver:   c.storageDriver,
		SpeechAvailable: c.assistant.SpeechAvailable(),
	})
}

// SendMessage processa um comando digitado
// @Summary Enviar mensagem
// @Description Interpreta o comando, executa a ação e registra a conversa no histórico
// @Tags assistant
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param tenant-id header string false "Empresa (quando não há token)"
// @Param user-id header string false "Usuário"
// @Param message body dto.MessageRequest true "Comando"
// @Success 200 {object} dto.ReplyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assistant/messages [post]
func (c *AssistantController) SendMessage(ctx *gin.Context) {
	var req dto.MessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	reply, err := c.assistant.SubmitText(ctx.Request.Context(), session(ctx), req.Text)
	c.respond(ctx, reply, err)
}

// SendVoice processa um comando falado
// @Summary Enviar comando de voz
// @Description Recebe o áudio (campo multipart "audio") ou a transcrição já pronta em JSON
// @Tags assistant
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param tenant-id header string false "Empresa (quando não há token)"
// @Param user-id header string false "Usuário"
// @Param audio formData file false "Áudio gravado"
// @Param transcript body dto.VoiceRequest false "Transcrição"
// @Success 200 {object} dto.ReplyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 501 {object} dto.ErrorResponse
// @Router /assistant/voice [post]
func (c *AssistantController) SendVoice(ctx *gin.Context) {
	if strings.HasPrefix(ctx.ContentType(), gin.MIMEJSON) {
		var req dto.VoiceRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
			return
		}

		reply, err := c.assistant.SubmitTranscribedText(ctx.Request.Context(), session(ctx), req.Transcript)
		c.respond(ctx, reply, err)
		return
	}

	if !c.assistant.SpeechAvailable() {
		ctx.JSON(http.StatusNotImplemented, dto.NewErrorResponse(
			http.StatusNotImplemented,
			"reconhecimento de voz indisponível",
			"envie a transcrição em JSON no campo 'transcript'",
		))
		return
	}

	file, err := ctx.FormFile("audio")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "áudio não enviado", err.Error()))
		return
	}
	if file.Size > MaxAudioBytes {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "áudio muito grande", strconv.Itoa(MaxAudioBytes)+" bytes no máximo"))
		return
	}

	f, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao ler áudio", err.Error()))
		return
	}
	defer f.Close()

	audio, err := io.ReadAll(io.LimitReader(f, MaxAudioBytes))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao ler áudio", err.Error()))
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "audio/webm"
	}

	reply, err := c.assistant.SubmitAudio(ctx.Request.Context(), session(ctx), audio, mimeType)
	c.respond(ctx, reply, err)
}

// ExecuteCommand executa uma intenção já estruturada
// @Summary Executar comando estruturado
// @Description Executa a ação informada com os parâmetros em JSON, sem interpretar texto
// @Tags assistant
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param tenant-id header string false "Empresa (quando não há token)"
// @Param user-id header string false "Usuário"
// @Param command body dto.CommandRequest true "Intenção"
// @Success 200 {object} dto.ReplyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /assistant/commands [post]
func (c *AssistantController) ExecuteCommand(ctx *gin.Context) {
	var req dto.CommandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	reply, err := c.assistant.Execute(ctx.Request.Context(), session(ctx), req.Action, req.ParametersJSON())
	c.respond(ctx, reply, err)
}

// GetHistory retorna o histórico da conversa
// @Summary Histórico da conversa
// @Description Retorna as últimas mensagens, da mais antiga para a mais nova
// @Tags assistant
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param tenant-id header string false "Empresa (quando não há token)"
// @Param user-id header string false "Usuário"
// @Param limit query int false "Quantidade de mensagens" default(50)
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assistant/history [get]
func (c *AssistantController) GetHistory(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	messages, err := c.assistant.History(ctx.Request.Context(), session(ctx), dto.HistoryLimit(limit))
	if err != nil {
		c.logger.Error("Erro ao buscar histórico", "error", err, "tenant_id", tenant.GetTenantID(ctx))
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar histórico", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewHistoryResponse(messages))
}

// DeleteHistory apaga o histórico da conversa
// @Summary Apagar histórico
// @Description Remove todas as mensagens da conversa do usuário
// @Tags assistant
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param tenant-id header string false "Empresa (quando não há token)"
// @Param user-id header string false "Usuário"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assistant/history [delete]
func (c *AssistantController) DeleteHistory(ctx *gin.Context) {
	if err := c.assistant.ClearHistory(ctx.Request.Context(), session(ctx)); err != nil {
		c.logger.Error("Erro ao apagar histórico", "error", err, "tenant_id", tenant.GetTenantID(ctx))
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao apagar histórico", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Histórico apagado com sucesso", nil))
}

// respond traduz o resultado do assistente para a resposta HTTP
func (c *AssistantController) respond(ctx *gin.Context, reply *assistant.Reply, err error) {
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, dto.NewReplyResponse(reply))
	case errors.Is(err, assistant.ErrEmptyMessage), errors.Is(err, assistant.ErrNoSpeech):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "mensagem vazia", err.Error()))
	case errors.Is(err, assistant.ErrRequestInFlight), errors.Is(err, assistant.ErrAlreadyListening):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "aguarde a resposta anterior", err.Error()))
	case errors.Is(err, assistant.ErrSpeechUnavailable):
		ctx.JSON(http.StatusNotImplemented, dto.NewErrorResponse(http.StatusNotImplemented, "reconhecimento de voz indisponível", err.Error()))
	default:
		c.logger.Error("Erro ao processar solicitação do assistente", "error", err, "tenant_id", tenant.GetTenantID(ctx))
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao processar solicitação", ""))
	}
}

func session(ctx *gin.Context) assistant.Session {
	return assistant.Session{
		TenantID: tenant.GetTenantID(ctx),
		UserID:   tenant.GetUserID(ctx),
	}
}
