// Package assistant mantém a conversa com o usuário: registra o histórico,
// obtém a intenção do texto (digitado ou falado), executa o comando e,
// quando há voz disponível, lê a resposta em voz alta.
package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/hugohenrick/moneywise/pkg/chat"
	"github.com/hugohenrick/moneywise/pkg/logger"
	"github.com/hugohenrick/moneywise/pkg/mcp"
	"github.com/hugohenrick/moneywise/pkg/mcp/intent"
	"github.com/hugohenrick/moneywise/pkg/storage"
)

// DefaultLocale é o idioma usado no reconhecimento e na síntese de voz
const DefaultLocale = "pt-BR"

// MsgProcessingError é a resposta registrada quando o interpretador falha
const MsgProcessingError = "Desculpe, ocorreu um erro ao processar sua solicitação. Por favor, tente novamente."

var (
	ErrRequestInFlight = errors.New("já existe uma solicitação em andamento para esta sessão")
	ErrEmptyMessage    = errors.New("mensagem vazia")
)

// Session identifica a conversa de um usuário dentro de uma empresa
type Session struct {
	TenantID string `json:"tenant_id"`
	UserID   string `json:"user_id"`
}

func (s Session) key() string {
	return s.TenantID + "\x00" + s.UserID
}

// Executor executa intenções estruturadas. Implementado por *intent.Router.
type Executor interface {
	Execute(ctx context.Context, tenantID, action, parametersJSON string) *intent.ActionResult
}

// Reply é o resultado de uma interação
type Reply struct {
	UserMessage      *chat.Message          `json:"user_message,omitempty"`
	AssistantMessage *chat.Message          `json:"assistant_message"`
	Action           string                 `json:"action,omitempty"`
	Success          bool                   `json:"success"`
	NavigateTo       string                 `json:"navigate_to,omitempty"`
	Data             map[string]interface{} `json:"data,omitempty"`
	Notifications    []storage.Notification `json:"notifications,omitempty"`
}

// Assistant coordena interpretador, roteador, histórico e voz
type Assistant struct {
	source      mcp.IntentSource
	executor    Executor
	history     chat.Repository
	logger      logger.Logger
	events      *Events
	transcriber Transcriber
	synthesizer Synthesizer
	locale      string
	now         func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
	voices   map[string]*voice
}

// Option configura um Assistant
type Option func(*Assistant)

// WithTranscriber habilita a entrada por voz
func WithTranscriber(t Transcriber) Option {
	return func(a *Assistant) {
		a.transcriber = t
	}
}

// WithSynthesizer habilita a leitura das respostas em voz alta
func WithSynthesizer(s Synthesizer, locale string) Option {
	return func(a *Assistant) {
		a.synthesizer = s
		if locale != "" {
			a.locale = locale
		}
	}
}

// WithClock substitui o relógio usado no histórico
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) {
		a.now = now
	}
}

// NewAssistant cria uma nova instância do assistente
func NewAssistant(source mcp.IntentSource, executor Executor, history chat.Repository, log logger.Logger, opts ...Option) *Assistant {
	a := &Assistant{
		source:   source,
		executor: executor,
		history:  history,
		logger:   log,
		events:   NewEvents(),
		locale:   DefaultLocale,
		now:      time.Now,
		inFlight: make(map[string]struct{}),
		voices:   make(map[string]*voice),
	}

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Subscribe registra um assinante de eventos da conversa e da voz
func (a *Assistant) Subscribe(fn func(Event)) func() {
	return a.events.Subscribe(fn)
}

// SpeechAvailable informa se há reconhecimento de voz configurado
func (a *Assistant) SpeechAvailable() bool {
	return a.transcriber != nil
}

// SubmitText processa um comando digitado
func (a *Assistant) SubmitText(ctx context.Context, session Session, text string) (*Reply, error) {
	return a.submit(ctx, session, text, "text")
}

// SubmitTranscribedText processa um comando já transcrito da fala
func (a *Assistant) SubmitTranscribedText(ctx context.Context, session Session, text string) (*Reply, error) {
	return a.submit(ctx, session, text, "voice")
}

// SubmitAudio transcreve o áudio e processa o texto reconhecido. A sessão
// fica ocupada desde a captura até a resposta.
func (a *Assistant) SubmitAudio(ctx context.Context, session Session, audio []byte, mimeType string) (*Reply, error) {
	if !a.SpeechAvailable() {
		return nil, ErrSpeechUnavailable
	}

	release, err := a.acquire(session)
	if err != nil {
		return nil, err
	}
	defer release()

	v := a.holdVoice(session)
	text, err := v.recognition.Listen(ctx, session, audio, mimeType)
	a.dropVoice(session)
	if err != nil {
		return nil, err
	}
	return a.process(ctx, session, text, "voice"), nil
}

func (a *Assistant) submit(ctx context.Context, session Session, text, channel string) (*Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	release, err := a.acquire(session)
	if err != nil {
		return nil, err
	}
	defer release()

	return a.process(ctx, session, text, channel), nil
}

// process interpreta e executa o texto. Exige a sessão adquirida.
func (a *Assistant) process(ctx context.Context, session Session, text, channel string) *Reply {
	buf := storage.NewBuffer()
	ctx = storage.WithNotifier(ctx, buf)

	userMessage := a.record(ctx, session, chat.SenderUser, text)
	a.events.publish(Event{Type: EventUserMessage, Session: session, Text: text})

	a.logger.Info("Processando comando", "channel", channel, "tenant_id", session.TenantID, "user_id", session.UserID)

	raw, err := a.source.Interpret(ctx, text)
	if err != nil {
		a.logger.Error("Erro ao interpretar comando", "error", err, "source", a.source.Name(), "tenant_id", session.TenantID)
		reply := a.respond(ctx, session, &intent.ActionResult{Success: false, Message: MsgProcessingError}, buf)
		reply.UserMessage = userMessage
		return reply
	}

	result := a.executor.Execute(ctx, session.TenantID, raw.Action, raw.ParametersJSON())
	reply := a.respond(ctx, session, result, buf)
	reply.UserMessage = userMessage
	return reply
}

// Execute executa uma intenção já estruturada e registra a resposta no histórico
func (a *Assistant) Execute(ctx context.Context, session Session, action, parametersJSON string) (*Reply, error) {
	release, err := a.acquire(session)
	if err != nil {
		return nil, err
	}
	defer release()

	buf := storage.NewBuffer()
	ctx = storage.WithNotifier(ctx, buf)

	result := a.executor.Execute(ctx, session.TenantID, action, parametersJSON)
	return a.respond(ctx, session, result, buf), nil
}

// respond registra a resposta, publica os eventos e inicia a fala
func (a *Assistant) respond(ctx context.Context, session Session, result *intent.ActionResult, buf *storage.Buffer) *Reply {
	if result == nil {
		result = &intent.ActionResult{Success: false, Message: intent.MsgUnexpectedError}
	}

	assistantMessage := a.record(ctx, session, chat.SenderAssistant, result.Message)
	a.events.publish(Event{Type: EventAssistantMessage, Session: session, Text: result.Message})

	if result.NavigateTo != "" {
		a.events.publish(Event{Type: EventNavigate, Session: session, NavigateTo: result.NavigateTo})
	}

	notifications := buf.Notifications()
	for _, n := range notifications {
		a.events.publish(Event{Type: EventNotification, Session: session, Text: n.Message})
	}

	a.speak(session, result.Message)

	return &Reply{
		AssistantMessage: assistantMessage,
		Action:           result.Action,
		Success:          result.Success,
		NavigateTo:       result.NavigateTo,
		Data:             result.Data,
		Notifications:    notifications,
	}
}

// record grava a mensagem no histórico. Falhas de gravação não interrompem a conversa.
func (a *Assistant) record(ctx context.Context, session Session, sender chat.Sender, text string) *chat.Message {
	msg := chat.NewMessage(sender, text, a.now())
	if err := a.history.SaveMessage(ctx, session.TenantID, session.UserID, msg); err != nil {
		if errors.Is(err, storage.ErrNoTenant) {
			a.logger.Debug("Histórico não gravado: nenhuma empresa ativa")
		} else {
			a.logger.Warn("Erro ao gravar histórico", "error", err, "tenant_id", session.TenantID)
		}
	}
	return msg
}

// History retorna as últimas mensagens da sessão, da mais antiga para a mais nova
func (a *Assistant) History(ctx context.Context, session Session, limit int) ([]chat.Message, error) {
	return a.history.GetHistory(ctx, session.TenantID, session.UserID, limit)
}

// ClearHistory apaga o histórico da sessão
func (a *Assistant) ClearHistory(ctx context.Context, session Session) error {
	return a.history.DeleteHistory(ctx, session.TenantID, session.UserID)
}

// acquire garante uma única solicitação em andamento por sessão
func (a *Assistant) acquire(session Session) (func(), error) {
	key := session.key()

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, busy := a.inFlight[key]; busy {
		return nil, ErrRequestInFlight
	}
	a.inFlight[key] = struct{}{}

	return func() {
		a.mu.Lock()
		delete(a.inFlight, key)
		a.mu.Unlock()
	}, nil
}

// Close interrompe as falas em andamento. O interpretador é de quem o criou.
func (a *Assistant) Close() error {
	a.mu.Lock()
	speaking := make([]*Synthesis, 0, len(a.voices))
	for _, v := range a.voices {
		speaking = append(speaking, v.synthesis)
	}
	a.mu.Unlock()

	for _, s := range speaking {
		s.Cancel()
	}
	return nil
}
