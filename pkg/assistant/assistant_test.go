package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hugohenrick/moneywise/internal/adapter/repository"
	"github.com/hugohenrick/moneywise/pkg/chat"
	"github.com/hugohenrick/moneywise/pkg/logger"
	"github.com/hugohenrick/moneywise/pkg/mcp"
	"github.com/hugohenrick/moneywise/pkg/mcp/intent"
	"github.com/hugohenrick/moneywise/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var session = Session{TenantID: "Padaria Pão Quente", UserID: "ana"}

type testEnv struct {
	assistant *Assistant
	kv        *storage.MemoryKV
	history   chat.Repository
}

func newTestEnv(t *testing.T, source mcp.IntentSource, quota int, opts ...Option) *testEnv {
	t.Helper()
	kv := storage.NewMemoryKV(quota)
	log := logger.NewNopLogger()

	router := intent.NewRouter(
		repository.NewCustomerRepository(kv, nil, log),
		repository.NewProductRepository(kv, nil, log),
		repository.NewCreditRepository(kv, nil, log),
		repository.NewTransactionRepository(kv, nil, log),
		log,
	)
	history := repository.NewChatRepository(kv, nil, log)

	return &testEnv{
		assistant: NewAssistant(source, router, history, log, opts...),
		kv:        kv,
		history:   history,
	}
}

func TestSubmitText_AppendsUserThenAssistant(t *testing.T) {
	env := newTestEnv(t, mcp.NewRuleSource(), 0)
	ctx := context.Background()

	var events []EventType
	env.assistant.Subscribe(func(ev Event) { events = append(events, ev.Type) })

	reply, err := env.assistant.SubmitText(ctx, session, "Adicionar cliente João Silva, telefone (11) 91234-5678")
	require.NoError(t, err)

	assert.True(t, reply.Success)
	assert.Equal(t, intent.PathCustomers, reply.NavigateTo)
	assert.Equal(t, intent.ActionAddCustomer, reply.Action)
	require.NotNil(t, reply.UserMessage)
	assert.Equal(t, chat.SenderUser, reply.UserMessage.Sender)
	assert.Equal(t, chat.SenderAssistant, reply.AssistantMessage.Sender)

	history, err := env.assistant.History(ctx, session, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, chat.SenderUser, history[0].Sender)
	assert.Equal(t, "Adicionar cliente João Silva, telefone (11) 91234-5678", history[0].Text)
	assert.Equal(t, chat.SenderAssistant, history[1].Sender)
	assert.Equal(t, reply.AssistantMessage.Text, history[1].Text)

	assert.Equal(t, []EventType{EventUserMessage, EventAssistantMessage, EventNavigate}, events)
}

func TestSubmitText_KeepsOrderAcrossCommands(t *testing.T) {
	env := newTestEnv(t, mcp.NewRuleSource(), 0)
	ctx := context.Background()

	commands := []string{"Ir para clientes", "Qual o faturamento total?", "bom dia"}
	for _, text := range commands {
		_, err := env.assistant.SubmitText(ctx, session, text)
		require.NoError(t, err)
	}

	history, err := env.assistant.History(ctx, session, 0)
	require.NoError(t, err)
	require.Len(t, history, 6)
	for i, text := range commands {
		assert.Equal(t, text, history[2*i].Text)
		assert.Equal(t, chat.SenderAssistant, history[2*i+1].Sender)
	}
	assert.Equal(t, intent.MsgUnknownCommand, history[5].Text)
}

func TestSubmitText_SourceFailure(t *testing.T) {
	failing := mcp.IntentSourceFunc(func(context.Context, string) (*mcp.RawIntent, error) {
		return nil, errors.New("serviço indisponível")
	})
	env := newTestEnv(t, failing, 0)

	reply, err := env.assistant.SubmitText(context.Background(), session, "Ir para clientes")
	require.NoError(t, err)

	assert.False(t, reply.Success)
	assert.Equal(t, MsgProcessingError, reply.AssistantMessage.Text)
	assert.Empty(t, reply.NavigateTo)

	history, err := env.assistant.History(context.Background(), session, 0)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestSubmitText_EmptyMessage(t *testing.T) {
	env := newTestEnv(t, mcp.NewRuleSource(), 0)

	_, err := env.assistant.SubmitText(context.Background(), session, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestSubmitText_NoTenant(t *testing.T) {
	env := newTestEnv(t, mcp.NewRuleSource(), 0)

	reply, err := env.assistant.SubmitText(context.Background(), Session{UserID: "ana"}, "Ir para clientes")
	require.NoError(t, err)

	assert.False(t, reply.Success)
	assert.Equal(t, intent.MsgNoTenant, reply.AssistantMessage.Text)
	assert.Equal(t, 0, env.kv.Len())
}

func TestSubmitText_RejectsConcurrentRequest(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	blocking := mcp.IntentSourceFunc(func(ctx context.Context, text string) (*mcp.RawIntent, error) {
		close(started)
		<-release
		return &mcp.RawIntent{Action: intent.ActionNavigateToDashboard}, nil
	})
	env := newTestEnv(t, blocking, 0)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := env.assistant.SubmitText(context.Background(), session, "Ir para o painel")
		assert.NoError(t, err)
	}()

	<-started
	_, err := env.assistant.SubmitText(context.Background(), session, "Ir para clientes")
	assert.ErrorIs(t, err, ErrRequestInFlight)

	// outra sessão não é bloqueada pela primeira
	other := Session{TenantID: session.TenantID, UserID: "bruno"}
	_, err = env.assistant.Execute(context.Background(), other, intent.ActionNavigateToCustomers, "")
	assert.NoError(t, err)

	close(release)
	wg.Wait()

	_, err = env.assistant.Execute(context.Background(), session, intent.ActionNavigateToCustomers, "")
	assert.NoError(t, err)
}

func TestSubmitText_ReturnsSaveNotifications(t *testing.T) {
	env := newTestEnv(t, mcp.NewRuleSource(), 400)

	reply, err := env.assistant.SubmitText(context.Background(), session,
		"Cadastrar produto Farinha de trigo tipo 1 pacote de cinco quilos, código FAR5, preço 22,50, categoria mercearia, estoque 40")
	require.NoError(t, err)

	assert.False(t, reply.Success)
	assert.Equal(t, intent.PathProducts, reply.NavigateTo)
	require.NotEmpty(t, reply.Notifications)
	assert.Equal(t, storage.KindSaveError, reply.Notifications[0].Kind)
	assert.Equal(t, "produtos", reply.Notifications[0].Entity)
}

func TestExecute_StructuredIntent(t *testing.T) {
	env := newTestEnv(t, mcp.NewRuleSource(), 0)

	reply, err := env.assistant.Execute(context.Background(), session, intent.ActionAddCreditEntry, `{"customerName":"Maria","amount":50}`)
	require.NoError(t, err)

	assert.True(t, reply.Success)
	assert.Nil(t, reply.UserMessage)
	assert.Contains(t, reply.AssistantMessage.Text, "R$ 50.00")
	assert.Equal(t, intent.PathCreditEntries, reply.NavigateTo)
}

func TestClearHistory(t *testing.T) {
	env := newTestEnv(t, mcp.NewRuleSource(), 0)
	ctx := context.Background()

	_, err := env.assistant.SubmitText(ctx, session, "Ir para clientes")
	require.NoError(t, err)

	require.NoError(t, env.assistant.ClearHistory(ctx, session))

	history, err := env.assistant.History(ctx, session, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSubmitAudio(t *testing.T) {
	t.Run("sem reconhecimento de voz", func(t *testing.T) {
		env := newTestEnv(t, mcp.NewRuleSource(), 0)

		assert.False(t, env.assistant.SpeechAvailable())
		_, err := env.assistant.SubmitAudio(context.Background(), session, []byte("audio"), "audio/webm")
		assert.ErrorIs(t, err, ErrSpeechUnavailable)
	})

	t.Run("com reconhecimento de voz", func(t *testing.T) {
		transcriber := transcriberFunc(func(context.Context, []byte, string) (string, error) {
			return " Ir para fiados ", nil
		})
		env := newTestEnv(t, mcp.NewRuleSource(), 0, WithTranscriber(transcriber))

		reply, err := env.assistant.SubmitAudio(context.Background(), session, []byte("audio"), "audio/webm")
		require.NoError(t, err)
		assert.Equal(t, "Ir para fiados", reply.UserMessage.Text)
		assert.Equal(t, intent.PathCreditEntries, reply.NavigateTo)
	})
}

func TestSubmitText_SpeaksReply(t *testing.T) {
	spoken := make(chan string, 1)
	synth := synthesizerFunc(func(ctx context.Context, text, locale string) error {
		assert.Equal(t, DefaultLocale, locale)
		spoken <- text
		return nil
	})
	env := newTestEnv(t, mcp.NewRuleSource(), 0, WithSynthesizer(synth, ""))

	reply, err := env.assistant.SubmitText(context.Background(), session, "Ir para clientes")
	require.NoError(t, err)

	select {
	case text := <-spoken:
		assert.Equal(t, reply.AssistantMessage.Text, text)
	case <-time.After(time.Second):
		t.Fatal("resposta não foi falada")
	}
}

func TestSubmitAudio_SessionsListenIndependently(t *testing.T) {
	listening := make(chan string, 2)
	release := make(chan struct{})
	transcriber := transcriberFunc(func(ctx context.Context, audio []byte, _ string) (string, error) {
		listening <- string(audio)
		select {
		case <-release:
			return "Ir para clientes", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	})
	env := newTestEnv(t, mcp.NewRuleSource(), 0, WithTranscriber(transcriber))
	ctx := context.Background()

	padaria := Session{TenantID: "Padaria", UserID: "ana"}
	acougue := Session{TenantID: "Açougue", UserID: "ana"}

	var wg sync.WaitGroup
	for _, s := range []Session{padaria, acougue} {
		wg.Add(1)
		go func(s Session) {
			defer wg.Done()
			reply, err := env.assistant.SubmitAudio(ctx, s, []byte(s.TenantID), "audio/webm")
			if assert.NoError(t, err) {
				assert.Equal(t, intent.PathCustomers, reply.NavigateTo)
			}
		}(s)
	}

	// as duas empresas estão ouvindo ao mesmo tempo
	<-listening
	<-listening
	assert.True(t, env.assistant.Listening(padaria))
	assert.True(t, env.assistant.Listening(acougue))

	// a mesma sessão continua limitada a uma solicitação
	_, err := env.assistant.SubmitAudio(ctx, padaria, []byte("de novo"), "audio/webm")
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(release)
	wg.Wait()
	assert.False(t, env.assistant.Listening(padaria))
	assert.False(t, env.assistant.Listening(acougue))
}

func TestSubmitAudio_StopListening(t *testing.T) {
	listening := make(chan struct{})
	transcriber := transcriberFunc(func(ctx context.Context, _ []byte, _ string) (string, error) {
		close(listening)
		<-ctx.Done()
		return "", ctx.Err()
	})
	env := newTestEnv(t, mcp.NewRuleSource(), 0, WithTranscriber(transcriber))

	errCh := make(chan error, 1)
	go func() {
		_, err := env.assistant.SubmitAudio(context.Background(), session, []byte("audio"), "audio/webm")
		errCh <- err
	}()

	<-listening
	env.assistant.StopListening(Session{TenantID: "Outra", UserID: "ana"})
	assert.True(t, env.assistant.Listening(session))

	env.assistant.StopListening(session)
	assert.ErrorIs(t, <-errCh, ErrRecognitionStopped)
}

func TestSpeech_SessionsDoNotCancelEachOther(t *testing.T) {
	started := make(chan string, 2)
	synth := synthesizerFunc(func(ctx context.Context, text, _ string) error {
		started <- text
		<-ctx.Done()
		return ctx.Err()
	})
	env := newTestEnv(t, mcp.NewRuleSource(), 0, WithSynthesizer(synth, ""))
	ctx := context.Background()

	padaria := Session{TenantID: "Padaria", UserID: "ana"}
	acougue := Session{TenantID: "Açougue", UserID: "ana"}

	_, err := env.assistant.Execute(ctx, padaria, intent.ActionNavigateToCustomers, "")
	require.NoError(t, err)
	<-started
	_, err = env.assistant.Execute(ctx, acougue, intent.ActionNavigateToProducts, "")
	require.NoError(t, err)
	<-started

	assert.True(t, env.assistant.Speaking(padaria))
	assert.True(t, env.assistant.Speaking(acougue))

	env.assistant.CancelSpeech(padaria)
	assert.False(t, env.assistant.Speaking(padaria))
	assert.True(t, env.assistant.Speaking(acougue))

	require.NoError(t, env.assistant.Close())
	assert.False(t, env.assistant.Speaking(acougue))
}
