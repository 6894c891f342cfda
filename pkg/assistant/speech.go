package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	ErrSpeechUnavailable  = errors.New("reconhecimento de voz indisponível")
	ErrAlreadyListening   = errors.New("reconhecimento de voz já em andamento")
	ErrRecognitionStopped = errors.New("reconhecimento de voz interrompido")
	ErrNoSpeech           = errors.New("nenhuma fala reconhecida")
)

// Transcriber converte um trecho de áudio em texto
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// Synthesizer reproduz um texto em voz alta. Deve retornar quando a fala terminar
// ou quando ctx for cancelado.
type Synthesizer interface {
	Speak(ctx context.Context, text, locale string) error
}

// RecognitionState é o estado do reconhecimento de voz
type RecognitionState string

const (
	RecognitionIdle      RecognitionState = "idle"
	RecognitionListening RecognitionState = "listening"
)

// Recognition controla a captura de voz: uma fala por chamada de Listen.
type Recognition struct {
	transcriber Transcriber
	events      *Events

	mu     sync.Mutex
	state  RecognitionState
	cancel context.CancelFunc
}

// NewRecognition cria o controle de reconhecimento. transcriber pode ser nil.
func NewRecognition(transcriber Transcriber, events *Events) *Recognition {
	return &Recognition{transcriber: transcriber, events: events, state: RecognitionIdle}
}

// Available informa se há reconhecimento de voz
func (r *Recognition) Available() bool {
	return r != nil && r.transcriber != nil
}

// State retorna o estado atual
func (r *Recognition) State() RecognitionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Listen transcreve uma fala. Ao final, com sucesso ou erro, o estado volta a idle.
func (r *Recognition) Listen(ctx context.Context, session Session, audio []byte, mimeType string) (string, error) {
	if !r.Available() {
		return "", ErrSpeechUnavailable
	}

	r.mu.Lock()
	if r.state == RecognitionListening {
		r.mu.Unlock()
		return "", ErrAlreadyListening
	}
	ctx, cancel := context.WithCancel(ctx)
	r.state = RecognitionListening
	r.cancel = cancel
	r.mu.Unlock()

	r.events.publish(Event{Type: EventListeningStarted, Session: session})

	text, err := r.transcriber.Transcribe(ctx, audio, mimeType)
	stopped := errors.Is(ctx.Err(), context.Canceled)

	r.mu.Lock()
	r.state = RecognitionIdle
	r.cancel = nil
	r.mu.Unlock()
	cancel()

	text = strings.TrimSpace(text)
	switch {
	case stopped:
		r.events.publish(Event{Type: EventListeningStopped, Session: session})
		return "", ErrRecognitionStopped
	case err != nil:
		r.events.publish(Event{Type: EventRecognitionError, Session: session, Err: err})
		return "", fmt.Errorf("erro ao transcrever áudio: %w", err)
	case text == "":
		r.events.publish(Event{Type: EventRecognitionError, Session: session, Err: ErrNoSpeech})
		return "", ErrNoSpeech
	}

	r.events.publish(Event{Type: EventRecognized, Session: session, Text: text})
	return text, nil
}

// Stop interrompe a captura em andamento, se houver
func (r *Recognition) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
}

// SynthesisState é o estado da fala
type SynthesisState string

const (
	SynthesisIdle     SynthesisState = "idle"
	SynthesisSpeaking SynthesisState = "speaking"
)

// Synthesis controla a reprodução de respostas em voz alta. Uma nova fala
// cancela a anterior.
type Synthesis struct {
	synthesizer Synthesizer
	locale      string
	events      *Events

	mu      sync.Mutex
	state   SynthesisState
	current uint64
	cancel  context.CancelFunc
	session Session
}

// NewSynthesis cria o controle de fala. synthesizer pode ser nil: o assistente
// funciona só com texto.
func NewSynthesis(synthesizer Synthesizer, locale string, events *Events) *Synthesis {
	if locale == "" {
		locale = DefaultLocale
	}
	return &Synthesis{synthesizer: synthesizer, locale: locale, events: events, state: SynthesisIdle}
}

// Available informa se há síntese de voz
func (s *Synthesis) Available() bool {
	return s != nil && s.synthesizer != nil
}

// State retorna o estado atual
func (s *Synthesis) State() SynthesisState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Speak inicia a fala em segundo plano e devolve um canal fechado quando ela termina.
// Sem sintetizador, o canal já vem fechado.
func (s *Synthesis) Speak(session Session, text string) <-chan struct{} {
	done := make(chan struct{})
	if !s.Available() || strings.TrimSpace(text) == "" {
		close(done)
		return done
	}

	s.mu.Lock()
	previous, wasSpeaking := s.cancelLocked()
	ctx, cancel := context.WithCancel(context.Background())
	s.current++
	id := s.current
	s.cancel = cancel
	s.session = session
	s.state = SynthesisSpeaking
	s.mu.Unlock()

	if wasSpeaking {
		s.events.publish(Event{Type: EventSpeakingCancelled, Session: previous})
	}
	s.events.publish(Event{Type: EventSpeakingStarted, Session: session, Text: text})

	go func() {
		defer close(done)
		err := s.synthesizer.Speak(ctx, text, s.locale)
		cancel()

		s.mu.Lock()
		if id != s.current {
			// cancelada ou substituída; o cancelamento já foi publicado
			s.mu.Unlock()
			return
		}
		s.state = SynthesisIdle
		s.cancel = nil
		s.mu.Unlock()

		if err != nil {
			s.events.publish(Event{Type: EventSpeakingError, Session: session, Err: err})
			return
		}
		s.events.publish(Event{Type: EventSpeakingEnded, Session: session})
	}()

	return done
}

// Cancel interrompe a fala atual, se houver
func (s *Synthesis) Cancel() {
	if s == nil {
		return
	}
	s.mu.Lock()
	session, wasSpeaking := s.cancelLocked()
	s.mu.Unlock()

	if wasSpeaking {
		s.events.publish(Event{Type: EventSpeakingCancelled, Session: session})
	}
}

// cancelLocked exige s.mu travado. Retorna a sessão da fala interrompida.
func (s *Synthesis) cancelLocked() (Session, bool) {
	if s.cancel == nil {
		return Session{}, false
	}
	s.cancel()
	s.cancel = nil
	s.current++
	s.state = SynthesisIdle
	return s.session, true
}
