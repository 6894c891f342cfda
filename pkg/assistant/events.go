package assistant

import (
	"sync"
	"time"
)

// EventType identifica o que aconteceu na conversa ou na fala
type EventType string

const (
	EventUserMessage      EventType = "user_message"
	EventAssistantMessage EventType = "assistant_message"
	EventNavigate         EventType = "navigate"
	EventNotification     EventType = "notification"

	EventListeningStarted EventType = "listening_started"
	EventRecognized       EventType = "recognized"
	EventRecognitionError EventType = "recognition_error"
	EventListeningStopped EventType = "listening_stopped"

	EventSpeakingStarted   EventType = "speaking_started"
	EventSpeakingEnded     EventType = "speaking_ended"
	EventSpeakingCancelled EventType = "speaking_cancelled"
	EventSpeakingError     EventType = "speaking_error"
)

// Event é entregue aos assinantes na ordem em que ocorreu
type Event struct {
	Type       EventType
	Session    Session
	Text       string
	NavigateTo string
	Err        error
	Time       time.Time
}

// Events distribui eventos para os assinantes registrados
type Events struct {
	mu          sync.RWMutex
	nextID      int
	subscribers map[int]func(Event)
}

// NewEvents cria uma nova instância de Events
func NewEvents() *Events {
	return &Events{subscribers: make(map[int]func(Event))}
}

// Subscribe registra um assinante e devolve a função que cancela a assinatura
func (e *Events) Subscribe(fn func(Event)) func() {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.subscribers[id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.subscribers, id)
		e.mu.Unlock()
	}
}

func (e *Events) publish(ev Event) {
	if e == nil {
		return
	}
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}

	e.mu.RLock()
	subscribers := make([]func(Event), 0, len(e.subscribers))
	for _, fn := range e.subscribers {
		subscribers = append(subscribers, fn)
	}
	e.mu.RUnlock()

	for _, fn := range subscribers {
		fn(ev)
	}
}
