package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// ZeroLogger implementa Logger sobre o zerolog
type ZeroLogger struct {
	log zerolog.Logger
}

// NewLogger cria uma nova instância de Logger.
// Em desenvolvimento a saída é legível no console, em produção é JSON.
func NewLogger(env string) Logger {
	var out io.Writer = os.Stderr
	if env != "production" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(out, zerolog.DebugLevel)
}

// NewWithWriter cria um Logger escrevendo em w a partir do nível informado
func NewWithWriter(w io.Writer, level zerolog.Level) Logger {
	return &ZeroLogger{
		log: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

// NewNopLogger cria um Logger que descarta tudo (útil em testes)
func NewNopLogger() Logger {
	return &ZeroLogger{log: zerolog.Nop()}
}

// Info registra uma mensagem de informação
func (l *ZeroLogger) Info(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Info(), keysAndValues).Msg(msg)
}

// Error registra uma mensagem de erro
func (l *ZeroLogger) Error(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Error(), keysAndValues).Msg(msg)
}

// Debug registra uma mensagem de debug
func (l *ZeroLogger) Debug(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Debug(), keysAndValues).Msg(msg)
}

// Warn registra uma mensagem de aviso
func (l *ZeroLogger) Warn(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Warn(), keysAndValues).Msg(msg)
}

// withFields converte pares chave/valor em campos do evento
func withFields(e *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 >= len(keysAndValues) {
			e = e.Interface(key, nil)
			break
		}

		switch v := keysAndValues[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
		case string:
			e = e.Str(key, v)
		default:
			e = e.Interface(key, v)
		}
	}
	return e
}
