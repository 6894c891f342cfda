// Package domain reúne tipos compartilhados pelas entidades do MoneyWise.
package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate ocorre quando a data não está em nenhum formato aceito
var ErrInvalidDate = errors.New("data inválida")

// Formatos de data aceitos na entrada, do mais ao menos específico
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// ParseDate interpreta uma data em RFC 3339, ISO (AAAA-MM-DD) ou no formato brasileiro (DD/MM/AAAA)
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// Timestamp é um instante serializado como texto RFC 3339.
// Um valor armazenado que não seja uma data válida é lido como zero,
// para que uma única data ruim não invalide a coleção inteira.
type Timestamp struct {
	time.Time
}

// NewTimestamp cria um Timestamp a partir de um time.Time
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// Valid indica se o instante foi lido com sucesso
func (t Timestamp) Valid() bool {
	return !t.IsZero()
}

// Canonical converte o instante para UTC com precisão de milissegundos, a forma gravada
func (t Timestamp) Canonical() Timestamp {
	if t.IsZero() {
		return t
	}
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

// MarshalJSON implementa json.Marshaler
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}

// UnmarshalJSON implementa json.Unmarshaler
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		t.Time = time.Time{}
		return nil
	}
	t.Time = parsed
	return nil
}
