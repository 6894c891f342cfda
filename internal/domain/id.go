package domain

import (
	"strconv"
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// NewID gera um identificador com o prefixo da entidade e um sufixo derivado do horário.
// O sufixo é estritamente crescente dentro do processo, mesmo para chamadas no mesmo instante.
func NewID(prefix string, now time.Time) string {
	candidate := now.UnixNano()
	for {
		last := lastID.Load()
		next := candidate
		if next <= last {
			next = last + 1
		}
		if lastID.CompareAndSwap(last, next) {
			return prefix + strconv.FormatInt(next, 10)
		}
	}
}
