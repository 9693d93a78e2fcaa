// Package ratelimit implementa un limitador de ventana fija en memoria.
//
// Cada clave (grupo de rutas + IP del cliente) acumula un contador dentro de
// una ventana de tiempo; al expirar la ventana el contador se reinicia. No es
// distribuido: cada instancia del API limita de forma independiente.
package ratelimit

import (
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

// Limiter limitador de peticiones por ventana fija.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window
	size    time.Duration

	done chan struct{}
	once sync.Once
}

// New crea un limitador con ventanas del tamaño indicado y arranca la
// limpieza periódica de ventanas expiradas.
func New(size time.Duration) *Limiter {
	l := &Limiter{
		windows: make(map[string]*window),
		size:    size,
		done:    make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow registra una petición para la clave y devuelve false si la clave ya
// agotó max peticiones dentro de la ventana actual.
func (l *Limiter) Allow(key string, max int) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.size {
		l.windows[key] = &window{start: now, count: 1}
		return true
	}
	if w.count >= max {
		return false
	}
	w.count++
	return true
}

// Stop detiene la limpieza periódica. Idempotente.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.done) })
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.size)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.removeExpired()
		case <-l.done:
			return
		}
	}
}

func (l *Limiter) removeExpired() {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.size {
			delete(l.windows, key)
		}
	}
}
