package discord

import (
	"sync"
	"time"
)

// userLimiter: cooldown por usuario entre comandos.
type userLimiter struct {
	mu   sync.Mutex
	next map[string]time.Time
	win  time.Duration
	now  func() time.Time
}

func newUserLimiter(window time.Duration) *userLimiter {
	return &userLimiter{next: map[string]time.Time{}, win: window, now: time.Now}
}

// Allow devuelve false y lo que falta si el usuario sigue en cooldown.
func (l *userLimiter) Allow(userID string) (bool, time.Duration) {
	if l == nil || l.win <= 0 {
		return true, 0
	}
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	if until, ok := l.next[userID]; ok && now.Before(until) {
		return false, until.Sub(now)
	}
	l.next[userID] = now.Add(l.win)
	// purga de cooldowns vencidos
	if len(l.next) > 1024 {
		for id, until := range l.next {
			if !now.Before(until) {
				delete(l.next, id)
			}
		}
	}
	return true, 0
}
