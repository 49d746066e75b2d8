package ratelimit

import (
	"sync"
	"time"
)

// idleWindows через сколько полных окон бездействия запись клиента вычищается
const idleWindows = 3

type entry struct {
	count       int
	windowStart time.Time
}

// Limiter fixed-window rate limiter с отдельным счетчиком на каждый clientID
// Не блокирует и не спит: Allow только инкрементирует счетчик текущего окна
// Записи простаивающих клиентов вычищаются попутно при открытии нового окна,
// чтобы карта не росла бесконечно в долгоживущем процессе
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	entries map[string]*entry

	now func() time.Time
}

// New создает limiter с потолком limit запросов на окно window
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  window,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Allow возвращает true, если запрос клиента укладывается в лимит текущего окна
func (l *Limiter) Allow(clientID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	e, ok := l.entries[clientID]
	if !ok || now.After(e.windowStart.Add(l.window)) {
		// Новое окно - заодно вычищаем давно не активных клиентов
		l.evictIdle(now)
		l.entries[clientID] = &entry{count: 1, windowStart: now}
		return true
	}

	e.count++
	return e.count <= l.limit
}

// RetryAfter возвращает время до конца текущего окна клиента
// Возвращает 0, если окна нет или оно уже закончилось
func (l *Limiter) RetryAfter(clientID string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[clientID]
	if !ok {
		return 0
	}

	remaining := e.windowStart.Add(l.window).Sub(l.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// evictIdle удаляет записи клиентов, не активных дольше idleWindows окон
// Вызывается только под блокировкой
func (l *Limiter) evictIdle(now time.Time) {
	threshold := now.Add(-time.Duration(idleWindows) * l.window)
	for id, e := range l.entries {
		if e.windowStart.Before(threshold) {
			delete(l.entries, id)
		}
	}
}
