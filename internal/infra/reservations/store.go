package reservations

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/revivatech/RT-AvailabilityService/internal/domain"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Store in-process хранилище временных резерваций слотов
//
// Единственное разделяемое изменяемое состояние этого сервиса (вместе со
// счетчиками rate limiter'а). Все операции выполняются под одним мьютексом:
// проверка существования и вставка в Create - одна неделимая критическая
// секция, иначе два конкурентных Create на один слот могли бы оба успеть
//
// Истёкшие резервации не снимаются таймерами: каждый публичный метод сначала
// вычищает просроченные записи под той же блокировкой (ленивый reaping).
// Благодаря этому ни один вызов не может увидеть просроченную резервацию
type Store struct {
	mu           sync.Mutex
	items        map[string]*domain.Reservation
	timeProvider TimeProvider
}

// NewStore создает пустое хранилище резерваций
func NewStore() *Store {
	return &Store{
		items:        make(map[string]*domain.Reservation),
		timeProvider: &RealTimeProvider{},
	}
}

// Create создает резервацию слота на durationMinutes минут
// Возвращает ErrAlreadyReserved, если на слот уже есть живая резервация.
// durationMinutes ограничивается диапазоном [5, 60]
func (s *Store) Create(slotID string, durationMinutes int, customerInfo map[string]interface{}) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()
	s.reapExpiredLocked(now)

	if _, exists := s.items[slotID]; exists {
		return nil, ErrAlreadyReserved
	}

	if durationMinutes < domain.MinReservationMinutes {
		durationMinutes = domain.MinReservationMinutes
	}
	if durationMinutes > domain.MaxReservationMinutes {
		durationMinutes = domain.MaxReservationMinutes
	}

	reservation := &domain.Reservation{
		SlotID:       slotID,
		HoldToken:    uuid.New().String(),
		ReservedAt:   now,
		ExpiresAt:    now.Add(time.Duration(durationMinutes) * time.Minute),
		CustomerInfo: customerInfo,
	}
	s.items[slotID] = reservation

	return cloneReservation(reservation), nil
}

// Extend продлевает резервацию на additionalMinutes минут
// Новый срок не может выйти за потолок 60 минут от момента создания.
// Возвращает ErrNotFound, если резервации нет, и ErrExpired, если она уже
// истекла (истёкшая запись при этом вычищается)
func (s *Store) Extend(slotID string, additionalMinutes int) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()

	reservation, exists := s.items[slotID]
	if !exists {
		return time.Time{}, ErrNotFound
	}

	if reservation.IsExpired(now) {
		delete(s.items, slotID)
		return time.Time{}, ErrExpired
	}

	newExpiry := reservation.ExpiresAt.Add(time.Duration(additionalMinutes) * time.Minute)
	if ceiling := reservation.MaxExpiry(); newExpiry.After(ceiling) {
		newExpiry = ceiling
	}
	reservation.ExpiresAt = newExpiry

	s.reapExpiredLocked(now)

	return newExpiry, nil
}

// Release снимает резервацию со слота
// Возвращает true, если резервация действительно была удалена
func (s *Store) Release(slotID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reapExpiredLocked(s.timeProvider.Now())

	if _, exists := s.items[slotID]; !exists {
		return false
	}
	delete(s.items, slotID)
	return true
}

// IsReserved возвращает true, если на слот есть живая резервация
func (s *Store) IsReserved(slotID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reapExpiredLocked(s.timeProvider.Now())

	_, exists := s.items[slotID]
	return exists
}

// Get возвращает копию резервации слота, если она жива
func (s *Store) Get(slotID string) (*domain.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reapExpiredLocked(s.timeProvider.Now())

	reservation, exists := s.items[slotID]
	if !exists {
		return nil, false
	}
	return cloneReservation(reservation), true
}

// Len возвращает число живых резерваций
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reapExpiredLocked(s.timeProvider.Now())

	return len(s.items)
}

// reapExpiredLocked вычищает все истёкшие резервации
// Вызывается только под блокировкой
func (s *Store) reapExpiredLocked(now time.Time) {
	for slotID, reservation := range s.items {
		if reservation.IsExpired(now) {
			delete(s.items, slotID)
		}
	}
}

// cloneReservation возвращает копию, чтобы вызывающий код не мог
// менять состояние хранилища в обход блокировки
func cloneReservation(r *domain.Reservation) *domain.Reservation {
	clone := *r
	return &clone
}
