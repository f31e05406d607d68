package repo

import (
	"sync"

	"github.com/DmitriiGware/telegram-reminder-bot/internal/domain"
)

// States — текущая стадия диалога каждого пользователя.
// Та же дисциплина, что у Reminders: всё под одним мьютексом.
type States struct {
	mu    sync.Mutex
	convs map[int64]domain.Conversation
}

func NewStates() *States {
	return &States{convs: make(map[int64]domain.Conversation)}
}

// Get возвращает состояние пользователя; неизвестный пользователь — Idle.
func (s *States) Get(user int64) domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.convs[user]
}

func (s *States) Set(user int64, conv domain.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.convs[user] = conv
}

// Clear сбрасывает диалог в Idle и выбрасывает частично собранные данные.
func (s *States) Clear(user int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.convs, user)
}
