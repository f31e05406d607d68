package repo

import (
	"sync"
	"time"

	"github.com/DmitriiGware/telegram-reminder-bot/internal/domain"
)

// Reminders — in-memory хранилище напоминаний: owner → список.
// Живёт столько же, сколько процесс; рестарт всё теряет.
type Reminders struct {
	mu     sync.Mutex
	items  map[int64][]domain.Reminder
	nextID map[int64]int64
}

func NewReminders() *Reminders {
	return &Reminders{
		items:  make(map[int64][]domain.Reminder),
		nextID: make(map[int64]int64),
	}
}

// Add выдаёт следующий id владельца и добавляет напоминание.
// Счётчик id только растёт, даже после удалений.
func (r *Reminders) Add(owner, chatID int64, text string, dueAt time.Time) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID[owner]
	if id == 0 {
		id = 1
	}
	r.nextID[owner] = id + 1

	r.items[owner] = append(r.items[owner], domain.Reminder{
		ID:     id,
		Owner:  owner,
		ChatID: chatID,
		Text:   text,
		DueAt:  dueAt,
	})
	return id
}

// List возвращает копию списка владельца в порядке добавления.
func (r *Reminders) List(owner int64) []domain.Reminder {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.items[owner]
	out := make([]domain.Reminder, len(items))
	copy(out, items)
	return out
}

// Remove удаляет напоминание по id. Возвращает false, если такого нет;
// повторное удаление — не ошибка.
func (r *Reminders) Remove(owner, id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.items[owner]
	for i, it := range items {
		if it.ID == id {
			r.items[owner] = append(items[:i], items[i+1:]...)
			return true
		}
	}
	return false
}

// TakeDue атомарно забирает все напоминания с DueAt <= now и оставляет
// в хранилище только будущие. Один вызов — один шанс на доставку:
// повторный TakeDue те же элементы не вернёт.
func (r *Reminders) TakeDue(now time.Time) map[int64][]domain.Reminder {
	r.mu.Lock()
	defer r.mu.Unlock()

	due := make(map[int64][]domain.Reminder)
	for owner, items := range r.items {
		var keep []domain.Reminder
		for _, it := range items {
			if !it.DueAt.After(now) {
				due[owner] = append(due[owner], it)
			} else {
				keep = append(keep, it)
			}
		}
		if len(due[owner]) == 0 {
			continue
		}
		if len(keep) == 0 {
			delete(r.items, owner)
		} else {
			r.items[owner] = keep
		}
	}
	return due
}
