package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// RunReminderWorker раз в every проверяет хранилище и шлёт созревшие
// напоминания. Живёт до отмены ctx.
func (h *Handler) RunReminderWorker(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.deliverDue(h.now())
		}
	}
}

// deliverDue забирает из хранилища все напоминания с DueAt <= now и
// отправляет их. Ошибка отправки логируется и не ретраится: элемент
// уже снят с хранения, доставка at-most-once.
func (h *Handler) deliverDue(now time.Time) {
	due := h.reminders.TakeDue(now)
	for owner, items := range due {
		for _, r := range items {
			text := fmt.Sprintf("⏰ Напоминание #%d\n%s\n\n(%s)",
				r.ID, r.Text, r.DueAt.Format("02.01.2006 15:04"))
			if _, err := h.api.Send(tgbotapi.NewMessage(r.ChatID, text)); err != nil {
				log.Printf("reminder #%d for user %d: send failed: %v", r.ID, owner, err)
			}
		}
	}
}
