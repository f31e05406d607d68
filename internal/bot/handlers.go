package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/DmitriiGware/telegram-reminder-bot/internal/domain"
	"github.com/DmitriiGware/telegram-reminder-bot/internal/repo"
)

// API — то, что хендлерам нужно от *tgbotapi.BotAPI.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	api API

	reminders *repo.Reminders
	states    *repo.States

	now func() time.Time
}

func NewHandler(api API, r *repo.Reminders, s *repo.States) *Handler {
	return &Handler{api: api, reminders: r, states: s, now: time.Now}
}

func (h *Handler) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.CallbackQuery != nil {
		h.HandleCallback(ctx, upd.CallbackQuery)
		return
	}

	if upd.Message == nil {
		return
	}

	msg := upd.Message
	// работаем только в личке
	if !msg.Chat.IsPrivate() {
		return
	}

	userID := msg.From.ID
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	// команды имеют приоритет: новая команда обрывает начатый диалог
	if strings.HasPrefix(text, "/") {
		h.handleCommand(userID, chatID, text)
		return
	}

	conv := h.states.Get(userID)
	switch conv.Stage {
	case domain.StageAwaitingText:
		h.stepText(userID, chatID, text)
	case domain.StageAwaitingDate:
		h.stepDate(userID, chatID, conv, text)
	case domain.StageAwaitingTime:
		h.stepTime(userID, chatID, conv, text)
	case domain.StageAwaitingDeleteID:
		h.stepDeleteID(userID, chatID, text)
	default:
		// Idle: свободный текст вне диалога молча игнорируем
	}
}

func (h *Handler) HandleCallback(ctx context.Context, q *tgbotapi.CallbackQuery) {
	// обязательно отвечаем Telegram, даже на неизвестную кнопку
	defer h.api.Request(tgbotapi.NewCallback(q.ID, ""))

	if q.Message == nil {
		return
	}

	userID := q.From.ID
	chatID := q.Message.Chat.ID

	switch q.Data {
	case "add":
		h.startAdd(userID, chatID)
	case "list":
		h.sendList(userID, chatID)
	case "delete":
		h.startDelete(userID, chatID)
	case "cancel_add":
		h.states.Clear(userID)
		h.replyKB(chatID, "Отменено.", mainMenu())
	case "help":
		h.reply(chatID, helpText)
	default:
		// неизвестная кнопка: только ack, состояние не трогаем
	}
}

func (h *Handler) startAdd(userID, chatID int64) {
	h.states.Set(userID, domain.Conversation{Stage: domain.StageAwaitingText})
	h.replyKB(chatID, "Напиши текст напоминания.", cancelKeyboard())
}

func (h *Handler) startDelete(userID, chatID int64) {
	if len(h.reminders.List(userID)) == 0 {
		h.replyKB(chatID, "Удалять нечего - напоминаний нет.", mainMenu())
		return
	}
	h.states.Set(userID, domain.Conversation{Stage: domain.StageAwaitingDeleteID})
	h.replyKB(chatID,
		"Введи номер напоминания (id), которое удалить.\n"+
			"Подсказка: нажми 'Мои напоминания' и посмотри номер (#).",
		cancelKeyboard())
}

func (h *Handler) sendList(userID, chatID int64) {
	items := h.reminders.List(userID)
	if len(items) == 0 {
		h.replyKB(chatID, "Пока напоминаний нет.", mainMenu())
		return
	}

	var b strings.Builder
	b.WriteString("📌 Твои напоминания:")
	for _, r := range items {
		b.WriteString(fmt.Sprintf("\n#%d — %s — %s", r.ID, r.DueAt.Format("02.01.2006 15:04"), r.Text))
	}
	h.replyKB(chatID, b.String(), mainMenu())
}

func (h *Handler) stepText(userID, chatID int64, text string) {
	if text == "" {
		h.reply(chatID, "Отправь обычный текст")
		return
	}

	h.states.Set(userID, domain.Conversation{Stage: domain.StageAwaitingDate, Text: text})
	h.replyKB(chatID,
		"📅 Теперь введи дату в формате DD.MM.YYYY (например 17.02.2026)\n"+
			"Можно написать: сегодня / завтра",
		cancelKeyboard())
}

func (h *Handler) stepDate(userID, chatID int64, conv domain.Conversation, text string) {
	d, ok := ParseDate(text, h.now())
	if !ok {
		h.replyKB(chatID,
			"Не понял дату 😅\n"+
				"Введи так: DD.MM.YYYY (например 17.02.2026)\n"+
				"Или напиши: сегодня / завтра",
			cancelKeyboard())
		return
	}

	conv.Stage = domain.StageAwaitingTime
	conv.Date = d
	h.states.Set(userID, conv)
	h.replyKB(chatID, "⏰ Теперь введи время: 9.30 / 09:30 / 9:30", cancelKeyboard())
}

func (h *Handler) stepTime(userID, chatID int64, conv domain.Conversation, text string) {
	hh, mm, ok := ParseTime(text)
	if !ok {
		h.replyKB(chatID, "Не понял время. Пример: 9.30 / 09:30 / 9:30", cancelKeyboard())
		return
	}

	if conv.Text == "" || conv.Date.IsZero() {
		h.states.Clear(userID)
		h.replyKB(chatID, "Данные потерялись. Нажми «Добавить» заново.", mainMenu())
		return
	}

	now := h.now()
	target := time.Date(conv.Date.Year(), conv.Date.Month(), conv.Date.Day(), hh, mm, 0, 0, conv.Date.Location())
	if !target.After(now) {
		h.replyKB(chatID,
			"⚠️ Это время уже прошло.\n"+
				"Выбери другое время или дату (например завтра).",
			cancelKeyboard())
		return
	}

	id := h.reminders.Add(userID, chatID, conv.Text, target)
	h.states.Clear(userID)
	h.replyKB(chatID,
		fmt.Sprintf("✅ Готово!\nНапоминание #%d\nТекст: %s\nВремя: %s",
			id, conv.Text, target.Format("02.01.2006 15:04")),
		mainMenu())
}

func (h *Handler) stepDeleteID(userID, chatID int64, text string) {
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil || id < 0 {
		h.replyKB(chatID, "Введи только число (например 1).", cancelKeyboard())
		return
	}

	removed := h.reminders.Remove(userID, id)
	h.states.Clear(userID)

	if !removed {
		h.replyKB(chatID, fmt.Sprintf("Не нашёл напоминание с id #%d.", id), mainMenu())
		return
	}
	h.replyKB(chatID, fmt.Sprintf("✅ Удалил напоминание #%d.", id), mainMenu())
}

func (h *Handler) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.api.Send(msg); err != nil {
		log.Printf("send to %d: %v", chatID, err)
	}
}

func (h *Handler) replyKB(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.api.Send(msg); err != nil {
		log.Printf("send to %d: %v", chatID, err)
	}
}
