package bot

import "strings"

const helpText = "🆘 Помощь по боту-напоминалке\n\n" +
	"📌 Как добавить напоминание:\n" +
	"1️⃣ Нажми «Добавить напоминание»\n" +
	"2️⃣ Введи текст\n" +
	"3️⃣ Введи дату (например 17.02.2026)\n" +
	"   Можно написать: сегодня / завтра\n" +
	"4️⃣ Введи время: 9.30 / 09:30 / 9:30\n\n" +
	"📋 «Мои напоминания» — показывает список активных напоминаний\n" +
	"🗑 «Удалить напоминание» — введи номер (#), чтобы удалить\n" +
	"❌ Кнопка «Отмена» — прерывает добавление\n\n" +
	"⌚ Напоминание придёт точно в выбранные дату и время.\n\n" +
	"Команды:\n" +
	"/start — главное меню\n" +
	"/help — эта справка"

func (h *Handler) handleCommand(userID, chatID int64, text string) {
	cmd := text
	if i := strings.IndexAny(cmd, " @"); i > 0 {
		cmd = cmd[:i]
	}

	switch cmd {
	case "/start":
		h.handleStart(userID, chatID)
	case "/help":
		h.reply(chatID, helpText)
	case "/add":
		h.startAdd(userID, chatID)
	case "/list":
		h.sendList(userID, chatID)
	case "/delete":
		h.startDelete(userID, chatID)
	default:
		// неизвестная команда: молчим
	}
}

func (h *Handler) handleStart(userID, chatID int64) {
	// /start обрывает любой начатый диалог
	h.states.Clear(userID)
	h.replyKB(chatID,
		"Привет! | Hello! \n"+
			"Я бот_напоминалка. | This is Bot_reminder. \n\n"+
			"Команды: | Commands: \n"+
			"/start - старт | start\n"+
			"/add - добавить напоминание | add a notice\n"+
			"/list - показать напоминание | show list\n"+
			"/help - помощь | help\n"+
			"Выбери действие: | choose the option:",
		mainMenu())
}
