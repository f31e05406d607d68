package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/DmitriiGware/telegram-reminder-bot/internal/bot"
	"github.com/DmitriiGware/telegram-reminder-bot/internal/config"
	"github.com/DmitriiGware/telegram-reminder-bot/internal/repo"
)

func main() {
	cfg := config.MustLoad()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ограниченный таймаут на каждый запрос к Telegram: зависшая
	// отправка не должна останавливать воркер напоминаний
	client := &http.Client{Timeout: cfg.SendTimeout}
	botAPI, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		log.Fatalf("bot init: %v", err)
	}
	botAPI.Debug = false

	reminders := repo.NewReminders()
	states := repo.NewStates()

	h := bot.NewHandler(botAPI, reminders, states)

	// Graceful shutdown
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		cancel()
	}()

	// Reminders worker
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		h.RunReminderWorker(ctx, cfg.TickInterval)
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := botAPI.GetUpdatesChan(u)

	log.Printf("ReminderBot started as @%s", botAPI.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			<-workerDone
			log.Println("shutdown")
			return
		case upd := <-updates:
			h.HandleUpdate(ctx, upd)
		}
	}
}
