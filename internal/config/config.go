package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken     string
	TickInterval time.Duration // период проверки напоминаний
	SendTimeout  time.Duration // таймаут на один запрос к Telegram API
}

func MustLoad() Config {
	// .env опционален; в проде переменные приходят из окружения
	_ = godotenv.Load()

	bt := os.Getenv("BOT_TOKEN")
	if bt == "" {
		log.Fatal("BOT_TOKEN is required")
	}

	tick := time.Second
	if v := os.Getenv("TICK_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Fatalf("TICK_SECONDS must be a positive integer, got %q", v)
		}
		tick = time.Duration(n) * time.Second
	}

	sendTimeout := 10 * time.Second
	if v := os.Getenv("SEND_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Fatalf("SEND_TIMEOUT_SECONDS must be a positive integer, got %q", v)
		}
		sendTimeout = time.Duration(n) * time.Second
	}

	return Config{
		BotToken:     bt,
		TickInterval: tick,
		SendTimeout:  sendTimeout,
	}
}
