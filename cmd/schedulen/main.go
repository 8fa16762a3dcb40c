package main

import (
	"log"

	"github.com/MuNeNICK/ScheduleN/internal/app"
	"github.com/MuNeNICK/ScheduleN/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	// Отсутствие .env не ошибка, всё можно задать окружением.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
