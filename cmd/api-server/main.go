package main

import (
	"log"

	"github.com/joho/godotenv"

	"playlistport/internal/app"
	"playlistport/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	application := app.New(cfg)
	application.Run()
}
