package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/postmeapp/postme/internal/client/cli"
	"github.com/postmeapp/postme/internal/client/config"
)

func main() {

	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
