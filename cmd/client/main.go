package main

import (
	"context"
	"log"

	"github.com/adventbox/daybox/internal/client/cli"
	"github.com/adventbox/daybox/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("error initializing app: %v", err)
	}

	app.Run(context.Background())
}
