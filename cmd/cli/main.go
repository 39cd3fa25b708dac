package main

import (
	"context"

	"github.com/mjpark-dev/boardapp/internal/client/cli"
	"github.com/mjpark-dev/boardapp/internal/client/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)
	app.Run(ctx)
}
