package main

import (
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/orcweb/orcweb"
	"github.com/orcweb/orcweb/internal/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}
	app, err := orcweb.FromConfig(cfg, orcweb.WithLogger(logger))
	if err != nil {
		logger.Error("init handlers", "error", err)
		os.Exit(1)
	}
	lambda.Start(app.Home())
}
