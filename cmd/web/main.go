package main

import (
	"freehunt_backend/internal/app"
	"freehunt_backend/internal/logger"
)

func main() {
	a, err := app.New()
	if err != nil {
		logger.Fatal("failed to initialize application", "error", err)
	}
	if err := a.Run(); err != nil {
		logger.Fatal("server error", "error", err)
	}
}
