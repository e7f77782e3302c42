package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/vetly/activity-scheduling/loadtest/internal/stub"
)

func main() {
	port := os.Getenv("STUB_PORT")
	if port == "" {
		port = "8090"
	}

	storage := stub.NewStorage()
	handler := stub.NewHandler(storage)

	router := gin.Default()
	handler.Register(router)

	slog.Info("starting stub server", slog.String("port", port))
	if err := router.Run(":" + port); err != nil {
		slog.Error("stub server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
