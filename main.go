package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nxtdo-backend/connection"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	connection.StartServer(logger)
}
