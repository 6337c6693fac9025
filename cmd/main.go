package main

import (
	"os"

	"library-service/cmd/command"

	"github.com/gin-gonic/gin"
)

func init() {
	// Release unless told otherwise, so a misconfigured deploy never exposes debug output.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           library-service
// @version         1.0
// @description     Library catalogue, stock and checkout queries.

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	command.Execute()
}
