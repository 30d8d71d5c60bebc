package main

import (
	"log"

	_ "boardsvc/docs"
	"boardsvc/internal/config"
	"boardsvc/internal/server"
)

// @title           Board Service API
// @version         1.0
// @description     API for managing boards, membership and board access control.

// @host      localhost:3002
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
