package main

import (
	"log"

	"github.com/sankalp021/intervue/internal/config"
	"github.com/sankalp021/intervue/internal/handlers"
	"github.com/sankalp021/intervue/internal/services"
	"github.com/sankalp021/intervue/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}
	cfg := config.Load()

	hub := ws.NewHub()
	controller := services.NewController(hub)

	wsHandler := handlers.NewWSHandler(hub, controller)
	statusHandler := handlers.NewStatusHandler(controller)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/ws", wsHandler.HandleWebSocket)
	r.GET("/health", statusHandler.Health)
	r.GET("/api/poll-history", statusHandler.PollHistory)

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
