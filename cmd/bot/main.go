package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/undefined7887/ai2024-applied-python-hw2/internal/admin"
	"github.com/undefined7887/ai2024-applied-python-hw2/internal/bot"
	"github.com/undefined7887/ai2024-applied-python-hw2/internal/fsm"
	"github.com/undefined7887/ai2024-applied-python-hw2/internal/repository"
	"github.com/undefined7887/ai2024-applied-python-hw2/internal/service"
	"github.com/undefined7887/ai2024-applied-python-hw2/internal/weather"
	"github.com/undefined7887/ai2024-applied-python-hw2/pkg/utils"
)

func main() {
	// -----------------------
	// ENV
	if err := godotenv.Load(); err != nil {
		utils.Log.Info("No .env file found")
	}

	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		utils.Log.Error("TELEGRAM_TOKEN not set")
		os.Exit(1)
	}

	weatherToken := os.Getenv("OPEN_WEATHER_API_TOKEN")
	if weatherToken == "" {
		utils.Log.Error("OPEN_WEATHER_API_TOKEN not set")
		os.Exit(1)
	}

	// -----------------------
	// CORE
	weatherClient := weather.NewClient(weatherToken)
	userRepo := repository.NewUserRepo()
	userService := service.NewUserService(userRepo, weatherClient)
	machine := fsm.NewMachine()
	dispatcher := bot.NewDispatcher(userService, machine, weatherClient)

	// -----------------------
	// ADMIN HTTP (опционально, в том же процессе — состояние только в памяти)
	if addr := os.Getenv("ADMIN_ADDR"); addr != "" {
		go func() {
			router := gin.Default()
			admin.SetupRoutes(router, userService, os.Getenv("ADMIN_KEY"))
			if err := router.Run(addr); err != nil {
				utils.Log.Errorf("admin server stopped: %v", err)
			}
		}()
		utils.Log.Infof("Admin server listening on %s", addr)
	}

	// -----------------------
	// BOT
	app, err := bot.NewBotApp(token, dispatcher)
	if err != nil {
		utils.Log.Error("Failed to create bot: " + err.Error())
		os.Exit(1)
	}

	app.Run()
}
