package main

import (
	"log"
	"os"

	"github.com/Gokulsuresh1918/winter-arc/config"
	"github.com/Gokulsuresh1918/winter-arc/controllers"
	"github.com/Gokulsuresh1918/winter-arc/routes"
	"github.com/Gokulsuresh1918/winter-arc/services"
	"github.com/Gokulsuresh1918/winter-arc/utils"
)

func main() {
	if err := utils.InitLogger(); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = utils.Logger.Sync() }()

	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	hub := services.NewRealtimeHub()
	services.InitNotificationDeps(config.DB, hub)
	controllers.InitRealtime(hub)

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	utils.Sugar.Infow("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		utils.Sugar.Fatalw("server exited", "error", err)
	}
}
