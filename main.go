package main

import (
	"github.com/finmentor/finmentor/config"
	"github.com/finmentor/finmentor/models"
	"github.com/finmentor/finmentor/routes"
	"github.com/finmentor/finmentor/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.Transaction{},
		&models.Streak{},
		&models.Badge{},
		&models.QuizScore{},
		&models.Goal{},
	)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s", cfg.AppPort)
	if err := utils.RunServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
