package main

import (
	"go.uber.org/zap"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/config"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/database"
	logger "github.com/BTL5010TEJA/smart-mock-interview/internal/logging"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/router"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/services"
)

func main() {
	// Initialize Logger
	log, err := logger.Init(".")
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Initialize Configuration
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to initialize configuration", zap.Error(err))
	}

	// Initialize Database
	database.Init(log)

	// Load the interview catalog at startup
	catalog, err := models.LoadCatalog(config.Conf.Server.CatalogPath)
	if err != nil {
		log.Fatal("Failed to load interview catalog", zap.Error(err))
	}

	// Start the practice reminder scheduler
	emailService := services.NewEmailService(log)
	scheduler := services.NewScheduler(log, emailService)
	scheduler.Start()

	// Setup router, passing the logger to it
	r := router.Setup(log, catalog)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
