package app

import (
	"context"
	"fmt"
	"os"

	"formulario-clientes/app/controller"
	"formulario-clientes/app/router"
	"formulario-clientes/catalog"
	"formulario-clientes/db"
	"formulario-clientes/repository"
	"formulario-clientes/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection and schema
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.EnsureSchema(context.Background()); err != nil {
		return err
	}

	// Load the catalog ordering rules once; they stay immutable for the
	// process lifetime.
	rules, err := catalog.LoadRules(os.Getenv("CATALOG_RULES_PATH"))
	if err != nil {
		return err
	}

	// Get credentials path from environment variable
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath == "" {
		return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
	}

	// Initialize logo storage service
	storageService, err := service.NewStorageService(credentialsPath, os.Getenv("DRIVE_LOGO_FOLDER_ID"))
	if err != nil {
		return err
	}

	// Initialize email service
	emailService, err := service.NewEmailService()
	if err != nil {
		return err
	}

	// Initialize catalog pipeline services
	storefrontService := service.NewStorefrontService(
		os.Getenv("STOREFRONT_API_URL"),
		os.Getenv("STOREFRONT_API_TOKEN"),
	)
	productsService := service.NewProductsService(storefrontService, rules, os.Getenv("STORE_BASE_URL"))

	// Initialize OCR service
	ocrService := service.NewOCRService()

	// Initialize repository
	clientRepo := repository.NewClientRepository()

	// Create controllers
	controllers := &router.Controllers{
		Intake: controller.NewIntakeController(clientRepo, ocrService, storageService, productsService, emailService),
		Client: controller.NewClientController(clientRepo),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
