package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"pizzabot/cmd"
	"pizzabot/internal/adapters/in/agent"
	httpin "pizzabot/internal/adapters/in/http"
	"pizzabot/internal/adapters/out/postgres/customerrepo"
	"pizzabot/internal/adapters/out/postgres/orderrepo"
	"pizzabot/internal/core/domain/model/menu"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)
	migrateDB(gormDB)

	catalog, err := menu.Load(configs.MenuPath)
	if err != nil {
		log.Fatalf("Error loading menu catalog: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, catalog, logger)

	registry, err := app.NewToolRegistry()
	if err != nil {
		log.Fatalf("Error building tool registry: %v", err)
	}

	e := echo.New()
	app.NewHTTPServer().RegisterRoutes(e)

	if configs.GeminiAPIKey != "" {
		assistant, err := agent.NewAssistant(
			context.Background(), configs.GeminiAPIKey, configs.GeminiModel, registry, logger,
		)
		if err != nil {
			log.Fatalf("Error creating assistant: %v", err)
		}
		defer assistant.Close()

		httpin.NewChatHandler(assistant).RegisterRoutes(e)
	} else {
		logger.Warn("GEMINI_API_KEY is not set, chat endpoints are disabled")
	}

	if configs.KitchenSimEnabled {
		jobManager := app.NewJobManager()
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Error starting jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		MenuPath:          goDotEnvVariable("MENU_PATH"),
		GeminiAPIKey:      goDotEnvVariable("GEMINI_API_KEY"),
		GeminiModel:       goDotEnvVariable("GEMINI_MODEL"),
		KitchenSimEnabled: goDotEnvBool("KITCHEN_SIM_ENABLED"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvBool(key string) bool {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return false
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.UpdateDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}
