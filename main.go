package main

import (
	"Recipe-Finder/cmd/config"
	migration "Recipe-Finder/cmd/database/migrate"
	"Recipe-Finder/internal/utils"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "run database migrations and exit")
	flag.Parse()

	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if *migrateOnly {
		return
	}

	app, err := config.NewApp(db, config.OptionsFromConfig())
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	port := utils.GetConfig("PORT")
	log.Infof("Server running on http://localhost:%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
