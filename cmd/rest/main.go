package main

import (
	"context"
	"log"

	"parts-catalog-be/internal/bootstrap"
	"parts-catalog-be/internal/config"
	"parts-catalog-be/internal/server"
	"parts-catalog-be/internal/tracer"
	"parts-catalog-be/pkg/database"
)

func main() {
	// 1. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start Background Services
	go func() {
		log.Println("Background: Starting Cleanup Consumer...")
		if err := container.CleanupService.Consume(context.Background()); err != nil {
			log.Printf("Background Cleanup Error: %v", err)
		}
	}()

	// 6. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
