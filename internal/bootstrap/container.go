package bootstrap

import (
	"parts-catalog-be/internal/config"
	"parts-catalog-be/internal/controller"
	"parts-catalog-be/internal/pkg/filestore"
	"parts-catalog-be/internal/pkg/logger"
	"parts-catalog-be/internal/repository/unitofwork"
	"parts-catalog-be/internal/service"
	"parts-catalog-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	MachineController   controller.IMachineController
	CategoryController  controller.ICategoryController
	ComponentController controller.IComponentController
	DrawingController   controller.IDrawingController
	FavoriteController  controller.IFavoriteController
	SearchController    controller.ISearchController
	AnalyticsController controller.IAnalyticsController

	// Background services, run by main.go
	CleanupService service.ICleanupService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	store := filestore.NewLocalStore(cfg.Uploads.Root)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisher := service.NewPublisherService(pubSub, events.TopicFileCleanup)
	cleanup := service.NewCleanupService(pubSub, events.TopicFileCleanup, store, sysLogger)

	// 3. Services
	machineService := service.NewMachineService(uowFactory, store, publisher)
	categoryService := service.NewCategoryService(uowFactory, store, publisher)
	componentService := service.NewComponentService(uowFactory, store, publisher)
	drawingService := service.NewDrawingService(uowFactory, store, publisher)
	favoriteService := service.NewFavoriteService(uowFactory)
	searchService := service.NewSearchService(uowFactory)
	analyticsService := service.NewAnalyticsService(uowFactory)

	// 4. Controllers
	return &Container{
		MachineController:   controller.NewMachineController(machineService),
		CategoryController:  controller.NewCategoryController(categoryService),
		ComponentController: controller.NewComponentController(componentService),
		DrawingController:   controller.NewDrawingController(drawingService),
		FavoriteController:  controller.NewFavoriteController(favoriteService),
		SearchController:    controller.NewSearchController(searchService),
		AnalyticsController: controller.NewAnalyticsController(analyticsService),
		CleanupService:      cleanup,
		Logger:              sysLogger,
	}
}
