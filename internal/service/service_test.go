package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/model"
	"parts-catalog-be/internal/pkg/filestore"
	"parts-catalog-be/internal/repository/unitofwork"
	"parts-catalog-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the service stack over an in-memory sqlite store so the
// full path from service through unit of work to GORM runs in tests.
type testEnv struct {
	db         *gorm.DB
	uowFactory unitofwork.RepositoryFactory
	store      filestore.Store
	publisher  IPublisherService

	Machines   IMachineService
	Categories ICategoryService
	Components IComponentService
	Drawings   IDrawingService
	Favorites  IFavoriteService
	Search     ISearchService
	Analytics  IAnalyticsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// One named in-memory database per test; cache=shared keeps every
	// pooled connection on the same database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.Machine{},
		&model.Category{},
		&model.Component{},
		&model.ComponentImage{},
		&model.ComponentSpecification{},
		&model.MachineDrawing{},
		&model.Favorite{},
		&model.SearchHistory{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	store := filestore.NewLocalStore(t.TempDir())

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisher := NewPublisherService(pubSub, events.TopicFileCleanup)

	return &testEnv{
		db:         db,
		uowFactory: uowFactory,
		store:      store,
		publisher:  publisher,
		Machines:   NewMachineService(uowFactory, store, publisher),
		Categories: NewCategoryService(uowFactory, store, publisher),
		Components: NewComponentService(uowFactory, store, publisher),
		Drawings:   NewDrawingService(uowFactory, store, publisher),
		Favorites:  NewFavoriteService(uowFactory),
		Search:     NewSearchService(uowFactory),
		Analytics:  NewAnalyticsService(uowFactory),
	}
}

func (e *testEnv) createMachine(t *testing.T, name string) uuid.UUID {
	t.Helper()
	res, err := e.Machines.Create(context.Background(), &dto.CreateMachineRequest{
		Name:      name,
		Model:     "M-" + name,
		SapNumber: "SAP-" + name,
	})
	if err != nil {
		t.Fatalf("create machine %q: %v", name, err)
	}
	return res.Id
}

func (e *testEnv) createCategory(t *testing.T, name string) uuid.UUID {
	t.Helper()
	res, err := e.Categories.Create(context.Background(), &dto.CreateCategoryRequest{
		Name: name,
	})
	if err != nil {
		t.Fatalf("create category %q: %v", name, err)
	}
	return res.Id
}

func (e *testEnv) createComponent(t *testing.T, machineId uuid.UUID, req dto.CreateComponentRequest) uuid.UUID {
	t.Helper()
	req.MachineId = machineId
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.NameEn == "" {
		req.NameEn = "Component"
	}
	if req.SapNumber == "" {
		req.SapNumber = "SAP-C-" + uuid.NewString()
	}
	res, err := e.Components.Create(context.Background(), &req)
	if err != nil {
		t.Fatalf("create component: %v", err)
	}
	return res.Id
}
