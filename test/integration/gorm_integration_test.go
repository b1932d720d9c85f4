package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/repository/unitofwork"
	"parts-catalog-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.MachineRepository())
	assert.NotNil(t, uow.FavoriteRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Machine Repository", func(t *testing.T) {
		count, err := uow.MachineRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Machine count: %d", count)
	})

	t.Run("Check Search History Repository", func(t *testing.T) {
		count, err := uow.SearchHistoryRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("SearchHistory count: %d", count)
	})

	t.Run("Check Transactional Machine Component", func(t *testing.T) {
		ctx := context.Background()

		machineId := uuid.New()
		machine := &entity.Machine{
			Id:        machineId,
			Name:      "Integration Press " + uuid.New().String(),
			Model:     "IT-100",
			SapNumber: "SAP-IT-" + uuid.New().String(),
			CreatedAt: time.Now(),
		}

		categoryId := uuid.New()
		category := &entity.Category{
			Id:        categoryId,
			Name:      "Integration Category " + uuid.New().String(),
			CreatedAt: time.Now(),
		}

		err := uow.MachineRepository().Create(ctx, machine)
		assert.NoError(t, err)
		err = uow.CategoryRepository().Create(ctx, category)
		assert.NoError(t, err)

		// Transaction Test
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		componentId := uuid.New()
		component := &entity.Component{
			Id:         componentId,
			MachineId:  machineId,
			CategoryId: &categoryId,
			PosNumber:  "10",
			Quantity:   1,
			Unit:       "pc",
			NameEn:     "Integration pump",
			SapNumber:  "SAP-IT-C-" + uuid.New().String(),
			CreatedAt:  time.Now(),
		}

		err = uow.ComponentRepository().Create(ctx, component)
		assert.NoError(t, err)

		spec := &entity.ComponentSpecification{
			Id:          uuid.New(),
			ComponentId: componentId,
			SpecKey:     "Pressure",
			SpecValue:   "200",
			SpecUnit:    "bar",
			CreatedAt:   time.Now(),
		}

		err = uow.ComponentSpecificationRepository().Create(ctx, spec)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created Component with Specification in Transaction")
	})
}
