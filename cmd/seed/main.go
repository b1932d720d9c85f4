package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"parts-catalog-be/internal/model"
	"parts-catalog-be/pkg/database"
	"parts-catalog-be/pkg/hotspot"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting catalog seeder")

	categoryId := seedCategory(db)
	machineId := seedMachine(db)
	componentId := seedComponents(db, machineId, categoryId)
	seedDrawing(db, machineId, componentId)

	color.Green("Success: catalog seeding completed")
}

func seedCategory(db *gorm.DB) uuid.UUID {
	color.Yellow("Seeding categories...")

	category := model.Category{
		Id:          uuid.New(),
		Name:        "Hydraulics",
		Description: "Pumps, valves and hydraulic lines",
		CreatedAt:   time.Now(),
	}
	if err := db.FirstOrCreate(&category, model.Category{Name: category.Name}).Error; err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	return category.Id
}

func seedMachine(db *gorm.DB) uuid.UUID {
	color.Yellow("Seeding machines...")

	machine := model.Machine{
		Id:          uuid.New(),
		Name:        "Press Line PL-200",
		Model:       "PL-200",
		SapNumber:   "SAP-100200",
		Description: "Hydraulic press line, 200 t",
		Company:     "Demo Industries",
		CreatedAt:   time.Now(),
	}
	if err := db.FirstOrCreate(&machine, model.Machine{SapNumber: machine.SapNumber}).Error; err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	return machine.Id
}

func seedComponents(db *gorm.DB, machineId, categoryId uuid.UUID) uuid.UUID {
	color.Yellow("Seeding components...")

	components := []model.Component{
		{
			Id:          uuid.New(),
			MachineId:   machineId,
			CategoryId:  &categoryId,
			PosNumber:   "10",
			Quantity:    1,
			Unit:        "pc",
			NameDe:      "Hydraulikpumpe",
			NameEn:      "Hydraulic pump",
			SapNumber:   "SAP-200301",
			IsSparePart: true,
			CreatedAt:   time.Now(),
		},
		{
			Id:            uuid.New(),
			MachineId:     machineId,
			CategoryId:    &categoryId,
			PosNumber:     "20",
			Quantity:      4,
			Unit:          "pc",
			NameDe:        "Dichtungssatz",
			NameEn:        "Seal kit",
			SapNumber:     "SAP-200302",
			IsWearingPart: true,
			CreatedAt:     time.Now(),
		},
	}

	first := uuid.Nil
	for i := range components {
		if err := db.FirstOrCreate(&components[i], model.Component{SapNumber: components[i].SapNumber}).Error; err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		if first == uuid.Nil {
			first = components[i].Id
		}
	}
	return first
}

func seedDrawing(db *gorm.DB, machineId, componentId uuid.UUID) {
	color.Yellow("Seeding drawings...")

	areas := []hotspot.Area{
		{X: 10, Y: 10, Width: 120, Height: 80, ComponentId: componentId},
	}
	raw, _ := json.Marshal(areas)

	page := 1
	drawing := model.MachineDrawing{
		Id:             uuid.New(),
		MachineId:      machineId,
		Title:          "Exploded view, sheet 1",
		FilePath:       "uploads/drawings/pl-200-exploded-1.png",
		DrawingType:    "exploded",
		PageNumber:     &page,
		ClickableAreas: datatypes.JSON(raw),
		CreatedAt:      time.Now(),
	}
	if err := db.FirstOrCreate(&drawing, model.MachineDrawing{MachineId: machineId, Title: drawing.Title}).Error; err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
}
