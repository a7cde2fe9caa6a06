package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/moodmeal/backend/internal/config"
	"github.com/moodmeal/backend/internal/database"
	"github.com/moodmeal/backend/internal/logger"
	"github.com/moodmeal/backend/internal/models"
	"github.com/moodmeal/backend/internal/repository"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the food reference database",
	Long:  `Populate the food catalog with a starter set of common foods and their nutrition facts. Safe to re-run; existing entries are updated in place.`,
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	catalogRepo := repository.NewFoodCatalogRepository(db)
	ctx := context.Background()

	for i := range starterFoods {
		if err := catalogRepo.Upsert(ctx, &starterFoods[i]); err != nil {
			return fmt.Errorf("failed to seed %q: %w", starterFoods[i].Name, err)
		}
	}

	log.Info("food catalog seeded", logger.Int("items", len(starterFoods)))
	return nil
}

func catalogItem(name, category string, servingSize float64, servingUnit string, calories, protein, carbs, fat, fiber, sugar, sodium float64) models.FoodCatalogItem {
	return models.FoodCatalogItem{
		Name:               name,
		Category:           &category,
		ServingSize:        &servingSize,
		ServingUnit:        &servingUnit,
		CaloriesPerServing: &calories,
		ProteinPerServing:  &protein,
		CarbsPerServing:    &carbs,
		FatPerServing:      &fat,
		FiberPerServing:    &fiber,
		SugarPerServing:    &sugar,
		SodiumPerServing:   &sodium,
	}
}

// starterFoods is the baseline catalog; per-serving values follow USDA
// figures for the stated serving.
var starterFoods = []models.FoodCatalogItem{
	catalogItem("Apple", "Fruits", 1, "medium", 95, 0.5, 25, 0.3, 4, 19, 2),
	catalogItem("Banana", "Fruits", 1, "medium", 105, 1.3, 27, 0.4, 3.1, 14, 1),
	catalogItem("Orange", "Fruits", 1, "medium", 62, 1.2, 15, 0.2, 3.1, 12, 0),
	catalogItem("Strawberries", "Fruits", 1, "cup", 49, 1, 12, 0.5, 3, 7, 1),
	catalogItem("Blueberries", "Fruits", 1, "cup", 84, 1.1, 21, 0.5, 3.6, 15, 1),
	catalogItem("Avocado", "Fruits", 1, "medium", 234, 2.9, 12, 21, 9.2, 0.4, 10),
	catalogItem("Broccoli", "Vegetables", 1, "cup", 55, 4.3, 11, 0.6, 5.1, 2.6, 33),
	catalogItem("Spinach", "Vegetables", 1, "cup", 7, 0.9, 1.1, 0.1, 0.7, 0.1, 24),
	catalogItem("Sweet Potato", "Vegetables", 1, "medium", 103, 2.3, 24, 0.2, 3.8, 7.4, 41),
	catalogItem("Brown Rice", "Grains", 1, "cup", 216, 5, 45, 1.8, 3.5, 0.7, 10),
	catalogItem("Oatmeal", "Grains", 1, "cup", 154, 5.3, 28, 2.6, 4, 0.6, 2),
	catalogItem("Quinoa", "Grains", 1, "cup", 222, 8, 39, 3.6, 5, 0, 13),
	catalogItem("Chicken Breast", "Meat", 100, "g", 165, 31, 0, 3.6, 0, 0, 74),
	catalogItem("Salmon", "Fish", 100, "g", 208, 25, 0, 12, 0, 0, 59),
	catalogItem("Greek Yogurt", "Dairy", 1, "cup", 100, 17, 6, 0, 0, 6, 61),
	catalogItem("Eggs", "Dairy", 1, "large", 70, 6, 0.6, 5, 0, 0.6, 70),
	catalogItem("Almonds", "Nuts", 1, "oz", 164, 6, 6, 14, 3.5, 1.2, 1),
	catalogItem("Black Beans", "Legumes", 1, "cup", 227, 15, 41, 0.9, 15, 0.6, 2),
	catalogItem("Lentils", "Legumes", 1, "cup", 230, 18, 40, 0.8, 15.6, 3.6, 4),
}
