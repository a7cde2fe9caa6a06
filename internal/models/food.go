package models

import "time"

// FoodEntry represents one recorded food intake. NutritionalData holds
// the raw JSON payload as stored; use ParseNutrition to interpret it.
type FoodEntry struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	FoodName        string    `gorm:"size:255;not null" json:"food_name"`
	Quantity        *float64  `gorm:"type:decimal(10,2)" json:"quantity,omitempty"`
	Unit            *string   `gorm:"size:50" json:"unit,omitempty"`
	NutritionalData *string   `gorm:"type:json" json:"nutritional_data,omitempty"`
	ConsumedAt      time.Time `gorm:"index;not null" json:"consumed_at"`
	Notes           *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateFoodEntryRequest represents the request to record a food intake
type CreateFoodEntryRequest struct {
	FoodName        string             `json:"food_name" binding:"required"`
	Quantity        *float64           `json:"quantity" binding:"omitempty,gt=0"`
	Unit            *string            `json:"unit"`
	NutritionalData map[string]float64 `json:"nutritional_data"`
	ConsumedAt      time.Time          `json:"consumed_at" binding:"required"`
	Notes           *string            `json:"notes"`
}

// FoodEntryResponse is the public shape of a food entry with the
// nutritional payload parsed; an unparsable payload is simply absent.
type FoodEntryResponse struct {
	ID              uint       `json:"id"`
	FoodName        string     `json:"food_name"`
	Quantity        *float64   `json:"quantity,omitempty"`
	Unit            *string    `json:"unit,omitempty"`
	NutritionalData *Nutrition `json:"nutritional_data,omitempty"`
	ConsumedAt      time.Time  `json:"consumed_at"`
	Notes           *string    `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ToResponse converts a stored entry into its public response shape.
func (e *FoodEntry) ToResponse() FoodEntryResponse {
	resp := FoodEntryResponse{
		ID:         e.ID,
		FoodName:   e.FoodName,
		Quantity:   e.Quantity,
		Unit:       e.Unit,
		ConsumedAt: e.ConsumedAt,
		Notes:      e.Notes,
		CreatedAt:  e.CreatedAt,
	}
	if e.NutritionalData != nil {
		if n, ok := ParseNutrition(*e.NutritionalData); ok {
			resp.NutritionalData = n
		}
	}
	return resp
}

// FoodCatalogItem is a reference food from the seeded catalog.
type FoodCatalogItem struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Brand             *string   `gorm:"size:255" json:"brand,omitempty"`
	Category          *string   `gorm:"size:255" json:"category,omitempty"`
	ServingSize       *float64  `gorm:"type:decimal(10,2)" json:"serving_size,omitempty"`
	ServingUnit       *string   `gorm:"size:50" json:"serving_unit,omitempty"`
	CaloriesPerServing *float64 `gorm:"type:decimal(10,2)" json:"calories_per_serving,omitempty"`
	ProteinPerServing *float64  `gorm:"type:decimal(10,2)" json:"protein_per_serving,omitempty"`
	CarbsPerServing   *float64  `gorm:"type:decimal(10,2)" json:"carbs_per_serving,omitempty"`
	FatPerServing     *float64  `gorm:"type:decimal(10,2)" json:"fat_per_serving,omitempty"`
	FiberPerServing   *float64  `gorm:"type:decimal(10,2)" json:"fiber_per_serving,omitempty"`
	SugarPerServing   *float64  `gorm:"type:decimal(10,2)" json:"sugar_per_serving,omitempty"`
	SodiumPerServing  *float64  `gorm:"type:decimal(10,2)" json:"sodium_per_serving,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// NutritionSummary holds nutrient totals over a set of food entries.
type NutritionSummary struct {
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
	TotalFiber    float64 `json:"total_fiber"`
	TotalSugar    float64 `json:"total_sugar"`
	TotalSodium   float64 `json:"total_sodium"`
	EntryCount    int     `json:"entry_count"`
}
