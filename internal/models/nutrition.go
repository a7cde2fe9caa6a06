package models

import "encoding/json"

// Nutrition is the recognized portion of a food entry's nutritional
// payload. The stored payload is open-ended JSON; unrecognized keys are
// ignored and absent or non-numeric values default to 0.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

// ParseNutrition interprets a raw nutritional payload. The second
// return is false when the payload is not a JSON object at all, in
// which case the entry is treated as having no nutritional data.
func ParseNutrition(raw string) (*Nutrition, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, false
	}

	num := func(key string) float64 {
		b, ok := fields[key]
		if !ok {
			return 0
		}
		var v float64
		if err := json.Unmarshal(b, &v); err != nil {
			return 0
		}
		return v
	}

	return &Nutrition{
		Calories: num("calories"),
		Protein:  num("protein"),
		Carbs:    num("carbs"),
		Fat:      num("fat"),
		Fiber:    num("fiber"),
		Sugar:    num("sugar"),
		Sodium:   num("sodium"),
	}, true
}
