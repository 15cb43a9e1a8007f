package domain

import "time"

// Farm is a registered farm with a size in hectares.
type Farm struct {
	ID   string  `json:"id" bson:"_id,omitempty"`
	Name string  `json:"name" bson:"name"`
	Size float64 `json:"size" bson:"size"`
}

// Crop is a plantation belonging to exactly one farm. Fertilizers are a
// many-to-many association kept as a list of fertilizer ids on the crop.
type Crop struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	FarmID        string    `json:"farm_id" bson:"farm_id"`
	Name          string    `json:"name" bson:"name"`
	PlantedArea   float64   `json:"planted_area" bson:"planted_area"`
	PlantedDate   time.Time `json:"planted_date" bson:"planted_date"`
	HarvestDate   time.Time `json:"harvest_date" bson:"harvest_date"`
	FertilizerIDs []string  `json:"-" bson:"fertilizer_ids,omitempty"`
}

// Fertilizer is a product that can be associated with any number of crops.
type Fertilizer struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Brand       string `json:"brand" bson:"brand"`
	Composition string `json:"composition" bson:"composition"`
}
