package entity

import "time"

// Fertilizer is a catalog product recommended against a diagnosed disease.
type Fertilizer struct {
	FertilizerID      int64  `json:"fertilizer_id"`
	Name              string `json:"name"`
	Type              string `json:"type"`
	Description       string `json:"description,omitempty"`
	UsageInstructions string `json:"usage_instructions,omitempty"`
	Category          string `json:"category,omitempty"`
	ImageURL          string `json:"image_url,omitempty"`
}

type Diagnosis struct {
	PredictionID        int64        `json:"prediction_id"`
	DiseaseName         string       `json:"disease_name"`
	Confidence          float64      `json:"confidence"`
	IsHealthy           bool         `json:"is_healthy"`
	Severity            string       `json:"severity"`
	Description         string       `json:"description,omitempty"`
	Treatment           string       `json:"treatment,omitempty"`
	RecommendedProducts []Fertilizer `json:"recommended_products,omitempty"`
}

// ScanRecord is one entry of the farmer's diagnosis history.
type ScanRecord struct {
	ImageID    int64      `json:"image_id"`
	ImageURL   string     `json:"image_url"`
	UploadDate time.Time  `json:"upload_date"`
	Prediction *Diagnosis `json:"prediction,omitempty"`
}
