package domain

import "time"

// GenerationResult describes the outcome of one classify-extract-render
// cycle.
type GenerationResult struct {
	ProductName string      `json:"product_name"`
	Category    CategoryTag `json:"category"`
	FilePath    string      `json:"file_path,omitempty"`
	Skipped     bool        `json:"skipped,omitempty"`
	Uploaded    bool        `json:"uploaded,omitempty"`
	Message     string      `json:"message,omitempty"`
}

// BatchFailure records one failed item of a batch run.
type BatchFailure struct {
	ProductName string `json:"product_name"`
	Error       string `json:"error"`
}

// BatchReport aggregates per-item outcomes of a sequential batch run. It is
// persisted as a JSON artifact next to the generated descriptions.
type BatchReport struct {
	Date       time.Time          `json:"date"`
	Total      int                `json:"total_products"`
	Successful int                `json:"successful"`
	Failed     int                `json:"failed"`
	Items      []GenerationResult `json:"successful_items"`
	Failures   []BatchFailure     `json:"failed_items"`
}
