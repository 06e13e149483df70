package models

// PerformanceRecord stores a test score for non-speaking slots.
// Speaking scores live inline on the slot roster instead; see
// ResultService.RecordResult for the single entry point.
type PerformanceRecord struct {
	ID         string `json:"id"`
	StudentID  string `json:"studentId"`
	TestSlotID string `json:"testSlotId"`
	Score      string `json:"score"`
}

// PerformanceView resolves slot display fields for a score row.
type PerformanceView struct {
	ID       string `json:"id,omitempty"`
	Date     string `json:"date"`
	TestType string `json:"test_type"`
	Module   string `json:"module,omitempty"`
	Score    string `json:"score"`
}
