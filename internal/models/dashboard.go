package models

// DashboardRow is one scheduled batch on the day view, sorted by start
// time. Dangling references render as "N/A".
type DashboardRow struct {
	BatchID     string `json:"batch_id"`
	BatchNumber string `json:"batch_number"`
	TimeDisplay string `json:"time"`
	CourseName  string `json:"course"`
	RoomName    string `json:"room"`
	Teachers    string `json:"teachers"`
	IsActive    bool   `json:"is_active"`
}

// StudentDetail aggregates a student's registrations and scores.
type StudentDetail struct {
	Student       Student            `json:"student"`
	Registrations []RegistrationView `json:"registrations"`
	Performance   []PerformanceView  `json:"performance"`
}
