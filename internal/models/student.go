package models

// Student is created on first registration and deduplicated by phone
// or email match (first match wins).
type Student struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// TestRegistration ties a student to a test slot. One registration per
// (student, slot) pair.
type TestRegistration struct {
	ID               string `json:"id"`
	StudentID        string `json:"studentId"`
	TestSlotID       string `json:"testSlotId"`
	RegistrationDate string `json:"registrationDate"` // "YYYY-MM-DD"
}

// RegistrationView resolves display fields for a registration. Missing
// referenced entities degrade to "N/A".
type RegistrationView struct {
	ID               string `json:"id"`
	StudentName      string `json:"student_name"`
	StudentPhone     string `json:"student_phone"`
	TestType         string `json:"test_type"`
	Module           string `json:"module,omitempty"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	RoomName         string `json:"room_name"`
	RegistrationDate string `json:"registration_date"`
}
