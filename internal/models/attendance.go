package models

// Attendance statuses.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// AttendanceRecord marks a student present or absent for a batch on a
// date. The (studentId, batchId, date) triple is unique.
type AttendanceRecord struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	BatchID   string `json:"batchId"`
	Date      string `json:"date"` // "YYYY-MM-DD"
	Status    string `json:"status"`
}

// AttendanceEntry is one row of an attendance sheet.
type AttendanceEntry struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	Status      string `json:"status"` // empty when unmarked
}
