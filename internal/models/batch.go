package models

// Weekday names used by batch day sets and the dashboard filter.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Batch is a recurring scheduled class: course + timeframe + room +
// teachers + weekdays. All references are weak; lookups may dangle.
type Batch struct {
	ID          string   `json:"id"`
	CourseID    string   `json:"courseId"`
	TimeframeID string   `json:"timeframeId"`
	RoomID      string   `json:"roomId"`
	BatchNumber string   `json:"batchNumber"`
	Days        []string `json:"days"`
	TeacherIDs  []string `json:"teacherIds"`
	IsActive    bool     `json:"isActive"`
}

// SharesDay reports whether the batch meets on any of the given days.
func (b Batch) SharesDay(days []string) []string {
	var shared []string
	for _, day := range days {
		for _, other := range b.Days {
			if day == other {
				shared = append(shared, day)
				break
			}
		}
	}
	return shared
}

// HasTeacher reports whether the batch is assigned the given teacher.
func (b Batch) HasTeacher(teacherID string) bool {
	for _, id := range b.TeacherIDs {
		if id == teacherID {
			return true
		}
	}
	return false
}

// BatchConflictError is returned when a candidate batch collides with
// existing batches. Each entry is a human-readable description; room
// and teacher collisions with the same batch are reported separately.
type BatchConflictError struct {
	Conflicts []string `json:"conflicts"`
}

// Error implements the error interface.
func (e *BatchConflictError) Error() string {
	if e == nil || len(e.Conflicts) == 0 {
		return "no conflicts"
	}
	return e.Conflicts[0]
}

// ConflictCheckResult is the dry-run detector output.
type ConflictCheckResult struct {
	Conflicts    []string `json:"conflicts"`
	HasConflicts bool     `json:"has_conflicts"`
}
