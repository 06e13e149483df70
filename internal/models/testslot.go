package models

// Test slot kinds.
const (
	SlotTypeMock    = "mock"
	SlotTypePartial = "partial"
)

// Modules. LRW marks the written portion of a mock test.
const (
	ModuleListening = "listening"
	ModuleReading   = "reading"
	ModuleWriting   = "writing"
	ModuleSpeaking  = "speaking"
	ModuleLRW       = "LRW"
)

// Speaking batch purposes.
const (
	PurposeIndividual = "individual"
	PurposeMock       = "mock"
)

// RegisteredStudent is a roster entry on a test slot. Result stays
// empty until a speaking score is recorded inline (speaking slots only;
// other modules keep scores in the performance collection).
type RegisteredStudent struct {
	StudentID string `json:"studentId"`
	Result    string `json:"result,omitempty"`
}

// TestSlot is a single bookable exam appointment.
//
// Mock slots represent the written (LRW) portion and link a speaking
// batch by SpeakingBatchID. Speaking slots carry the grouping BatchID
// and a Purpose; their room/teacher stay empty until assigned.
type TestSlot struct {
	ID                 string              `json:"id"`
	Type               string              `json:"type"`
	Module             string              `json:"module,omitempty"`
	Date               string              `json:"date"` // "YYYY-MM-DD"
	Time               string              `json:"time"` // "HH:MM" or "HH:MM-HH:MM"
	RoomID             string              `json:"roomId,omitempty"`
	TeacherID          string              `json:"teacherId,omitempty"`
	SpeakingBatchID    string              `json:"speakingBatchId,omitempty"`
	BatchID            string              `json:"batchId,omitempty"`
	Purpose            string              `json:"purpose,omitempty"`
	TotalSeats         int                 `json:"totalSeats"`
	AvailableSeats     int                 `json:"availableSeats"`
	RegisteredStudents []RegisteredStudent `json:"registeredStudents"`
}

// IsSpeaking reports whether the slot is a speaking-module slot.
func (s TestSlot) IsSpeaking() bool {
	return s.Type == SlotTypePartial && s.Module == ModuleSpeaking
}

// RosterIndex returns the roster position of a student, -1 when absent.
func (s TestSlot) RosterIndex(studentID string) int {
	for i, entry := range s.RegisteredStudents {
		if entry.StudentID == studentID {
			return i
		}
	}
	return -1
}

// SpeakingBatchSummary describes a group of speaking slots sharing a
// batch id. Derived at read time, never stored.
type SpeakingBatchSummary struct {
	BatchID   string `json:"batchId"`
	Date      string `json:"date"`
	SlotCount int    `json:"slot_count"`
	Purpose   string `json:"purpose"`
}

// TestSlotOverview groups the slot collection for the management view:
// mock tests, full-day speaking batches and standalone partial slots.
type TestSlotOverview struct {
	MockTests       []TestSlot             `json:"mockTests"`
	SpeakingBatches []SpeakingBatchSummary `json:"speakingBatches"`
	PartialSlots    []TestSlot             `json:"partialSlots"`
}
