package models

// Teacher is an instructor referenced by batches and test slots.
type Teacher struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Course is a program of study referenced by batches.
type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Timeframe is a reusable daily time window, minute granularity.
type Timeframe struct {
	ID    string `json:"id"`
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`   // "HH:MM"
}

// Room is a physical classroom.
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
