package models

// Entry is one dated note inside an internship log. Entries have no
// lifecycle of their own; they are edited only through the parent log.
type Entry struct {
	EntryID string `json:"entry_id"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// Log is the day-by-day internship journal a student maintains and a
// university reviews. Once created a log always keeps at least one entry.
type Log struct {
	LogID string `json:"log_id"`

	StudentID     string `json:"student_id"`
	StudentName   string `json:"student_name"`
	StudentNumber string `json:"student_number"`
	Department    string `json:"department"`

	Company   string `json:"company"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	Status  LifecycleStatus `json:"status"`
	Entries []Entry         `json:"entries"`
}
