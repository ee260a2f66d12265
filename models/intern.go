package models

// Evaluation is the company's verdict on a completed internship.
type Evaluation struct {
	Approved    bool   `json:"approved"`
	Description string `json:"description"`
}

// Intern is the read-only aggregate companies review. Its ReviewStatus is
// used purely for grouping and gating the evaluation form; it is not the
// application/log lifecycle status.
type Intern struct {
	InternID   string       `json:"intern_id"`
	Name       string       `json:"name"`
	Surname    string       `json:"surname"`
	Status     ReviewStatus `json:"status"`
	Email      string       `json:"email,omitempty"`
	Phone      string       `json:"phone,omitempty"`
	University string       `json:"university,omitempty"`
	Department string       `json:"department,omitempty"`
	StartDate  string       `json:"start_date,omitempty"`
	EndDate    string       `json:"end_date,omitempty"`
	Company    string       `json:"company,omitempty"`
	Mentor     string       `json:"mentor,omitempty"`
	Evaluation *Evaluation  `json:"evaluation,omitempty"`
}
