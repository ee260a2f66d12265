package models

// CompanyDetails is the optional public snapshot attached to a posting.
type CompanyDetails struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	About   string `json:"about"`
}

// Job is a company-posted internship opening. Postings have no approval
// workflow; the owning company opens and closes them directly.
type Job struct {
	JobID        string   `json:"job_id"`
	Company      string   `json:"company"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Location     string   `json:"location"`

	StartDate           string `json:"start_date"`
	EndDate             string `json:"end_date"`
	ApplicationDeadline string `json:"application_deadline"`

	Status         JobStatus       `json:"status"`
	CompanyDetails *CompanyDetails `json:"company_details,omitempty"`
}
