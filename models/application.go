package models

// Application is a student-submitted request to register an internship
// arrangement. It is created with StatusPending and only a university
// decision may change the status afterwards.
type Application struct {
	ApplicationID string `json:"application_id"`

	StudentID     string `json:"student_id"`
	StudentName   string `json:"student_name"`
	StudentNumber string `json:"student_number"`
	Department    string `json:"department"`

	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	CompanyPhone   string `json:"company_phone"`
	CompanyEmail   string `json:"company_email"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	SupervisorName  string `json:"supervisor_name"`
	SupervisorTitle string `json:"supervisor_title"`
	SupervisorEmail string `json:"supervisor_email"`
	SupervisorPhone string `json:"supervisor_phone"`

	ProjectTitle       string   `json:"project_title"`
	ProjectDescription string   `json:"project_description"`
	LearningObjectives []string `json:"learning_objectives"`

	Status LifecycleStatus `json:"status"`
}
