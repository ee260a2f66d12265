package models

// Role identifies which panel a user belongs to.
type Role string

const (
	RoleStudent    Role = "student"
	RoleCompany    Role = "company"
	RoleUniversity Role = "university"
)

type User struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"-"` // bcrypt hash
	Role          Role   `json:"role"`
	StudentNumber string `json:"student_number,omitempty"`
	Department    string `json:"department,omitempty"`
	Company       string `json:"company,omitempty"`
}
