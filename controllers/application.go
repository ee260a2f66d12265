package controllers

import (
	"net/http"
	"strings"

	"internship-management-api/middleware"
	"internship-management-api/models"
	"internship-management-api/services"
	"internship-management-api/store"
	"internship-management-api/utils"
	"internship-management-api/views"

	"github.com/gin-gonic/gin"
)

type ApplicationController struct {
	applications *store.ApplicationStore
	notifier     *services.Notifier
}

func NewApplicationController(applications *store.ApplicationStore, notifier *services.Notifier) *ApplicationController {
	return &ApplicationController{applications: applications, notifier: notifier}
}

type CreateApplicationRequest struct {
	Department         string   `json:"department"`
	CompanyName        string   `json:"company_name"`
	CompanyAddress     string   `json:"company_address"`
	CompanyPhone       string   `json:"company_phone"`
	CompanyEmail       string   `json:"company_email"`
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date"`
	SupervisorName     string   `json:"supervisor_name"`
	SupervisorTitle    string   `json:"supervisor_title"`
	SupervisorEmail    string   `json:"supervisor_email"`
	SupervisorPhone    string   `json:"supervisor_phone"`
	ProjectTitle       string   `json:"project_title"`
	ProjectDescription string   `json:"project_description"`
	LearningObjectives []string `json:"learning_objectives"`
}

func (req *CreateApplicationRequest) validate() []string {
	order := []string{
		"department", "company_name", "company_address", "company_phone", "company_email",
		"start_date", "end_date",
		"supervisor_name", "supervisor_title", "supervisor_email", "supervisor_phone",
		"project_title", "project_description",
	}
	missing := utils.MissingFields(map[string]string{
		"department":          req.Department,
		"company_name":        req.CompanyName,
		"company_address":     req.CompanyAddress,
		"company_phone":       req.CompanyPhone,
		"company_email":       req.CompanyEmail,
		"start_date":          req.StartDate,
		"end_date":            req.EndDate,
		"supervisor_name":     req.SupervisorName,
		"supervisor_title":    req.SupervisorTitle,
		"supervisor_email":    req.SupervisorEmail,
		"supervisor_phone":    req.SupervisorPhone,
		"project_title":       req.ProjectTitle,
		"project_description": req.ProjectDescription,
	}, order)

	objectives := 0
	for _, obj := range req.LearningObjectives {
		if strings.TrimSpace(obj) != "" {
			objectives++
		}
	}
	if objectives == 0 {
		missing = append(missing, "learning_objectives")
	}
	return missing
}

func (req *CreateApplicationRequest) invalidEmails() []string {
	bad := []string{}
	if req.CompanyEmail != "" && !utils.ValidateEmail(req.CompanyEmail) {
		bad = append(bad, "company_email")
	}
	if req.SupervisorEmail != "" && !utils.ValidateEmail(req.SupervisorEmail) {
		bad = append(bad, "supervisor_email")
	}
	return bad
}

// Create registers a new internship application for the logged-in
// student. Incomplete submissions are rejected before any record exists.
func (ac *ApplicationController) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if missing := req.validate(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Please fill in all required fields",
			"missing": missing,
		})
		return
	}
	if bad := req.invalidEmails(); len(bad) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid email address",
			"invalid": bad,
		})
		return
	}

	objectives := make([]string, 0, len(req.LearningObjectives))
	for _, obj := range req.LearningObjectives {
		if strings.TrimSpace(obj) != "" {
			objectives = append(objectives, strings.TrimSpace(obj))
		}
	}

	created := ac.applications.Add(models.Application{
		StudentID:          user.UserID,
		StudentName:        user.Name,
		StudentNumber:      user.StudentNumber,
		Department:         req.Department,
		CompanyName:        req.CompanyName,
		CompanyAddress:     req.CompanyAddress,
		CompanyPhone:       req.CompanyPhone,
		CompanyEmail:       req.CompanyEmail,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		SupervisorName:     req.SupervisorName,
		SupervisorTitle:    req.SupervisorTitle,
		SupervisorEmail:    req.SupervisorEmail,
		SupervisorPhone:    req.SupervisorPhone,
		ProjectTitle:       req.ProjectTitle,
		ProjectDescription: req.ProjectDescription,
		LearningObjectives: objectives,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted",
		"application": created,
	})
}

// ListMine returns the logged-in student's applications.
func (ac *ApplicationController) ListMine(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	apps := ac.applications.ByStudent(user.UserID)

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}

// List returns the full review queue grouped by status. The university
// panel shows every application; only pending ones are actionable.
func (ac *ApplicationController) List(c *gin.Context) {
	apps := ac.applications.All()

	c.JSON(http.StatusOK, gin.H{
		"queue": views.ApplicationQueue(apps),
		"total": len(apps),
	})
}

// Get returns one application for the detail page.
func (ac *ApplicationController) Get(c *gin.Context) {
	app, ok := ac.applications.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": app})
}

// Approve marks a pending application approved.
func (ac *ApplicationController) Approve(c *gin.Context) {
	ac.decide(c, store.Approve, models.StatusApproved, "Application approved")
}

// Reject marks a pending application rejected.
func (ac *ApplicationController) Reject(c *gin.Context) {
	ac.decide(c, store.Reject, models.StatusRejected, "Application rejected")
}

func (ac *ApplicationController) decide(c *gin.Context, decide func(store.ReviewStore, string) error, status models.LifecycleStatus, message string) {
	id := c.Param("id")

	if err := decide(ac.applications, id); err != nil {
		switch err {
		case store.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		case store.ErrAlreadyDecided:
			c.JSON(http.StatusConflict, gin.H{"error": "Application has already been decided"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	app, _ := ac.applications.GetByID(id)
	ac.notifier.NotifyDecision("application", app.StudentID, status)

	c.JSON(http.StatusOK, gin.H{
		"message":     message,
		"application": app,
	})
}
