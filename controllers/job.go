package controllers

import (
	"log"
	"net/http"

	"internship-management-api/middleware"
	"internship-management-api/models"
	"internship-management-api/store"
	"internship-management-api/utils"
	"internship-management-api/views"

	"github.com/gin-gonic/gin"
)

type JobController struct {
	jobs *store.JobStore
}

func NewJobController(jobs *store.JobStore) *JobController {
	return &JobController{jobs: jobs}
}

type JobRequest struct {
	Title               string                 `json:"title"`
	Description         string                 `json:"description"`
	Requirements        []string               `json:"requirements"`
	Location            string                 `json:"location"`
	StartDate           string                 `json:"start_date"`
	EndDate             string                 `json:"end_date"`
	ApplicationDeadline string                 `json:"application_deadline"`
	Status              models.JobStatus       `json:"status"`
	CompanyDetails      *models.CompanyDetails `json:"company_details"`
}

func (req *JobRequest) validate() []string {
	order := []string{"title", "description", "location", "start_date", "end_date", "application_deadline"}
	return utils.MissingFields(map[string]string{
		"title":                req.Title,
		"description":          req.Description,
		"location":             req.Location,
		"start_date":           req.StartDate,
		"end_date":             req.EndDate,
		"application_deadline": req.ApplicationDeadline,
	}, order)
}

// List returns postings filtered by free-text query and location. The
// location options always lead with the "all" sentinel.
func (jc *JobController) List(c *gin.Context) {
	query := c.Query("q")
	location := c.DefaultQuery("location", views.AllLocations)

	all := jc.jobs.All()
	filtered := views.FilterJobs(all, query, location)

	c.JSON(http.StatusOK, gin.H{
		"jobs":      filtered,
		"locations": views.JobLocations(all),
		"total":     len(filtered),
	})
}

// Get returns one posting for the detail page.
func (jc *JobController) Get(c *gin.Context) {
	job, ok := jc.jobs.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Create posts a new opening for the logged-in company.
func (jc *JobController) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req JobRequest
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

	created := jc.jobs.Add(models.Job{
		Company:             user.Company,
		Title:               req.Title,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Location:            req.Location,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		ApplicationDeadline: req.ApplicationDeadline,
		Status:              req.Status,
		CompanyDetails:      req.CompanyDetails,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job posted",
		"job":     created,
	})
}

// Update edits a posting owned by the logged-in company.
func (jc *JobController) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id := c.Param("id")

	job, ok := jc.jobs.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	if job.Company != user.Company {
		c.JSON(http.StatusForbidden, gin.H{"error": "This posting belongs to another company"})
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	patch := store.JobPatch{CompanyDetails: req.CompanyDetails}
	if req.Title != "" {
		patch.Title = &req.Title
	}
	if req.Description != "" {
		patch.Description = &req.Description
	}
	if req.Requirements != nil {
		patch.Requirements = &req.Requirements
	}
	if req.Location != "" {
		patch.Location = &req.Location
	}
	if req.StartDate != "" {
		patch.StartDate = &req.StartDate
	}
	if req.EndDate != "" {
		patch.EndDate = &req.EndDate
	}
	if req.ApplicationDeadline != "" {
		patch.ApplicationDeadline = &req.ApplicationDeadline
	}
	if req.Status != "" {
		patch.Status = &req.Status
	}

	jc.jobs.Update(id, patch)
	updated, _ := jc.jobs.GetByID(id)

	c.JSON(http.StatusOK, gin.H{
		"message": "Job updated",
		"job":     updated,
	})
}

// Delete removes a posting owned by the logged-in company.
func (jc *JobController) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id := c.Param("id")

	job, ok := jc.jobs.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	if job.Company != user.Company {
		c.JSON(http.StatusForbidden, gin.H{"error": "This posting belongs to another company"})
		return
	}

	jc.jobs.Remove(id)

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

// Apply records a student's interest in a posting. Role gating happens
// in the routes; this handler only needs the posting to exist.
func (jc *JobController) Apply(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id := c.Param("id")

	job, ok := jc.jobs.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	log.Printf("student %s applied to job %s (%s)", user.UserID, job.JobID, job.Title)

	c.JSON(http.StatusOK, gin.H{"message": "Application noted"})
}
