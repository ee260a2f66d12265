package controllers

import (
	"net/http"
	"strings"

	"internship-management-api/models"
	"internship-management-api/store"
	"internship-management-api/views"

	"github.com/gin-gonic/gin"
)

type InternController struct {
	interns *store.InternStore
}

func NewInternController(interns *store.InternStore) *InternController {
	return &InternController{interns: interns}
}

// List returns the interns split into the company tabs: ongoing and
// completed.
func (ic *InternController) List(c *gin.Context) {
	groups := views.GroupInterns(ic.interns.All())

	c.JSON(http.StatusOK, gin.H{
		"ongoing":   groups.Ongoing,
		"completed": groups.Completed,
	})
}

// Get returns one intern plus the evaluation section's display state.
func (ic *InternController) Get(c *gin.Context) {
	intern, ok := ic.interns.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Intern not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"intern":           intern,
		"evaluation_state": views.EvaluationState(intern),
	})
}

type EvaluationRequest struct {
	Approved    bool   `json:"approved"`
	Description string `json:"description"`
}

// SaveEvaluation records the company verdict for an intern whose report
// is complete and not yet evaluated.
func (ic *InternController) SaveEvaluation(c *gin.Context) {
	id := c.Param("id")

	var req EvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please write an evaluation description"})
		return
	}

	err := ic.interns.SaveEvaluation(id, models.Evaluation{
		Approved:    req.Approved,
		Description: req.Description,
	})
	if err != nil {
		switch err {
		case store.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Intern not found"})
		case store.ErrReportMissing:
			c.JSON(http.StatusConflict, gin.H{"error": "The internship report is missing; evaluation is not possible until it is submitted"})
		case store.ErrAlreadyEvaluated:
			c.JSON(http.StatusConflict, gin.H{"error": "Intern has already been evaluated"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	intern, _ := ic.interns.GetByID(id)

	c.JSON(http.StatusOK, gin.H{
		"message": "Evaluation saved",
		"intern":  intern,
	})
}
