package controllers

import (
	"net/http"
	"strconv"

	"internship-management-api/models"
	"internship-management-api/services"
	"internship-management-api/utils"

	"github.com/gin-gonic/gin"
)

// JournalController exposes the simulated external journal source. Calls
// block for the client's configured latency; overlapping requests may
// resolve in either order.
type JournalController struct {
	client *services.JournalClient
}

func NewJournalController(client *services.JournalClient) *JournalController {
	return &JournalController{client: client}
}

// List returns every journal entry from the external source.
func (jc *JournalController) List(c *gin.Context) {
	entries := jc.client.FetchAllLogs()

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   len(entries),
	})
}

// Add creates a new pending entry dated today.
func (jc *JournalController) Add(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	content := utils.SanitizeInput(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in the journal content"})
		return
	}

	entry := jc.client.AddLog(content)

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// UpdateStatus sets an entry's status to approved or rejected.
func (jc *JournalController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	var req struct {
		Status models.LifecycleStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Status != models.StatusApproved && req.Status != models.StatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be either 'approved' or 'rejected'"})
		return
	}

	entry, ok := jc.client.UpdateLogStatus(id, req.Status)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}
