package controllers

import (
	"net/http"
	"strings"

	"internship-management-api/middleware"
	"internship-management-api/models"
	"internship-management-api/services"
	"internship-management-api/store"
	"internship-management-api/views"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	logs     *store.LogStore
	notifier *services.Notifier
}

func NewLogController(logs *store.LogStore, notifier *services.Notifier) *LogController {
	return &LogController{logs: logs, notifier: notifier}
}

type SaveLogRequest struct {
	Company   string `json:"company"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Entries   []struct {
		EntryID string `json:"entry_id"`
		Date    string `json:"date"`
		Content string `json:"content"`
	} `json:"entries"`
}

// Save creates the journal on first save and replaces the full entry
// sequence on later saves. The log id is the internship's id, supplied
// by the route. Every entry needs a date and content.
func (lc *LogController) Save(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id := c.Param("id")

	var req SaveLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if len(req.Entries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A journal needs at least one entry"})
		return
	}
	entries := make([]models.Entry, 0, len(req.Entries))
	for _, e := range req.Entries {
		if strings.TrimSpace(e.Date) == "" || strings.TrimSpace(e.Content) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all fields"})
			return
		}
		entries = append(entries, models.Entry{EntryID: e.EntryID, Date: e.Date, Content: e.Content})
	}

	if existing, ok := lc.logs.GetByID(id); ok {
		if existing.StudentID != user.UserID {
			c.JSON(http.StatusForbidden, gin.H{"error": "This journal belongs to another student"})
			return
		}
		lc.logs.Update(id, store.LogPatch{Entries: &entries})
		updated, _ := lc.logs.GetByID(id)
		c.JSON(http.StatusOK, gin.H{"message": "Journal saved", "log": updated})
		return
	}

	created := lc.logs.Add(models.Log{
		LogID:         id,
		StudentID:     user.UserID,
		StudentName:   user.Name,
		StudentNumber: user.StudentNumber,
		Department:    user.Department,
		Company:       req.Company,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Entries:       entries,
	})

	c.JSON(http.StatusCreated, gin.H{"message": "Journal created", "log": created})
}

// RemoveEntry drops one entry; the last remaining entry stays put.
func (lc *LogController) RemoveEntry(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id := c.Param("id")

	log, ok := lc.logs.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		return
	}
	if log.StudentID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This journal belongs to another student"})
		return
	}

	lc.logs.RemoveEntry(id, c.Param("entryID"))
	updated, _ := lc.logs.GetByID(id)

	c.JSON(http.StatusOK, gin.H{"log": updated})
}

// ListMine returns the logged-in student's journals.
func (lc *LogController) ListMine(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	logs := lc.logs.ByStudent(user.UserID)

	c.JSON(http.StatusOK, gin.H{
		"logs":  logs,
		"total": len(logs),
	})
}

// List returns the full review queue grouped by status.
func (lc *LogController) List(c *gin.Context) {
	logs := lc.logs.All()

	c.JSON(http.StatusOK, gin.H{
		"queue": views.LogQueue(logs),
		"total": len(logs),
	})
}

// Get returns one journal for the detail page.
func (lc *LogController) Get(c *gin.Context) {
	log, ok := lc.logs.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"log": log})
}

// Approve marks a pending journal approved.
func (lc *LogController) Approve(c *gin.Context) {
	lc.decide(c, store.Approve, models.StatusApproved, "Journal approved")
}

// Reject marks a pending journal rejected.
func (lc *LogController) Reject(c *gin.Context) {
	lc.decide(c, store.Reject, models.StatusRejected, "Journal rejected")
}

func (lc *LogController) decide(c *gin.Context, decide func(store.ReviewStore, string) error, status models.LifecycleStatus, message string) {
	id := c.Param("id")

	if err := decide(lc.logs, id); err != nil {
		switch err {
		case store.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		case store.ErrAlreadyDecided:
			c.JSON(http.StatusConflict, gin.H{"error": "Journal has already been decided"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	log, _ := lc.logs.GetByID(id)
	lc.notifier.NotifyDecision("log", log.StudentID, status)

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"log":     log,
	})
}
