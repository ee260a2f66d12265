package controllers

import (
	"net/http"
	"sync"

	"internship-management-api/models"
	"internship-management-api/store"
	"internship-management-api/views"

	"github.com/gin-gonic/gin"
)

// DashboardStats summarizes the review workload for the university panel.
type DashboardStats struct {
	Applications struct {
		Pending  int `json:"pending"`
		Approved int `json:"approved"`
		Rejected int `json:"rejected"`
		Total    int `json:"total"`
	} `json:"applications"`
	Logs struct {
		Pending  int `json:"pending"`
		Approved int `json:"approved"`
		Rejected int `json:"rejected"`
		Total    int `json:"total"`
	} `json:"logs"`
	Jobs struct {
		Active int `json:"active"`
		Closed int `json:"closed"`
		Total  int `json:"total"`
	} `json:"jobs"`
}

// DashboardController serves cached stats that are recomputed whenever a
// store reports a mutation. The subscription replaces the old
// fixed-interval refresh: a decision is visible on the very next read.
type DashboardController struct {
	stores *store.Stores

	mu          sync.Mutex
	stats       DashboardStats
	unsubscribe func()
}

func NewDashboardController(stores *store.Stores) *DashboardController {
	dc := &DashboardController{stores: stores}
	dc.recompute()
	dc.unsubscribe = stores.Events.Subscribe(func(store.Event) {
		dc.recompute()
	})
	return dc
}

// Close detaches the controller from the event bus.
func (dc *DashboardController) Close() {
	if dc.unsubscribe != nil {
		dc.unsubscribe()
		dc.unsubscribe = nil
	}
}

// GetStats returns the current dashboard snapshot.
func (dc *DashboardController) GetStats(c *gin.Context) {
	dc.mu.Lock()
	stats := dc.stats
	dc.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (dc *DashboardController) recompute() {
	var stats DashboardStats

	appQueue := views.ApplicationQueue(dc.stores.Applications.All())
	stats.Applications.Pending = len(appQueue.Pending)
	stats.Applications.Approved = len(appQueue.Approved)
	stats.Applications.Rejected = len(appQueue.Rejected)
	stats.Applications.Total = stats.Applications.Pending + stats.Applications.Approved + stats.Applications.Rejected

	logQueue := views.LogQueue(dc.stores.Logs.All())
	stats.Logs.Pending = len(logQueue.Pending)
	stats.Logs.Approved = len(logQueue.Approved)
	stats.Logs.Rejected = len(logQueue.Rejected)
	stats.Logs.Total = stats.Logs.Pending + stats.Logs.Approved + stats.Logs.Rejected

	for _, job := range dc.stores.Jobs.All() {
		stats.Jobs.Total++
		if job.Status == models.JobClosed {
			stats.Jobs.Closed++
		} else {
			stats.Jobs.Active++
		}
	}

	dc.mu.Lock()
	dc.stats = stats
	dc.mu.Unlock()
}
