package controllers

import (
	"net/http"

	"internship-management-api/middleware"
	"internship-management-api/store"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	notifications *store.NotificationStore
}

func NewNotificationController(notifications *store.NotificationStore) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// List returns the logged-in user's notifications.
func (nc *NotificationController) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	items := nc.notifications.ByUser(user.UserID)

	unread := 0
	for _, n := range items {
		if !n.IsRead {
			unread++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": items,
		"unread":        unread,
	})
}

// MarkRead flags one notification as read.
func (nc *NotificationController) MarkRead(c *gin.Context) {
	nc.notifications.MarkRead(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
