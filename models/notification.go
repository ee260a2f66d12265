package models

import "time"

type Notification struct {
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"type"` // info|success|warning|error
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}
