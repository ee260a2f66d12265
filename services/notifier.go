package services

import (
	"fmt"
	"log"

	"internship-management-api/config"
	"internship-management-api/models"
	"internship-management-api/store"
)

// Notifier tells students about university decisions: an in-memory
// notification always, and an email when SMTP is configured.
type Notifier struct {
	users         *store.UserStore
	notifications *store.NotificationStore
	sendMail      func(to []string, subject, html string) error
}

func NewNotifier(users *store.UserStore, notifications *store.NotificationStore) *Notifier {
	return &Notifier{
		users:         users,
		notifications: notifications,
		sendMail:      config.SendMail,
	}
}

// NotifyDecision records the outcome of a review decision for the
// student. kind is "application" or "log". Mail failures are logged and
// swallowed; a decision never fails because of the mailer.
func (n *Notifier) NotifyDecision(kind, studentID string, status models.LifecycleStatus) {
	title := "Internship application reviewed"
	if kind == "log" {
		title = "Internship log reviewed"
	}

	noteType := "success"
	verdict := "approved"
	if status == models.StatusRejected {
		noteType = "warning"
		verdict = "rejected"
	}
	message := fmt.Sprintf("Your internship %s has been %s by the university.", kind, verdict)

	n.notifications.Add(models.Notification{
		UserID:  studentID,
		Title:   title,
		Message: message,
		Type:    noteType,
	})

	user, ok := n.users.GetByID(studentID)
	if !ok || user.Email == "" {
		return
	}
	if err := n.sendMail([]string{user.Email}, title, "<p>"+message+"</p>"); err != nil {
		log.Printf("Warning: failed to send decision mail to %s: %v", user.Email, err)
	}
}
