package domain

import "time"

// NotificationCategory represents the kind of lifecycle event a
// notification describes.
type NotificationCategory string

const (
	NotificationTaskAssigned NotificationCategory = "task_assigned"
	NotificationTaskApproved NotificationCategory = "task_approved"
	NotificationTaskRejected NotificationCategory = "task_rejected"
	NotificationReminder     NotificationCategory = "reminder"
)

// Notification is an outbound fact generated by a task transition,
// targeted at a single recipient. The core never mutates a notification
// after creation; only the recipient flips the read flag.
type Notification struct {
	ID          string
	RecipientID string
	Title       string
	Message     string
	Category    NotificationCategory
	IsRead      bool
	CreatedAt   time.Time
}
