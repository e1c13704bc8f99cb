package dto

import (
	"time"

	"github.com/azgroup/delega/internal/domain"
)

// TaskResponse represents a task in API responses. DeadlineState is
// derived from the deadline and the current time on every render; it is
// never stored.
type TaskResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Deadline      time.Time `json:"deadline"`
	CreatorID     string    `json:"creator_id"`
	AssigneeID    string    `json:"assignee_id"`
	Status        string    `json:"status"`
	DeadlineState string    `json:"deadline_state"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TasksListResponse represents the response for GET /tasks.
type TasksListResponse struct {
	Tasks  []TaskResponse `json:"tasks"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// TransitionResponse represents the outcome of a lifecycle action: the
// new task snapshot and the notifications the transition produced.
type TransitionResponse struct {
	Task          TaskResponse           `json:"task"`
	Notifications []NotificationResponse `json:"notifications"`
}

// NotificationResponse represents a notification in API responses.
type NotificationResponse struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Category    string    `json:"category"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

// NotificationsListResponse represents the response for GET /notifications.
type NotificationsListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ActorResponse represents an actor in API responses. The token never
// leaves the server.
type ActorResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	RoleLevel int    `json:"role_level"`
}

// ActorsListResponse represents the response for GET /actors/assignable.
type ActorsListResponse struct {
	Actors []ActorResponse `json:"actors"`
}

// StatsResponse represents the dashboard counters for GET /stats.
type StatsResponse struct {
	TasksByStatus         map[string]int `json:"tasks_by_status"`
	OverdueCount          int            `json:"overdue_count"`
	CompletionRatePercent float64        `json:"completion_rate_percent"`
}

// ToTaskResponse converts domain.Task to TaskResponse, deriving the
// deadline classification at the given time.
func ToTaskResponse(task *domain.Task, now time.Time) TaskResponse {
	return TaskResponse{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		Deadline:      task.Deadline,
		CreatorID:     task.CreatorID,
		AssigneeID:    task.AssigneeID,
		Status:        string(task.Status),
		DeadlineState: string(task.DeadlineStateAt(now)),
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}
}

// ToNotificationResponse converts domain.Notification to NotificationResponse.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Title:       n.Title,
		Message:     n.Message,
		Category:    string(n.Category),
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
	}
}

// ToActorResponse converts domain.Actor to ActorResponse.
func ToActorResponse(actor *domain.Actor) ActorResponse {
	return ActorResponse{
		ID:        actor.ID,
		Username:  actor.Username,
		FullName:  actor.FullName,
		RoleLevel: actor.RoleLevel,
	}
}

// ToTransitionResponse converts an engine result to the API shape.
func ToTransitionResponse(task *domain.Task, notifications []*domain.Notification, now time.Time) TransitionResponse {
	resp := TransitionResponse{
		Task:          ToTaskResponse(task, now),
		Notifications: make([]NotificationResponse, len(notifications)),
	}
	for i, n := range notifications {
		resp.Notifications[i] = ToNotificationResponse(n)
	}
	return resp
}
