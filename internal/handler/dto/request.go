package dto

// CreateTaskRequest represents the request body for POST /tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"` // RFC 3339
	AssigneeID  string `json:"assignee_id"`
}

// ListTasksFilters represents query parameters for GET /tasks.
type ListTasksFilters struct {
	Mode   string // ?mode=active (default) or history
	Limit  int    // ?limit=50
	Offset int    // ?offset=0
}
