package task

// AssignRequest updates a task's assignment and, optionally, its due
// date in the same call. assignee_id accepts "unassigned" (or null) to
// clear the assignment; due_date accepts null to clear the date.
type AssignRequest struct {
	AssigneeID *string `json:"assignee_id,omitempty"`
	DueDate    *string `json:"due_date,omitempty"`
}

// StatusRequest approves or rejects a submitted task. Comments are
// required for REJECT; the service enforces that.
type StatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=APPROVE REJECT"`
	Comments string `json:"comments"`
}

// EditRequest updates task details. Every field is optional; assignee_id
// accepts "unassigned" (or null) to clear the assignment, and due_date
// accepts null to clear the date.
type EditRequest struct {
	Task       *string `json:"task,omitempty"`
	DueDate    *string `json:"due_date,omitempty"`
	AssigneeID *string `json:"assignee_id,omitempty"`
	Status     *string `json:"status,omitempty" validate:"omitempty,task_status"`
}

// ProofResponse is returned after a proof upload
type ProofResponse struct {
	FileURL string      `json:"file_url"`
	Task    interface{} `json:"task"`
}
