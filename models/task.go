package models

import "time"

type Task struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Deadline    string `json:"deadline"`
	Status      string `gorm:"default:'PENDING'" json:"status"`

	Feedback        string `json:"feedback"`
	RejectionReason string `json:"rejection_reason"`
	ToDoPlan        string `json:"to_do_plan"`
	CompletionProof string `json:"completion_proof"`
	QualityScore    *int   `json:"quality_score"`

	AssignedByID     uint  `json:"assigned_by_id"`
	AssignedToID     *uint `json:"assigned_to_id"`
	BackupAssigneeID *uint `json:"backup_assignee_id"`

	CreatedAt   time.Time  `json:"created_at"`
	AssignedAt  *time.Time `json:"assigned_at"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`

	// Version backs the optimistic per-task concurrency check; bumped on
	// every successful save.
	Version uint `gorm:"default:1" json:"version"`
}
