package store

import (
	"errors"

	"github.com/DiyaJain6/Task-Bridge/models"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrVersionConflict = errors.New("record version conflict")
)

// UserStore is the identity directory. Email lookups are case-insensitive
// against the stored value; callers pass trimmed input.
type UserStore interface {
	ByEmail(email string) (*models.User, error)
	ByID(id uint) (*models.User, error)
	List() ([]models.User, error)
	Save(u *models.User) error
	Delete(id uint) error
}

// TaskStore holds task records. Save creates when ID is zero; otherwise it
// applies an optimistic version check and fails with ErrVersionConflict if
// the stored row has moved on. On success the task's Version is bumped.
type TaskStore interface {
	ByID(id uint) (*models.Task, error)
	Save(t *models.Task) error
	List() ([]models.Task, error)
	ByAssignee(userID uint) ([]models.Task, error)
	ByCreator(userID uint) ([]models.Task, error)
	Unassigned() ([]models.Task, error)
	// ReferencingUser counts tasks holding the user as creator, assignee
	// or backup assignee.
	ReferencingUser(userID uint) (int64, error)
}

// NotificationStore is an append-only sink; the read flag is the only
// mutation after the fact.
type NotificationStore interface {
	Record(n *models.Notification) error
	ByUser(userID uint) ([]models.Notification, error) // newest first
	UnreadCount(userID uint) (int64, error)
	MarkRead(id uint) error
}

// AuditStore is append-only.
type AuditStore interface {
	Record(e *models.AuditLog) error
	List() ([]models.AuditLog, error) // newest first
}

type MessageStore interface {
	Record(m *models.ChatMessage) error
	ForUser(userID uint) ([]models.ChatMessage, error) // oldest first
}

// SettingStore upserts by setting key.
type SettingStore interface {
	Save(s *models.SystemSetting) error
	List() ([]models.SystemSetting, error)
}
