// Package engine is the task lifecycle core: it owns every mutation of the
// task, notification, audit, message and setting stores, enforces the
// authorization policy, and fires notification/audit side effects.
package engine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/DiyaJain6/Task-Bridge/models"
	"github.com/DiyaJain6/Task-Bridge/store"
	"github.com/DiyaJain6/Task-Bridge/utils"
)

type Engine struct {
	users    store.UserStore
	tasks    store.TaskStore
	notifs   store.NotificationStore
	audit    store.AuditStore
	messages store.MessageStore
	settings store.SettingStore

	now func() time.Time
}

func New(users store.UserStore, tasks store.TaskStore, notifs store.NotificationStore,
	audit store.AuditStore, messages store.MessageStore, settings store.SettingStore) *Engine {
	return &Engine{
		users:    users,
		tasks:    tasks,
		notifs:   notifs,
		audit:    audit,
		messages: messages,
		settings: settings,
		now:      time.Now,
	}
}

// resolveActor maps an authenticated principal to a user record. Suspended
// accounts are locked out of every operation.
func (e *Engine) resolveActor(email string) (*models.User, error) {
	u, err := e.users.ByEmail(utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, fmt.Errorf("%w: resolving actor: %v", ErrInternal, err)
	}
	if u.Suspended {
		return nil, fmt.Errorf("%w: account %s is suspended", ErrUnauthorized, u.Email)
	}
	return u, nil
}

func (e *Engine) userByID(id uint) (*models.User, error) {
	u, err := e.users.ByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: loading user: %v", ErrInternal, err)
	}
	return u, nil
}

func (e *Engine) loadTask(id uint) (*models.Task, error) {
	t, err := e.tasks.ByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: task %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: loading task: %v", ErrInternal, err)
	}
	return t, nil
}

// saveTask persists a read-modify-write. A lost version race surfaces as
// Conflict so callers can retry against fresh state.
func (e *Engine) saveTask(t *models.Task) error {
	if err := e.tasks.Save(t); err != nil {
		switch {
		case errors.Is(err, store.ErrVersionConflict):
			return fmt.Errorf("%w: task %d was modified concurrently", ErrConflict, t.ID)
		case errors.Is(err, store.ErrNotFound):
			return fmt.Errorf("%w: task %d", ErrNotFound, t.ID)
		default:
			return fmt.Errorf("%w: saving task: %v", ErrInternal, err)
		}
	}
	return nil
}

// notify is fire-and-forget: a failed write is logged and swallowed, never
// allowed to fail the primary transition.
func (e *Engine) notify(userID uint, title, message string) {
	n := models.Notification{UserID: userID, Title: title, Message: message, CreatedAt: e.now()}
	if err := e.notifs.Record(&n); err != nil {
		log.Printf("notification write failed for user %d: %v", userID, err)
	}
}

// recordAudit is best-effort for the same reason as notify.
func (e *Engine) recordAudit(action, performedBy, details string) {
	entry := models.AuditLog{Action: action, PerformedBy: performedBy, Details: details, CreatedAt: e.now()}
	if err := e.audit.Record(&entry); err != nil {
		log.Printf("audit write failed for action %s: %v", action, err)
	}
}
