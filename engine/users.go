package engine

import (
	"fmt"

	"github.com/DiyaJain6/Task-Bridge/constants"
	"github.com/DiyaJain6/Task-Bridge/models"
)

// User administration. Routed through the engine so every audited action has
// a single enforcement point.

// UpdateUserRole changes a user's role and audits the change.
func (e *Engine) UpdateUserRole(actorEmail string, userID uint, role string) (*models.User, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	if actor.Role != constants.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins may change roles", ErrUnauthorized)
	}
	if !constants.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, role)
	}
	user, err := e.userByID(userID)
	if err != nil {
		return nil, err
	}

	oldRole := user.Role
	user.Role = role
	if err := e.users.Save(user); err != nil {
		return nil, fmt.Errorf("%w: saving user: %v", ErrInternal, err)
	}
	e.recordAudit(constants.AuditUpdateRole, actor.Email,
		fmt.Sprintf("Updated user %s from %s to %s", user.Email, oldRole, role))
	return user, nil
}

// ToggleUserStatus flips the suspension flag and audits accordingly.
func (e *Engine) ToggleUserStatus(actorEmail string, userID uint) (*models.User, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	if actor.Role != constants.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins may suspend users", ErrUnauthorized)
	}
	user, err := e.userByID(userID)
	if err != nil {
		return nil, err
	}

	user.Suspended = !user.Suspended
	if err := e.users.Save(user); err != nil {
		return nil, fmt.Errorf("%w: saving user: %v", ErrInternal, err)
	}
	action := constants.AuditActivateUser
	verb := "Activated"
	if user.Suspended {
		action = constants.AuditSuspendUser
		verb = "Suspended"
	}
	e.recordAudit(action, actor.Email, fmt.Sprintf("%s user %s", verb, user.Email))
	return user, nil
}

// DeleteUser removes a user. Deletion is refused with Conflict while any
// task still references the user as creator, assignee or backup, so task
// records never hold dangling references.
func (e *Engine) DeleteUser(actorEmail string, userID uint) error {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return err
	}
	if actor.Role != constants.RoleAdmin {
		return fmt.Errorf("%w: only admins may delete users", ErrUnauthorized)
	}
	user, err := e.userByID(userID)
	if err != nil {
		return err
	}

	refs, err := e.tasks.ReferencingUser(user.ID)
	if err != nil {
		return fmt.Errorf("%w: checking task references: %v", ErrInternal, err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: user %s is still referenced by %d task(s)", ErrConflict, user.Email, refs)
	}

	if err := e.users.Delete(user.ID); err != nil {
		return fmt.Errorf("%w: deleting user: %v", ErrInternal, err)
	}
	e.recordAudit(constants.AuditDeleteUser, actor.Email, fmt.Sprintf("Deleted user %s", user.Email))
	return nil
}

// UpdateAvailability lets a user flag themselves available/away with an
// optional status line.
func (e *Engine) UpdateAvailability(actorEmail string, available *bool, status *string) (*models.User, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	if available != nil {
		actor.Available = *available
	}
	if status != nil {
		actor.AvailabilityStatus = *status
	}
	if err := e.users.Save(actor); err != nil {
		return nil, fmt.Errorf("%w: saving user: %v", ErrInternal, err)
	}
	return actor, nil
}
