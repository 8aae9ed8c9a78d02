package engine

import (
	"fmt"

	"github.com/DiyaJain6/Task-Bridge/constants"
	"github.com/DiyaJain6/Task-Bridge/models"
)

// Operation names one lifecycle transition.
type Operation string

const (
	OpClaim          Operation = "claim"
	OpStart          Operation = "start"
	OpComplete       Operation = "complete"
	OpReject         Operation = "reject"
	OpReRequest      Operation = "rerequest"
	OpReassign       Operation = "reassign"
	OpResolve        Operation = "resolve"
	OpQualityScore   Operation = "quality-score"
	OpBackupAssignee Operation = "backup-assignee"
)

type ownership func(t *models.Task, actor *models.User) bool

// rule grants an operation when the actor holds one of the listed roles, or
// when the ownership predicate passes. An empty rule admits any actor.
type rule struct {
	roles []string
	owner ownership
}

func isAssignee(t *models.Task, actor *models.User) bool {
	return t.AssignedToID != nil && *t.AssignedToID == actor.ID
}

func isCreator(t *models.Task, actor *models.User) bool {
	return t.AssignedByID == actor.ID
}

func isAssigneeOrCreator(t *models.Task, actor *models.User) bool {
	return isAssignee(t, actor) || isCreator(t, actor)
}

// policy is the authorization matrix: operation -> who may perform it.
// Resolve deliberately skips the ownership check that Complete enforces; it
// is the administrative escape hatch.
var policy = map[Operation]rule{
	OpClaim:          {},
	OpStart:          {owner: isAssignee},
	OpComplete:       {roles: []string{constants.RoleAdmin}, owner: isAssigneeOrCreator},
	OpReject:         {roles: []string{constants.RoleManager, constants.RoleAdmin}},
	OpReRequest:      {roles: []string{constants.RoleAdmin}, owner: isCreator},
	OpReassign:       {roles: []string{constants.RoleAdmin}},
	OpResolve:        {roles: []string{constants.RoleAdmin}},
	OpQualityScore:   {roles: []string{constants.RoleManager, constants.RoleAdmin}},
	OpBackupAssignee: {roles: []string{constants.RoleManager, constants.RoleAdmin}},
}

// Authorize decides whether the actor may perform op on the task. Pure: no
// store access, no mutation.
func Authorize(op Operation, t *models.Task, actor *models.User) error {
	r, ok := policy[op]
	if !ok {
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidArgument, op)
	}
	if len(r.roles) == 0 && r.owner == nil {
		return nil
	}
	for _, role := range r.roles {
		if actor.Role == role {
			return nil
		}
	}
	if r.owner != nil && r.owner(t, actor) {
		return nil
	}
	return fmt.Errorf("%w: %s is not allowed to %s this task", ErrUnauthorized, actor.Email, op)
}
