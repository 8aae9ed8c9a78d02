package engine

import (
	"fmt"

	"github.com/DiyaJain6/Task-Bridge/constants"
	"github.com/DiyaJain6/Task-Bridge/models"
)

type CreateTaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Deadline    string `json:"deadline"`
	AssigneeID  *uint  `json:"assigned_to_id"`
}

// CreateTask files a new request on behalf of the actor. The task starts in
// PENDING; a supplied assignee must resolve to an existing user.
func (e *Engine) CreateTask(actorEmail string, in CreateTaskInput) (*models.Task, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}
	if in.Priority == "" {
		in.Priority = constants.PriorityMedium
	}
	if !constants.ValidPriority(in.Priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidArgument, in.Priority)
	}
	if in.Category == "" {
		in.Category = constants.CategoryGeneral
	}
	if !constants.ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidArgument, in.Category)
	}

	task := models.Task{
		Title:        in.Title,
		Description:  in.Description,
		Priority:     in.Priority,
		Category:     in.Category,
		Deadline:     in.Deadline,
		Status:       constants.TaskStatusPending,
		AssignedByID: actor.ID,
		CreatedAt:    e.now(),
	}
	if in.AssigneeID != nil {
		if _, err := e.userByID(*in.AssigneeID); err != nil {
			return nil, err
		}
		task.AssignedToID = in.AssigneeID
		now := e.now()
		task.AssignedAt = &now
	}

	if err := e.saveTask(&task); err != nil {
		return nil, err
	}
	e.notify(actor.ID, "Task Created",
		fmt.Sprintf("Your request %q has been submitted successfully.", task.Title))
	return &task, nil
}

// ClaimTask lets any agent take an unassigned task. Exactly one of two
// racing claims wins; the loser gets Conflict from the version check.
func (e *Engine) ClaimTask(actorEmail string, taskID uint, plan string) (*models.Task, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	task, err := e.loadTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(OpClaim, task, actor); err != nil {
		return nil, err
	}
	if task.AssignedToID != nil {
		return nil, fmt.Errorf("%w: task %d is already assigned", ErrConflict, taskID)
	}

	now := e.now()
	task.AssignedToID = &actor.ID
	task.AssignedAt = &now
	task.Status = constants.TaskStatusPending
	if plan != "" {
		task.ToDoPlan = plan
	}

	if err := e.saveTask(task); err != nil {
		return nil, err
	}
	e.notify(task.AssignedByID, "Assigned to Agent",
		fmt.Sprintf("Field Agent %s has accepted your mission: %s", actor.Name, task.Title))
	return task, nil
}

// StartTask moves a task the actor is assigned to into IN_PROGRESS.
func (e *Engine) StartTask(actorEmail string, taskID uint) (*models.Task, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	task, err := e.loadTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(OpStart, task, actor); err != nil {
		return nil, err
	}

	now := e.now()
	task.Status = constants.TaskStatusInProgress
	task.StartedAt = &now

	if err := e.saveTask(task); err != nil {
		return nil, err
	}
	e.notify(task.AssignedByID, "Operation Started",
		fmt.Sprintf("Field Agent %s has started %q.", actor.Name, task.Title))
	return task, nil
}

// CompleteTask finalizes a task. Assignee, creator or an admin may complete;
// feedback and proof are attached when supplied.
func (e *Engine) CompleteTask(actorEmail string, taskID uint, feedback, proof *string) (*models.Task, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	task, err := e.loadTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(OpComplete, task, actor); err != nil {
		return nil, err
	}

	now := e.now()
	task.Status = constants.TaskStatusCompleted
	task.CompletedAt = &now
	if feedback != nil {
		task.Feedback = *feedback
	}
	if proof != nil {
		task.CompletionProof = *proof
	}

	if err := e.saveTask(task); err != nil {
		return nil, err
	}
	e.notify(task.AssignedByID, "Task Complete",
		fmt.Sprintf("Your request %q has been finalized and verified.", task.Title))
	return task, nil
}

// RejectTask is a manager/admin decision; the reason travels to the creator.
func (e *Engine) RejectTask(actorEmail string, taskID uint, reason string) (*models.Task, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	task, err := e.loadTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(OpReject, task, actor); err != nil {
		return nil, err
	}

	task.Status = constants.TaskStatusRejected
	task.RejectionReason = reason

	if err := e.saveTask(task); err != nil {
		return nil, err
	}
	e.notify(task.AssignedByID, "Task Rejected",
		fmt.Sprintf("Your request %q was rejected. Reason: %s", task.Title, reason))
	return task, nil
}

// ReRequestTask re-opens a completed or rejected task: back to PENDING with
// the completion record cleared. Idempotent until the next transition.
func (e *Engine) ReRequestTask(actorEmail string, taskID uint) (*models.Task, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	task, err := e.loadTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(OpReRequest, task, actor); err != nil {
		return nil, err
	}

	task.Status = constants.TaskStatusPending
	task.CompletedAt = nil
	task.Feedback = ""

	if err := e.saveTask(task); err != nil {
		return nil, err
	}
	return task, nil
}

// ReassignTask is an admin override replacing the assignee; the swap is
// recorded in the audit log.
func (e *Engine) ReassignTask(actorEmail string, taskID uint, newAssigneeID uint) (*models.Task, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	task, err := e.loadTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(OpReassign, task, actor); err != nil {
		return nil, err
	}
	assignee, err := e.userByID(newAssigneeID)
	if err != nil {
		return nil, err
	}

	oldAssignee := "none"
	if task.AssignedToID != nil {
		if old, err := e.users.ByID(*task.AssignedToID); err == nil {
			oldAssignee = old.Email
		}
	}

	task.AssignedToID = &assignee.ID
	task.Status = constants.TaskStatusPending

	if err := e.saveTask(task); err != nil {
		return nil, err
	}
	e.recordAudit(constants.AuditReassignTask, actor.Email,
		fmt.Sprintf("Reassigned task '%s' from %s to %s", task.Title, oldAssignee, assignee.Email))
	return task, nil
}

// ResolveTask marks a task COMPLETED without the ownership check Complete
// enforces. Admin escape hatch; audited.
func (e *Engine) ResolveTask(actorEmail string, taskID uint) (*models.Task, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	task, err := e.loadTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(OpResolve, task, actor); err != nil {
		return nil, err
	}

	task.Status = constants.TaskStatusCompleted

	if err := e.saveTask(task); err != nil {
		return nil, err
	}
	e.recordAudit(constants.AuditResolveTask, actor.Email,
		fmt.Sprintf("Administratively resolved task '%s'", task.Title))
	return task, nil
}

// SetQualityScore records a 1-5 review on a task and notifies the creator.
func (e *Engine) SetQualityScore(actorEmail string, taskID uint, score int) (*models.Task, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	task, err := e.loadTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(OpQualityScore, task, actor); err != nil {
		return nil, err
	}
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("%w: score must be between 1 and 5", ErrInvalidArgument)
	}

	task.QualityScore = &score

	if err := e.saveTask(task); err != nil {
		return nil, err
	}
	e.notify(task.AssignedByID, "Quality Review",
		fmt.Sprintf("Your task %q received a quality score of %d/5.", task.Title, score))
	return task, nil
}

// SetBackupAssignee attaches an informational secondary assignee and lets
// them know.
func (e *Engine) SetBackupAssignee(actorEmail string, taskID uint, backupID uint) (*models.Task, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	task, err := e.loadTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(OpBackupAssignee, task, actor); err != nil {
		return nil, err
	}
	backup, err := e.userByID(backupID)
	if err != nil {
		return nil, err
	}

	task.BackupAssigneeID = &backup.ID

	if err := e.saveTask(task); err != nil {
		return nil, err
	}
	e.notify(backup.ID, "Backup Assignment",
		fmt.Sprintf("You have been set as the backup assignee for task %q.", task.Title))
	return task, nil
}

// ListTasks is the role-scoped overview: admins and managers see everything,
// workers see the requests they filed.
func (e *Engine) ListTasks(actorEmail string) ([]models.Task, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	var tasks []models.Task
	if actor.Role == constants.RoleAdmin || actor.Role == constants.RoleManager {
		tasks, err = e.tasks.List()
	} else {
		tasks, err = e.tasks.ByCreator(actor.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: listing tasks: %v", ErrInternal, err)
	}
	return tasks, nil
}

// AssignedTasks lists the actor's own workload.
func (e *Engine) AssignedTasks(actorEmail string) ([]models.Task, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	tasks, err := e.tasks.ByAssignee(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing assigned tasks: %v", ErrInternal, err)
	}
	return tasks, nil
}

// ClaimableTasks lists unassigned tasks open for claiming.
func (e *Engine) ClaimableTasks(actorEmail string) ([]models.Task, error) {
	if _, err := e.resolveActor(actorEmail); err != nil {
		return nil, err
	}
	tasks, err := e.tasks.Unassigned()
	if err != nil {
		return nil, fmt.Errorf("%w: listing claimable tasks: %v", ErrInternal, err)
	}
	return tasks, nil
}
