package constants

// Audit action tags. The audit log only ever carries one of these.
const (
	AuditUpdateSetting = "UPDATE_SETTING"
	AuditReassignTask  = "REASSIGN_TASK"
	AuditResolveTask   = "RESOLVE_TASK"
	AuditUpdateRole    = "UPDATE_ROLE"
	AuditSuspendUser   = "SUSPEND_USER"
	AuditActivateUser  = "ACTIVATE_USER"
	AuditDeleteUser    = "DELETE_USER"
)
