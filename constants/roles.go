package constants

const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleWorker  = "WORKER"
)

func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleWorker
}
