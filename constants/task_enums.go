package constants

const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

const (
	CategoryITSupport   = "IT_SUPPORT"
	CategoryMaintenance = "MAINTENANCE"
	CategoryLogistics   = "LOGISTICS"
	CategorySecurity    = "SECURITY"
	CategoryGeneral     = "GENERAL"
)

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryITSupport, CategoryMaintenance, CategoryLogistics, CategorySecurity, CategoryGeneral:
		return true
	}
	return false
}
