package domain

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

type TaskFilter string

const (
	FilterAll       TaskFilter = "all"
	FilterToday     TaskFilter = "today"
	FilterHigh      TaskFilter = "high"
	FilterCompleted TaskFilter = "completed"
)

// ValidTaskFilters is the canonical set of accepted task filter strings.
var ValidTaskFilters = map[string]bool{
	"all": true, "today": true, "high": true, "completed": true,
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type Schedule string

const (
	// ScheduleDaily is the only schedule currently supported.
	ScheduleDaily Schedule = "daily"
)
