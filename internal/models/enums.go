package models

import (
	"fmt"
	"strings"
)

type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "TO_DO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// TaskStatuses returns every defined status in display order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusToDo, TaskStatusInProgress, TaskStatusDone}
}

func ParseTaskStatus(raw string) (TaskStatus, error) {
	return parseEnum("TaskStatus", raw, TaskStatuses())
}

type MealType string

const (
	MealTypeLunch  MealType = "LUNCH"
	MealTypeDinner MealType = "DINNER"
)

func MealTypes() []MealType {
	return []MealType{MealTypeLunch, MealTypeDinner}
}

func ParseMealType(raw string) (MealType, error) {
	return parseEnum("MealType", raw, MealTypes())
}

// EnumError reports a value outside a closed set. Its message is the single
// canonical wording shared by every enum.
type EnumError struct {
	Type    string
	Value   string
	Allowed []string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("Invalid value '%s' for %s. Must be one of: [%s] (case-insensitive)",
		e.Value, e.Type, strings.Join(e.Allowed, ", "))
}

func parseEnum[T ~string](typeName string, raw string, values []T) (T, error) {
	value := strings.TrimSpace(raw)
	for _, candidate := range values {
		if strings.EqualFold(string(candidate), value) {
			return candidate, nil
		}
	}

	allowed := make([]string, 0, len(values))
	for _, candidate := range values {
		allowed = append(allowed, string(candidate))
	}

	var zero T
	return zero, &EnumError{Type: typeName, Value: raw, Allowed: allowed}
}
