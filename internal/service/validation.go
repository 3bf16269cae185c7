package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/DuyPhong1504/duyphong-app/internal/apperror"
	"github.com/DuyPhong1504/duyphong-app/internal/models"
	"github.com/DuyPhong1504/duyphong-app/internal/repository"
)

const (
	dateLayout = "2006-01-02"

	maxLunchLogsPerRequest = 100

	msgRequestInvalid = "Request validation failed"
	msgPatchEmpty     = "At least one field (fullname, position, or salary) must be provided for update"
	msgFilterEmpty    = "At least one filter (employee_id, status, or due_date) must be provided"
)

var (
	validate          = newValidator()
	personNamePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// fieldErrors collects the first failure per field.
type fieldErrors map[string]string

func (f fieldErrors) check(field string, value interface{}, tag string, message string) {
	if _, failed := f[field]; failed {
		return
	}
	if err := validate.Var(value, tag); err != nil {
		f[field] = message
	}
}

func (f fieldErrors) add(field string, message string) {
	if _, failed := f[field]; !failed {
		f[field] = message
	}
}

func (f fieldErrors) toError() error {
	if len(f) == 0 {
		return nil
	}
	return apperror.Validation(msgRequestInvalid, apperror.Fields(f))
}

func parseDate(raw string) (time.Time, bool) {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func enumMessage(err error) string {
	var enumErr *models.EnumError
	if errors.As(err, &enumErr) {
		return enumErr.Error()
	}
	return err.Error()
}

func validateDepartmentName(raw string) (string, error) {
	name := strings.TrimSpace(raw)

	errs := fieldErrors{}
	errs.check("name", name, "required", "Department name is required")
	errs.check("name", name, "max=255", "Department name cannot exceed 255 characters")
	return name, errs.toError()
}

func validateEmployeePatch(input UpdateEmployeeInput) error {
	if input.Fullname == nil && input.Position == nil && input.Salary == nil {
		return apperror.Validation(msgPatchEmpty, nil)
	}

	errs := fieldErrors{}
	if input.Fullname != nil {
		errs.check("fullname", *input.Fullname, "min=2,max=255", "Full name must be between 2 and 255 characters")
		errs.check("fullname", *input.Fullname, "personname", "Full name can only contain letters and spaces")
	}
	if input.Position != nil {
		errs.check("position", *input.Position, "min=2,max=255", "Position must be between 2 and 255 characters")
	}
	if input.Salary != nil {
		errs.check("salary", *input.Salary, "min=0", "Salary must be greater than or equal to 0")
		errs.check("salary", *input.Salary, "max=999999999", "Salary must not exceed 999,999,999")
	}
	return errs.toError()
}

func validateTransfer(input TransferDepartmentInput) (string, error) {
	departmentID := strings.TrimSpace(input.NewDepartmentID)

	errs := fieldErrors{}
	errs.check("newDepartmentId", departmentID, "required", "New department ID cannot be blank")
	errs.check("newDepartmentId", departmentID, "max=255", "New department ID must be between 1 and 255 characters")
	return departmentID, errs.toError()
}

// validateCreateTask returns the task to persist; today is the current UTC date.
func validateCreateTask(input CreateTaskInput, today time.Time) (models.Task, error) {
	task := models.Task{
		EmployeeID:  strings.TrimSpace(input.EmployeeID),
		TaskName:    strings.TrimSpace(input.TaskName),
		Description: strings.TrimSpace(input.Description),
		Status:      models.TaskStatusToDo,
	}

	errs := fieldErrors{}
	errs.check("employeeId", task.EmployeeID, "required", "Employee ID cannot be blank")
	errs.check("employeeId", task.EmployeeID, "max=255", "Employee ID cannot exceed 255 characters")
	errs.check("taskName", task.TaskName, "required", "Task name cannot be blank")
	errs.check("taskName", task.TaskName, "max=255", "Task name cannot exceed 255 characters")
	errs.check("description", task.Description, "required", "Description cannot be blank")
	errs.check("description", task.Description, "max=1000", "Description cannot exceed 1000 characters")

	if strings.TrimSpace(input.DueDate) == "" {
		errs.add("dueDate", "Due date cannot be null. Please use format: yyyy-MM-dd (e.g., 2025-12-31)")
	} else if due, ok := parseDate(input.DueDate); !ok {
		errs.add("dueDate", "Due date must use format yyyy-MM-dd (e.g., 2025-12-31)")
	} else if !due.After(today) {
		errs.add("dueDate", "Due date must be in the future")
	} else {
		task.DueDate = toDate(due)
	}

	return task, errs.toError()
}

func validateTaskFilter(input TaskFilterInput) (repository.TaskFilter, error) {
	if input.EmployeeID == nil && input.Status == nil && input.DueDate == nil {
		return repository.TaskFilter{}, apperror.Validation(msgFilterEmpty, nil)
	}

	var filter repository.TaskFilter
	errs := fieldErrors{}

	if input.EmployeeID != nil {
		employeeID := strings.TrimSpace(*input.EmployeeID)
		errs.check("employee_id", employeeID, "max=255", "Employee ID cannot exceed 255 characters")
		filter.EmployeeID = &employeeID
	}
	if input.Status != nil {
		status, err := models.ParseTaskStatus(*input.Status)
		if err != nil {
			errs.add("status", enumMessage(err))
		} else {
			filter.Status = &status
		}
	}
	if input.DueDate != nil {
		due, ok := parseDate(*input.DueDate)
		if !ok {
			errs.add("due_date", "Due date must use format yyyy-MM-dd (e.g., 2025-12-31)")
		} else {
			filter.DueDate = &due
		}
	}

	return filter, errs.toError()
}

func validateBulkLunchLogs(input BulkCreateLunchLogInput) ([]models.LunchLog, error) {
	errs := fieldErrors{}
	switch {
	case len(input.LunchLogs) == 0:
		errs.add("lunchLogs", "Lunch logs list cannot be empty")
	case len(input.LunchLogs) > maxLunchLogsPerRequest:
		errs.add("lunchLogs", fmt.Sprintf("Cannot process more than %d lunch logs at once", maxLunchLogsPerRequest))
	}
	if err := errs.toError(); err != nil {
		return nil, err
	}

	logs := make([]models.LunchLog, 0, len(input.LunchLogs))
	for i, entry := range input.LunchLogs {
		prefix := fmt.Sprintf("lunchLogs[%d].", i)
		log := lunchLogInputToModel(entry)

		errs.check(prefix+"employeeId", log.EmployeeID, "required", "Employee ID cannot be blank")
		errs.check(prefix+"employeeId", log.EmployeeID, "max=255", "Employee ID cannot exceed 255 characters")

		if strings.TrimSpace(entry.LunchDate) == "" {
			errs.add(prefix+"lunchDate", "Lunch date cannot be null. Please use format: yyyy-MM-dd (e.g., 2025-09-17)")
		} else if lunchDate, ok := parseDate(entry.LunchDate); !ok {
			errs.add(prefix+"lunchDate", "Lunch date must use format yyyy-MM-dd (e.g., 2025-09-17)")
		} else {
			log.LunchDate = toDate(lunchDate)
		}

		if strings.TrimSpace(entry.MealType) == "" {
			errs.add(prefix+"mealType", "Meal type cannot be null")
		} else if mealType, err := models.ParseMealType(entry.MealType); err != nil {
			errs.add(prefix+"mealType", enumMessage(err))
		} else {
			log.MealType = mealType
		}

		if log.Restaurant != nil {
			errs.check(prefix+"restaurant", *log.Restaurant, "max=255", "Restaurant name cannot exceed 255 characters")
		}
		if log.Notes != nil {
			errs.check(prefix+"notes", *log.Notes, "max=1000", "Notes cannot exceed 1000 characters")
		}

		logs = append(logs, log)
	}

	if err := errs.toError(); err != nil {
		return nil, err
	}
	return logs, nil
}
