package service

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/DuyPhong1504/duyphong-app/internal/models"
)

func toDate(t time.Time) datatypes.Date {
	return datatypes.Date(truncateToDate(t))
}

func formatDate(d datatypes.Date) string {
	t := time.Time(d)
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func departmentToDTO(department models.Department) DepartmentDTO {
	return DepartmentDTO{
		ID:   department.ID,
		Name: department.Name,
	}
}

func optionalDepartmentToDTO(department *models.Department) *DepartmentDTO {
	if department == nil {
		return nil
	}
	dto := departmentToDTO(*department)
	return &dto
}

func departmentsToDTO(departments []models.Department) []DepartmentDTO {
	result := make([]DepartmentDTO, 0, len(departments))
	for _, department := range departments {
		result = append(result, departmentToDTO(department))
	}
	return result
}

func employeeToDTO(employee models.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:         employee.ID,
		Username:   employee.Username,
		Email:      employee.Email,
		Fullname:   employee.Fullname,
		Department: employee.DepartmentID,
		Position:   employee.Position,
		Salary:     employee.Salary,
		CreatedAt:  employee.CreatedAt,
		UpdatedAt:  employee.UpdatedAt,
	}
}

func employeesToDTO(employees []models.Employee) []EmployeeDTO {
	result := make([]EmployeeDTO, 0, len(employees))
	for _, employee := range employees {
		result = append(result, employeeToDTO(employee))
	}
	return result
}

func employeeSnapshot(employee models.Employee) EmployeeSnapshotDTO {
	return EmployeeSnapshotDTO{
		ID:       employee.ID,
		Fullname: employee.Fullname,
		Email:    employee.Email,
		Position: employee.Position,
		Salary:   employee.Salary,
	}
}

func employeeDetailToDTO(employee models.Employee, ongoing []models.Task) EmployeeDetailDTO {
	tasks := make([]TaskSummaryDTO, 0, len(ongoing))
	for _, task := range ongoing {
		tasks = append(tasks, TaskSummaryDTO{
			ID:          task.ID,
			TaskName:    task.TaskName,
			Description: task.Description,
			DueDate:     formatDate(task.DueDate),
			Status:      task.Status,
		})
	}

	return EmployeeDetailDTO{
		ID:           employee.ID,
		Fullname:     employee.Fullname,
		Email:        employee.Email,
		Position:     employee.Position,
		Salary:       employee.Salary,
		Department:   optionalDepartmentToDTO(employee.Department),
		OngoingTasks: tasks,
	}
}

func taskEmployeeToDTO(employee *models.Employee) *TaskEmployeeDTO {
	if employee == nil {
		return nil
	}
	return &TaskEmployeeDTO{
		ID:         employee.ID,
		Username:   employee.Username,
		Email:      employee.Email,
		Fullname:   employee.Fullname,
		Position:   employee.Position,
		Salary:     employee.Salary,
		Department: optionalDepartmentToDTO(employee.Department),
	}
}

func taskToDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		EmployeeID:  task.EmployeeID,
		TaskName:    task.TaskName,
		Description: task.Description,
		DueDate:     formatDate(task.DueDate),
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		Employee:    taskEmployeeToDTO(task.Employee),
	}
}

func tasksToDTO(tasks []models.Task) []TaskDTO {
	result := make([]TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, taskToDTO(task))
	}
	return result
}

func historyToDTO(history models.DepartmentHistory) DepartmentHistoryDTO {
	newDepartment := DepartmentDTO{ID: history.NewDepartmentID}
	if history.NewDepartment != nil {
		newDepartment = departmentToDTO(*history.NewDepartment)
	}

	oldDepartment := optionalDepartmentToDTO(history.OldDepartment)
	if oldDepartment == nil && history.OldDepartmentID != nil {
		oldDepartment = &DepartmentDTO{ID: *history.OldDepartmentID}
	}

	return DepartmentHistoryDTO{
		ID:            history.ID,
		EmployeeID:    history.EmployeeID,
		OldDepartment: oldDepartment,
		NewDepartment: newDepartment,
		ChangeDate:    history.ChangeDate,
	}
}

// lunchLogInputToModel copies the free-text fields; dates and meal types are
// parsed by validation.
func lunchLogInputToModel(input CreateLunchLogInput) models.LunchLog {
	return models.LunchLog{
		EmployeeID: strings.TrimSpace(input.EmployeeID),
		Restaurant: trimmedOrNil(input.Restaurant),
		Notes:      trimmedOrNil(input.Notes),
	}
}

func lunchLogToDTO(log models.LunchLog) LunchLogDTO {
	return LunchLogDTO{
		ID:         log.ID,
		EmployeeID: log.EmployeeID,
		LunchDate:  formatDate(log.LunchDate),
		MealType:   log.MealType,
		Restaurant: log.Restaurant,
		Notes:      log.Notes,
	}
}
