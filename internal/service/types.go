package service

import (
	"context"
	"time"

	"github.com/DuyPhong1504/duyphong-app/internal/models"
)

type CreateDepartmentInput struct {
	Name string
}

// UpdateEmployeeInput is a patch: nil fields are left unchanged.
type UpdateEmployeeInput struct {
	Fullname *string
	Position *string
	Salary   *int
}

type TransferDepartmentInput struct {
	NewDepartmentID string
}

type CreateTaskInput struct {
	EmployeeID  string
	TaskName    string
	Description string
	DueDate     string // yyyy-MM-dd
}

// TaskFilterInput holds the raw listing filters; nil means not supplied.
type TaskFilterInput struct {
	EmployeeID *string
	Status     *string
	DueDate    *string
}

type CreateLunchLogInput struct {
	EmployeeID string
	LunchDate  string // yyyy-MM-dd
	MealType   string
	Restaurant *string
	Notes      *string
}

type BulkCreateLunchLogInput struct {
	LunchLogs []CreateLunchLogInput
}

type DepartmentDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DepartmentAverageSalaryDTO struct {
	DepartmentName string   `json:"departmentName"`
	AverageSalary  *float64 `json:"averageSalary"`
}

type DepartmentStatisticsDTO struct {
	DepartmentID       string                      `json:"departmentId"`
	DepartmentName     string                      `json:"departmentName"`
	TotalEmployees     int64                       `json:"totalEmployees"`
	AverageSalary      float64                     `json:"averageSalary"`
	TaskCountsByStatus map[models.TaskStatus]int64 `json:"taskCountsByStatus"`
	NewEmployees       []EmployeeDTO               `json:"newEmployees"`
}

type EmployeeDTO struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Fullname   string    `json:"fullname"`
	Department *string   `json:"department"`
	Position   *string   `json:"position"`
	Salary     *int      `json:"salary"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type EmployeeDetailDTO struct {
	ID           string           `json:"id"`
	Fullname     string           `json:"fullname"`
	Email        string           `json:"email"`
	Position     *string          `json:"position"`
	Salary       *int             `json:"salary"`
	Department   *DepartmentDTO   `json:"department"`
	OngoingTasks []TaskSummaryDTO `json:"ongoingTasks"`
}

type EmployeeSnapshotDTO struct {
	ID       string  `json:"id"`
	Fullname string  `json:"fullname"`
	Email    string  `json:"email"`
	Position *string `json:"position"`
	Salary   *int    `json:"salary"`
}

type DepartmentTransferDTO struct {
	Employee      EmployeeSnapshotDTO `json:"employee"`
	OldDepartment *DepartmentDTO      `json:"oldDepartment"`
	NewDepartment DepartmentDTO       `json:"newDepartment"`
	ChangeDate    time.Time           `json:"changeDate"`
	Message       string              `json:"message"`
}

type DepartmentHistoryDTO struct {
	ID            uint           `json:"id"`
	EmployeeID    string         `json:"employeeId"`
	OldDepartment *DepartmentDTO `json:"oldDepartment"`
	NewDepartment DepartmentDTO  `json:"newDepartment"`
	ChangeDate    time.Time      `json:"changeDate"`
}

type TaskSummaryDTO struct {
	ID          uint              `json:"id"`
	TaskName    string            `json:"taskName"`
	Description string            `json:"description"`
	DueDate     string            `json:"dueDate"`
	Status      models.TaskStatus `json:"status"`
}

type TaskEmployeeDTO struct {
	ID         string         `json:"id"`
	Username   string         `json:"username"`
	Email      string         `json:"email"`
	Fullname   string         `json:"fullname"`
	Position   *string        `json:"position"`
	Salary     *int           `json:"salary"`
	Department *DepartmentDTO `json:"department"`
}

type TaskDTO struct {
	ID          uint              `json:"id"`
	EmployeeID  string            `json:"employeeId"`
	TaskName    string            `json:"taskName"`
	Description string            `json:"description"`
	DueDate     string            `json:"dueDate"`
	Status      models.TaskStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	Employee    *TaskEmployeeDTO  `json:"employee"`
}

type LunchLogDTO struct {
	ID         uint            `json:"id"`
	EmployeeID string          `json:"employeeId"`
	LunchDate  string          `json:"lunchDate"`
	MealType   models.MealType `json:"mealType"`
	Restaurant *string         `json:"restaurant"`
	Notes      *string         `json:"notes"`
}

type BulkCreateLunchLogDTO struct {
	TotalCreated int           `json:"totalCreated"`
	LunchLogs    []LunchLogDTO `json:"lunchLogs"`
	Message      string        `json:"message"`
}

type DepartmentManager interface {
	ListDepartments(ctx context.Context) ([]DepartmentDTO, error)
	CreateDepartment(ctx context.Context, input CreateDepartmentInput) (DepartmentDTO, error)
	AverageSalaries(ctx context.Context) ([]DepartmentAverageSalaryDTO, error)
	GetStatistics(ctx context.Context, departmentID string) (DepartmentStatisticsDTO, error)
}

type EmployeeManager interface {
	GetEmployee(ctx context.Context, employeeID string) (EmployeeDTO, error)
	GetEmployeeDetail(ctx context.Context, employeeID string) (EmployeeDetailDTO, error)
	UpdateEmployee(ctx context.Context, employeeID string, input UpdateEmployeeInput) (EmployeeDTO, error)
	TransferDepartment(ctx context.Context, employeeID string, input TransferDepartmentInput) (DepartmentTransferDTO, error)
	DepartmentHistory(ctx context.Context, employeeID string) ([]DepartmentHistoryDTO, error)
}

type TaskManager interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (TaskDTO, error)
	ListTasks(ctx context.Context, filter TaskFilterInput) ([]TaskDTO, error)
}

type LunchLogManager interface {
	CreateLunchLogs(ctx context.Context, input BulkCreateLunchLogInput) (BulkCreateLunchLogDTO, error)
}
