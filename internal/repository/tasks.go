package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"

	"github.com/DuyPhong1504/duyphong-app/internal/models"
)

// TaskFilter is a conjunction; nil fields do not constrain the result.
type TaskFilter struct {
	EmployeeID *string
	Status     *models.TaskStatus
	DueDate    *time.Time
}

func (s *Store) CreateTask(ctx context.Context, task *models.Task) error {
	return errors.Wrap(s.conn(ctx).Omit(clause.Associations).Create(task).Error, "create task")
}

func (s *Store) TaskWithEmployee(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	if err := s.conn(ctx).Preload("Employee.Department").Where("id = ?", id).First(&task).Error; err != nil {
		return nil, wrapLookup(err, "load task")
	}
	return &task, nil
}

// FindTasks returns matching tasks with employee and department attached.
func (s *Store) FindTasks(ctx context.Context, filter TaskFilter) ([]models.Task, error) {
	query := s.conn(ctx).Preload("Employee.Department")
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DueDate != nil {
		query = query.Where("due_date = ?", datatypes.Date(*filter.DueDate))
	}

	var tasks []models.Task
	if err := query.Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, errors.Wrap(err, "find tasks")
	}
	return tasks, nil
}

func (s *Store) TasksByEmployeeAndStatus(ctx context.Context, employeeID string, status models.TaskStatus) ([]models.Task, error) {
	var tasks []models.Task
	err := s.conn(ctx).
		Where("employee_id = ? AND status = ?", employeeID, status).
		Order("due_date ASC, id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, errors.Wrap(err, "load employee tasks")
	}
	return tasks, nil
}

// CountTasksByStatus counts tasks of the department's employees, grouped by
// status. Statuses without tasks are absent from the map.
func (s *Store) CountTasksByStatus(ctx context.Context, departmentID string) (map[models.TaskStatus]int64, error) {
	var rows []struct {
		Status models.TaskStatus
		Total  int64
	}
	err := s.conn(ctx).
		Table("tasks AS t").
		Select("t.status AS status, COUNT(*) AS total").
		Joins("JOIN employees e ON e.id = t.employee_id").
		Where("e.department_id = ?", departmentID).
		Group("t.status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count department tasks")
	}

	counts := make(map[models.TaskStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
