package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"github.com/DuyPhong1504/duyphong-app/internal/models"
)

// EmployeeFields is a column-level patch; nil fields are left untouched.
type EmployeeFields struct {
	Fullname *string
	Position *string
	Salary   *int
}

func (s *Store) EmployeeByID(ctx context.Context, id string) (*models.Employee, error) {
	var employee models.Employee
	if err := s.conn(ctx).Where("id = ?", id).First(&employee).Error; err != nil {
		return nil, wrapLookup(err, "load employee")
	}
	return &employee, nil
}

func (s *Store) EmployeeWithDepartment(ctx context.Context, id string) (*models.Employee, error) {
	var employee models.Employee
	if err := s.conn(ctx).Preload("Department").Where("id = ?", id).First(&employee).Error; err != nil {
		return nil, wrapLookup(err, "load employee with department")
	}
	return &employee, nil
}

// LockEmployee loads the employee and its department with a row lock held
// until the surrounding transaction ends. Outside a transaction the lock is
// released immediately.
func (s *Store) LockEmployee(ctx context.Context, id string) (*models.Employee, error) {
	var employee models.Employee
	err := s.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Department").
		Where("id = ?", id).
		First(&employee).Error
	if err != nil {
		return nil, wrapLookup(err, "lock employee")
	}
	return &employee, nil
}

// MissingEmployeeIDs returns the ids, in input order, that match no employee.
func (s *Store) MissingEmployeeIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []string
	if err := s.conn(ctx).Model(&models.Employee{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, errors.Wrap(err, "check employees exist")
	}

	known := make(map[string]struct{}, len(found))
	for _, id := range found {
		known[id] = struct{}{}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
			known[id] = struct{}{}
		}
	}
	return missing, nil
}

// UpdateEmployeeFields writes only the columns present in fields, so
// concurrent writers of other columns (department_id) are never clobbered.
func (s *Store) UpdateEmployeeFields(ctx context.Context, id string, fields EmployeeFields) error {
	updates := map[string]interface{}{}
	if fields.Fullname != nil {
		updates["fullname"] = *fields.Fullname
	}
	if fields.Position != nil {
		updates["position"] = *fields.Position
	}
	if fields.Salary != nil {
		updates["salary"] = *fields.Salary
	}
	if len(updates) == 0 {
		return nil
	}

	result := s.conn(ctx).Model(&models.Employee{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "update employee")
	}
	if result.RowsAffected == 0 {
		return errors.Wrap(ErrNotFound, "update employee")
	}
	return nil
}

func (s *Store) SetEmployeeDepartment(ctx context.Context, id string, departmentID string) error {
	result := s.conn(ctx).Model(&models.Employee{}).Where("id = ?", id).Update("department_id", departmentID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "update employee department")
	}
	if result.RowsAffected == 0 {
		return errors.Wrap(ErrNotFound, "update employee department")
	}
	return nil
}

func (s *Store) CountEmployeesInDepartment(ctx context.Context, departmentID string) (int64, error) {
	var count int64
	if err := s.conn(ctx).Model(&models.Employee{}).Where("department_id = ?", departmentID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count department employees")
	}
	return count, nil
}

// AverageSalaryInDepartment averages non-null salaries; ok is false when the
// department has no salaried employee.
func (s *Store) AverageSalaryInDepartment(ctx context.Context, departmentID string) (avg float64, ok bool, err error) {
	var result sql.NullFloat64
	err = s.conn(ctx).
		Model(&models.Employee{}).
		Select("CAST(AVG(salary) AS FLOAT)").
		Where("department_id = ? AND salary IS NOT NULL", departmentID).
		Row().
		Scan(&result)
	if err != nil {
		return 0, false, errors.Wrap(err, "average department salary")
	}
	return result.Float64, result.Valid, nil
}

func (s *Store) EmployeesCreatedSince(ctx context.Context, departmentID string, since time.Time) ([]models.Employee, error) {
	var employees []models.Employee
	err := s.conn(ctx).
		Where("department_id = ? AND created_at >= ?", departmentID, since).
		Order("created_at DESC").
		Find(&employees).Error
	if err != nil {
		return nil, errors.Wrap(err, "load new department employees")
	}
	return employees, nil
}
