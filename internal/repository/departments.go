package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"github.com/DuyPhong1504/duyphong-app/internal/models"
)

type DepartmentSalary struct {
	DepartmentName string
	AverageSalary  *float64
}

func (s *Store) ListDepartments(ctx context.Context) ([]models.Department, error) {
	var departments []models.Department
	if err := s.conn(ctx).Order("name ASC").Find(&departments).Error; err != nil {
		return nil, errors.Wrap(err, "list departments")
	}
	return departments, nil
}

func (s *Store) DepartmentByID(ctx context.Context, id string) (*models.Department, error) {
	var department models.Department
	if err := s.conn(ctx).Where("id = ?", id).First(&department).Error; err != nil {
		return nil, wrapLookup(err, "load department")
	}
	return &department, nil
}

// DepartmentNameExists matches name exactly (case-sensitive).
func (s *Store) DepartmentNameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := s.conn(ctx).Model(&models.Department{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "check department name")
	}
	return count > 0, nil
}

func (s *Store) CreateDepartment(ctx context.Context, department *models.Department) error {
	return errors.Wrap(s.conn(ctx).Omit(clause.Associations).Create(department).Error, "create department")
}

// DepartmentAverageSalaries returns one row per department; AverageSalary is
// nil where no employee of the department has a salary.
func (s *Store) DepartmentAverageSalaries(ctx context.Context) ([]DepartmentSalary, error) {
	var rows []DepartmentSalary
	err := s.conn(ctx).
		Table("departments AS d").
		Select("d.name AS department_name, CAST(AVG(e.salary) AS FLOAT) AS average_salary").
		Joins("LEFT JOIN employees e ON e.department_id = d.id").
		Group("d.id, d.name").
		Order("d.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "aggregate department salaries")
	}
	return rows, nil
}
