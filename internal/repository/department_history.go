package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"github.com/DuyPhong1504/duyphong-app/internal/models"
)

func (s *Store) CreateDepartmentHistory(ctx context.Context, history *models.DepartmentHistory) error {
	return errors.Wrap(s.conn(ctx).Omit(clause.Associations).Create(history).Error, "create department history")
}

// DepartmentHistoryForEmployee returns the employee's transfers, newest first.
func (s *Store) DepartmentHistoryForEmployee(ctx context.Context, employeeID string) ([]models.DepartmentHistory, error) {
	var history []models.DepartmentHistory
	err := s.conn(ctx).
		Preload("OldDepartment").
		Preload("NewDepartment").
		Where("employee_id = ?", employeeID).
		Order("change_date DESC, id DESC").
		Find(&history).Error
	if err != nil {
		return nil, errors.Wrap(err, "load department history")
	}
	return history, nil
}
