package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/DuyPhong1504/duyphong-app/internal/apperror"
	"github.com/DuyPhong1504/duyphong-app/internal/models"
	"github.com/DuyPhong1504/duyphong-app/internal/repository"
)

// newEmployeeWindow is how far back an employee counts as new in statistics.
const newEmployeeWindow = 30 * 24 * time.Hour

type DepartmentService struct {
	store  *repository.Store
	logger logrus.FieldLogger
	now    func() time.Time
}

func NewDepartmentService(store *repository.Store, logger logrus.FieldLogger) *DepartmentService {
	return &DepartmentService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (s *DepartmentService) ListDepartments(ctx context.Context) ([]DepartmentDTO, error) {
	departments, err := s.store.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	return departmentsToDTO(departments), nil
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, input CreateDepartmentInput) (DepartmentDTO, error) {
	name, err := validateDepartmentName(input.Name)
	if err != nil {
		return DepartmentDTO{}, err
	}

	exists, err := s.store.DepartmentNameExists(ctx, name)
	if err != nil {
		return DepartmentDTO{}, err
	}
	if exists {
		s.logger.WithField("name", name).Warn("department name already taken")
		return DepartmentDTO{}, apperror.Conflict("Department with name '%s' already exists", name)
	}

	department := models.Department{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := s.store.CreateDepartment(ctx, &department); err != nil {
		return DepartmentDTO{}, mapDatabaseError(err)
	}

	s.logger.WithFields(logrus.Fields{
		"department_id": department.ID,
		"name":          department.Name,
	}).Info("department created")

	return departmentToDTO(department), nil
}

func (s *DepartmentService) AverageSalaries(ctx context.Context) ([]DepartmentAverageSalaryDTO, error) {
	rows, err := s.store.DepartmentAverageSalaries(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]DepartmentAverageSalaryDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, DepartmentAverageSalaryDTO{
			DepartmentName: row.DepartmentName,
			AverageSalary:  row.AverageSalary,
		})
	}
	return result, nil
}

// GetStatistics aggregates a department dashboard. The four reads are
// independent and may observe slightly different points in time.
func (s *DepartmentService) GetStatistics(ctx context.Context, departmentID string) (DepartmentStatisticsDTO, error) {
	department, err := s.store.DepartmentByID(ctx, departmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return DepartmentStatisticsDTO{}, apperror.NotFound("Department with ID '%s' not found", departmentID)
		}
		return DepartmentStatisticsDTO{}, err
	}

	total, err := s.store.CountEmployeesInDepartment(ctx, department.ID)
	if err != nil {
		return DepartmentStatisticsDTO{}, err
	}

	averageSalary, _, err := s.store.AverageSalaryInDepartment(ctx, department.ID)
	if err != nil {
		return DepartmentStatisticsDTO{}, err
	}

	counts, err := s.store.CountTasksByStatus(ctx, department.ID)
	if err != nil {
		return DepartmentStatisticsDTO{}, err
	}
	taskCounts := make(map[models.TaskStatus]int64, len(models.TaskStatuses()))
	for _, status := range models.TaskStatuses() {
		taskCounts[status] = counts[status]
	}

	since := s.now().UTC().Add(-newEmployeeWindow)
	newEmployees, err := s.store.EmployeesCreatedSince(ctx, department.ID, since)
	if err != nil {
		return DepartmentStatisticsDTO{}, err
	}

	return DepartmentStatisticsDTO{
		DepartmentID:       department.ID,
		DepartmentName:     department.Name,
		TotalEmployees:     total,
		AverageSalary:      averageSalary,
		TaskCountsByStatus: taskCounts,
		NewEmployees:       employeesToDTO(newEmployees),
	}, nil
}
