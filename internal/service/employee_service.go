package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/DuyPhong1504/duyphong-app/internal/apperror"
	"github.com/DuyPhong1504/duyphong-app/internal/models"
	"github.com/DuyPhong1504/duyphong-app/internal/repository"
)

type EmployeeService struct {
	store  *repository.Store
	logger logrus.FieldLogger
	now    func() time.Time
}

func NewEmployeeService(store *repository.Store, logger logrus.FieldLogger) *EmployeeService {
	return &EmployeeService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (s *EmployeeService) GetEmployee(ctx context.Context, employeeID string) (EmployeeDTO, error) {
	employee, err := s.store.EmployeeByID(ctx, employeeID)
	if err != nil {
		return EmployeeDTO{}, employeeLookupError(err, employeeID)
	}
	return employeeToDTO(*employee), nil
}

func (s *EmployeeService) GetEmployeeDetail(ctx context.Context, employeeID string) (EmployeeDetailDTO, error) {
	employee, err := s.store.EmployeeWithDepartment(ctx, employeeID)
	if err != nil {
		return EmployeeDetailDTO{}, employeeLookupError(err, employeeID)
	}

	ongoing, err := s.store.TasksByEmployeeAndStatus(ctx, employee.ID, models.TaskStatusInProgress)
	if err != nil {
		return EmployeeDetailDTO{}, err
	}

	return employeeDetailToDTO(*employee, ongoing), nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, employeeID string, input UpdateEmployeeInput) (EmployeeDTO, error) {
	if err := validateEmployeePatch(input); err != nil {
		return EmployeeDTO{}, err
	}

	err := s.store.UpdateEmployeeFields(ctx, employeeID, repository.EmployeeFields{
		Fullname: input.Fullname,
		Position: input.Position,
		Salary:   input.Salary,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return EmployeeDTO{}, employeeLookupError(err, employeeID)
		}
		return EmployeeDTO{}, mapDatabaseError(err)
	}

	employee, err := s.store.EmployeeByID(ctx, employeeID)
	if err != nil {
		return EmployeeDTO{}, employeeLookupError(err, employeeID)
	}

	s.logger.WithField("employee_id", employeeID).Info("employee updated")
	return employeeToDTO(*employee), nil
}

// TransferDepartment moves the employee to another department and records
// the move in department_history. Both writes share one transaction, and the
// employee row stays locked until it commits.
func (s *EmployeeService) TransferDepartment(ctx context.Context, employeeID string, input TransferDepartmentInput) (DepartmentTransferDTO, error) {
	newDepartmentID, err := validateTransfer(input)
	if err != nil {
		return DepartmentTransferDTO{}, err
	}

	var result DepartmentTransferDTO
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		employee, err := tx.LockEmployee(ctx, employeeID)
		if err != nil {
			return employeeLookupError(err, employeeID)
		}

		newDepartment, err := tx.DepartmentByID(ctx, newDepartmentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperror.NotFound("Department with ID '%s' not found", newDepartmentID)
			}
			return err
		}

		if employee.DepartmentID != nil && *employee.DepartmentID == newDepartment.ID {
			return apperror.Validation(fmt.Sprintf("Employee is already in department '%s'", newDepartment.Name), nil)
		}

		changeDate := s.now().UTC()
		history := models.DepartmentHistory{
			EmployeeID:      employee.ID,
			OldDepartmentID: employee.DepartmentID,
			NewDepartmentID: newDepartment.ID,
			ChangeDate:      changeDate,
		}
		if err := tx.CreateDepartmentHistory(ctx, &history); err != nil {
			return mapDatabaseError(err)
		}
		if err := tx.SetEmployeeDepartment(ctx, employee.ID, newDepartment.ID); err != nil {
			return mapDatabaseError(err)
		}

		result = DepartmentTransferDTO{
			Employee:      employeeSnapshot(*employee),
			OldDepartment: optionalDepartmentToDTO(employee.Department),
			NewDepartment: departmentToDTO(*newDepartment),
			ChangeDate:    changeDate,
			Message:       transferMessage(employee.Fullname, employee.Department, newDepartment),
		}
		return nil
	})
	if err != nil {
		return DepartmentTransferDTO{}, err
	}

	fields := logrus.Fields{
		"employee_id":       employeeID,
		"new_department_id": result.NewDepartment.ID,
	}
	if result.OldDepartment != nil {
		fields["old_department_id"] = result.OldDepartment.ID
	}
	s.logger.WithFields(fields).Info("employee department changed")

	return result, nil
}

func (s *EmployeeService) DepartmentHistory(ctx context.Context, employeeID string) ([]DepartmentHistoryDTO, error) {
	if _, err := s.store.EmployeeByID(ctx, employeeID); err != nil {
		return nil, employeeLookupError(err, employeeID)
	}

	history, err := s.store.DepartmentHistoryForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]DepartmentHistoryDTO, 0, len(history))
	for _, entry := range history {
		result = append(result, historyToDTO(entry))
	}
	return result, nil
}

func employeeLookupError(err error, employeeID string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("Employee with ID '%s' not found", employeeID)
	}
	return err
}

func transferMessage(fullname string, from *models.Department, to *models.Department) string {
	if from == nil {
		return fmt.Sprintf("Employee %s assigned to department %s", fullname, to.Name)
	}
	return fmt.Sprintf("Employee %s transferred from department %s to %s", fullname, from.Name, to.Name)
}
