package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/DuyPhong1504/duyphong-app/internal/repository"
)

type TaskService struct {
	store  *repository.Store
	logger logrus.FieldLogger
	now    func() time.Time
}

func NewTaskService(store *repository.Store, logger logrus.FieldLogger) *TaskService {
	return &TaskService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// CreateTask always stores the task as TO_DO, whatever the caller asked for.
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (TaskDTO, error) {
	task, err := validateCreateTask(input, truncateToDate(s.now()))
	if err != nil {
		return TaskDTO{}, err
	}

	if _, err := s.store.EmployeeByID(ctx, task.EmployeeID); err != nil {
		return TaskDTO{}, employeeLookupError(err, task.EmployeeID)
	}

	if err := s.store.CreateTask(ctx, &task); err != nil {
		return TaskDTO{}, mapDatabaseError(err)
	}

	created, err := s.store.TaskWithEmployee(ctx, task.ID)
	if err != nil {
		return TaskDTO{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"task_id":     created.ID,
		"employee_id": created.EmployeeID,
	}).Info("task created")

	return taskToDTO(*created), nil
}

func (s *TaskService) ListTasks(ctx context.Context, input TaskFilterInput) ([]TaskDTO, error) {
	filter, err := validateTaskFilter(input)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.FindTasks(ctx, filter)
	if err != nil {
		return nil, err
	}
	return tasksToDTO(tasks), nil
}
