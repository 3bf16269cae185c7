package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/DuyPhong1504/duyphong-app/internal/apperror"
	"github.com/DuyPhong1504/duyphong-app/internal/repository"
)

type LunchLogService struct {
	store  *repository.Store
	logger logrus.FieldLogger
}

func NewLunchLogService(store *repository.Store, logger logrus.FieldLogger) *LunchLogService {
	return &LunchLogService{
		store:  store,
		logger: logger,
	}
}

// CreateLunchLogs stores every entry or none of them.
func (s *LunchLogService) CreateLunchLogs(ctx context.Context, input BulkCreateLunchLogInput) (BulkCreateLunchLogDTO, error) {
	logs, err := validateBulkLunchLogs(input)
	if err != nil {
		return BulkCreateLunchLogDTO{}, err
	}

	ids := make([]string, 0, len(logs))
	for _, log := range logs {
		ids = append(ids, log.EmployeeID)
	}
	missing, err := s.store.MissingEmployeeIDs(ctx, ids)
	if err != nil {
		return BulkCreateLunchLogDTO{}, err
	}
	if len(missing) > 0 {
		return BulkCreateLunchLogDTO{}, apperror.NotFound("Employees not found: [%s]", strings.Join(missing, ", "))
	}

	if err := s.store.CreateLunchLogs(ctx, logs); err != nil {
		return BulkCreateLunchLogDTO{}, mapDatabaseError(err)
	}

	created := make([]LunchLogDTO, 0, len(logs))
	for _, log := range logs {
		created = append(created, lunchLogToDTO(log))
	}

	s.logger.WithField("count", len(created)).Info("lunch logs created")

	return BulkCreateLunchLogDTO{
		TotalCreated: len(created),
		LunchLogs:    created,
		Message:      fmt.Sprintf("Successfully created %d lunch log entries", len(created)),
	}, nil
}
