package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"github.com/DuyPhong1504/duyphong-app/internal/models"
)

const lunchLogBatchSize = 100

// CreateLunchLogs inserts every log in one transaction; ids are filled in place.
func (s *Store) CreateLunchLogs(ctx context.Context, logs []models.LunchLog) error {
	if len(logs) == 0 {
		return nil
	}
	return s.Transaction(ctx, func(tx *Store) error {
		return errors.Wrap(
			tx.conn(ctx).Omit(clause.Associations).CreateInBatches(&logs, lunchLogBatchSize).Error,
			"create lunch logs",
		)
	})
}
