package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/DuyPhong1504/duyphong-app/internal/apperror"
)

func mapDatabaseError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return apperror.Conflict("resource with the same unique attributes already exists")
		}
		if pgErr.Code == "23503" {
			return apperror.Validation("invalid foreign key reference", nil)
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Conflict("resource with the same unique attributes already exists")
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperror.Validation("invalid foreign key reference", nil)
	}
	return err
}
