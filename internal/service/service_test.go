package service

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/DuyPhong1504/duyphong-app/internal/apperror"
	"github.com/DuyPhong1504/duyphong-app/internal/models"
	"github.com/DuyPhong1504/duyphong-app/internal/repository"
	"github.com/DuyPhong1504/duyphong-app/internal/testutil"
)

var fixedNow = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func date(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

type fixture struct {
	db          *gorm.DB
	store       *repository.Store
	departments *DepartmentService
	employees   *EmployeeService
	tasks       *TaskService
	lunchLogs   *LunchLogService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	database := testutil.NewDB(t)
	seed(t, database)

	store := repository.NewStore(database)
	logger := quietLogger()

	departments := NewDepartmentService(store, logger)
	departments.now = func() time.Time { return fixedNow }
	employees := NewEmployeeService(store, logger)
	employees.now = func() time.Time { return fixedNow }
	tasks := NewTaskService(store, logger)
	tasks.now = func() time.Time { return fixedNow }

	return fixture{
		db:          database,
		store:       store,
		departments: departments,
		employees:   employees,
		tasks:       tasks,
		lunchLogs:   NewLunchLogService(store, logger),
	}
}

func seed(t *testing.T, database *gorm.DB) {
	t.Helper()

	require.NoError(t, database.Create(&[]models.Department{
		{ID: "d-eng", Name: "Engineering"},
		{ID: "d-ops", Name: "Operations"},
		{ID: "d-empty", Name: "Archive"},
	}).Error)

	recent := fixedNow.AddDate(0, 0, -3)
	old := fixedNow.AddDate(-1, 0, 0)
	require.NoError(t, database.Create(&[]models.Employee{
		{ID: "e1", Username: "alice", Email: "alice@example.com", Fullname: "Alice Smith", DepartmentID: ptr("d-eng"), Position: ptr("Engineer"), Salary: ptr(4000), CreatedAt: old, UpdatedAt: old},
		{ID: "e2", Username: "bob", Email: "bob@example.com", Fullname: "Bob Jones", DepartmentID: ptr("d-eng"), Salary: ptr(6000), CreatedAt: recent, UpdatedAt: recent},
		{ID: "e3", Username: "carol", Email: "carol@example.com", Fullname: "Carol White", DepartmentID: ptr("d-ops"), CreatedAt: recent, UpdatedAt: recent},
		{ID: "e4", Username: "dan", Email: "dan@example.com", Fullname: "Dan Brown", CreatedAt: old, UpdatedAt: old},
	}).Error)

	require.NoError(t, database.Create(&[]models.Task{
		{EmployeeID: "e1", TaskName: "design", Description: "draft the design", DueDate: date(2026, 4, 10), Status: models.TaskStatusToDo},
		{EmployeeID: "e1", TaskName: "build", Description: "build it", DueDate: date(2026, 4, 20), Status: models.TaskStatusInProgress},
		{EmployeeID: "e2", TaskName: "review", Description: "review it", DueDate: date(2026, 4, 10), Status: models.TaskStatusInProgress},
		{EmployeeID: "e3", TaskName: "deploy", Description: "ship it", DueDate: date(2026, 5, 1), Status: models.TaskStatusDone},
	}).Error)
}

func requireCode(t *testing.T, err error, code apperror.Code) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, apperror.GetCode(err), err.Error())
}
