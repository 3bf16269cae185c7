package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/DuyPhong1504/duyphong-app/internal/models"
	"github.com/DuyPhong1504/duyphong-app/internal/repository"
	"github.com/DuyPhong1504/duyphong-app/internal/testutil"
)

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seed(t *testing.T, database *gorm.DB) {
	t.Helper()

	require.NoError(t, database.Create(&[]models.Department{
		{ID: "d-eng", Name: "Engineering"},
		{ID: "d-ops", Name: "Operations"},
		{ID: "d-empty", Name: "Archive"},
	}).Error)

	require.NoError(t, database.Create(&[]models.Employee{
		{ID: "e1", Username: "alice", Email: "alice@example.com", Fullname: "Alice", DepartmentID: ptr("d-eng"), Salary: ptr(4000)},
		{ID: "e2", Username: "bob", Email: "bob@example.com", Fullname: "Bob", DepartmentID: ptr("d-eng"), Salary: ptr(6000)},
		{ID: "e3", Username: "carol", Email: "carol@example.com", Fullname: "Carol", DepartmentID: ptr("d-ops")},
		{ID: "e4", Username: "dan", Email: "dan@example.com", Fullname: "Dan"},
	}).Error)

	require.NoError(t, database.Create(&[]models.Task{
		{EmployeeID: "e1", TaskName: "design", DueDate: datatypes.Date(date(2030, 1, 10)), Status: models.TaskStatusToDo},
		{EmployeeID: "e1", TaskName: "build", DueDate: datatypes.Date(date(2030, 1, 20)), Status: models.TaskStatusInProgress},
		{EmployeeID: "e2", TaskName: "review", DueDate: datatypes.Date(date(2030, 1, 10)), Status: models.TaskStatusInProgress},
		{EmployeeID: "e3", TaskName: "deploy", DueDate: datatypes.Date(date(2030, 2, 1)), Status: models.TaskStatusDone},
	}).Error)
}

func TestDepartmentQueries(t *testing.T) {
	database := testutil.NewDB(t)
	seed(t, database)
	store := repository.NewStore(database)
	ctx := context.Background()

	departments, err := store.ListDepartments(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 3)
	assert.Equal(t, "Archive", departments[0].Name)

	exists, err := store.DepartmentNameExists(ctx, "Engineering")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.DepartmentNameExists(ctx, "engineering")
	require.NoError(t, err)
	assert.False(t, exists, "name match is case-sensitive")

	_, err = store.DepartmentByID(ctx, "missing")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestDepartmentAverageSalaries(t *testing.T) {
	database := testutil.NewDB(t)
	seed(t, database)
	store := repository.NewStore(database)

	rows, err := store.DepartmentAverageSalaries(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byName := map[string]*float64{}
	for _, row := range rows {
		byName[row.DepartmentName] = row.AverageSalary
	}
	require.NotNil(t, byName["Engineering"])
	assert.InDelta(t, 5000.0, *byName["Engineering"], 0.001)
	assert.Nil(t, byName["Operations"])
	assert.Nil(t, byName["Archive"])
}

func TestDepartmentAggregates(t *testing.T) {
	database := testutil.NewDB(t)
	seed(t, database)
	store := repository.NewStore(database)
	ctx := context.Background()

	count, err := store.CountEmployeesInDepartment(ctx, "d-eng")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	avg, ok, err := store.AverageSalaryInDepartment(ctx, "d-eng")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 5000.0, avg, 0.001)

	_, ok, err = store.AverageSalaryInDepartment(ctx, "d-ops")
	require.NoError(t, err)
	assert.False(t, ok)

	counts, err := store.CountTasksByStatus(ctx, "d-eng")
	require.NoError(t, err)
	assert.Equal(t, map[models.TaskStatus]int64{
		models.TaskStatusToDo:       1,
		models.TaskStatusInProgress: 2,
	}, counts)
}

func TestEmployeesCreatedSince(t *testing.T) {
	database := testutil.NewDB(t)
	seed(t, database)
	now := time.Now().UTC()
	require.NoError(t, database.Model(&models.Employee{}).Where("id = ?", "e2").
		UpdateColumn("created_at", now.AddDate(0, 0, -45)).Error)
	require.NoError(t, database.Model(&models.Employee{}).Where("id = ?", "e1").
		UpdateColumn("created_at", now.AddDate(0, 0, -3)).Error)

	employees, err := repository.NewStore(database).EmployeesCreatedSince(context.Background(), "d-eng", now.AddDate(0, 0, -30))
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "e1", employees[0].ID)
}

func TestUpdateEmployeeFieldsOnlyTouchesGivenColumns(t *testing.T) {
	database := testutil.NewDB(t)
	seed(t, database)
	store := repository.NewStore(database)
	ctx := context.Background()

	require.NoError(t, store.UpdateEmployeeFields(ctx, "e1", repository.EmployeeFields{Salary: ptr(5000)}))

	employee, err := store.EmployeeByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", employee.Fullname)
	assert.Equal(t, 5000, *employee.Salary)
	assert.Equal(t, "d-eng", *employee.DepartmentID)

	err = store.UpdateEmployeeFields(ctx, "nobody", repository.EmployeeFields{Salary: ptr(1)})
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestMissingEmployeeIDs(t *testing.T) {
	database := testutil.NewDB(t)
	seed(t, database)

	missing, err := repository.NewStore(database).MissingEmployeeIDs(context.Background(), []string{"e1", "x", "e2", "y", "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, missing)
}

func TestFindTasks(t *testing.T) {
	database := testutil.NewDB(t)
	seed(t, database)
	store := repository.NewStore(database)
	ctx := context.Background()

	tasks, err := store.FindTasks(ctx, repository.TaskFilter{EmployeeID: ptr("e1")})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.NotNil(t, tasks[0].Employee)
	require.NotNil(t, tasks[0].Employee.Department)
	assert.Equal(t, "Engineering", tasks[0].Employee.Department.Name)

	status := models.TaskStatusInProgress
	tasks, err = store.FindTasks(ctx, repository.TaskFilter{Status: &status})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	due := date(2030, 1, 10)
	tasks, err = store.FindTasks(ctx, repository.TaskFilter{DueDate: &due})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	tasks, err = store.FindTasks(ctx, repository.TaskFilter{EmployeeID: ptr("e1"), Status: &status, DueDate: &due})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCreateLunchLogsFillsIDs(t *testing.T) {
	database := testutil.NewDB(t)
	seed(t, database)

	logs := []models.LunchLog{
		{EmployeeID: "e1", LunchDate: datatypes.Date(date(2030, 1, 1)), MealType: models.MealTypeLunch},
		{EmployeeID: "e2", LunchDate: datatypes.Date(date(2030, 1, 1)), MealType: models.MealTypeDinner, Notes: ptr("late")},
	}
	require.NoError(t, repository.NewStore(database).CreateLunchLogs(context.Background(), logs))

	for _, log := range logs {
		assert.NotZero(t, log.ID)
	}

	var count int64
	require.NoError(t, database.Model(&models.LunchLog{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestTransactionRollsBack(t *testing.T) {
	database := testutil.NewDB(t)
	seed(t, database)
	store := repository.NewStore(database)
	ctx := context.Background()

	boom := errors.New("boom")
	err := store.Transaction(ctx, func(tx *repository.Store) error {
		require.NoError(t, tx.CreateDepartmentHistory(ctx, &models.DepartmentHistory{
			EmployeeID:      "e1",
			OldDepartmentID: ptr("d-eng"),
			NewDepartmentID: "d-ops",
			ChangeDate:      time.Now().UTC(),
		}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	history, err := store.DepartmentHistoryForEmployee(ctx, "e1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestDepartmentHistoryOrdering(t *testing.T) {
	database := testutil.NewDB(t)
	seed(t, database)
	store := repository.NewStore(database)
	ctx := context.Background()
	base := time.Now().UTC()

	require.NoError(t, store.CreateDepartmentHistory(ctx, &models.DepartmentHistory{
		EmployeeID: "e4", NewDepartmentID: "d-eng", ChangeDate: base.Add(-time.Hour),
	}))
	require.NoError(t, store.CreateDepartmentHistory(ctx, &models.DepartmentHistory{
		EmployeeID: "e4", OldDepartmentID: ptr("d-eng"), NewDepartmentID: "d-ops", ChangeDate: base,
	}))

	history, err := store.DepartmentHistoryForEmployee(ctx, "e4")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "d-ops", history[0].NewDepartmentID)
	require.NotNil(t, history[0].OldDepartment)
	assert.Equal(t, "Engineering", history[0].OldDepartment.Name)
	assert.Nil(t, history[1].OldDepartmentID)
	assert.Nil(t, history[1].OldDepartment)
}
