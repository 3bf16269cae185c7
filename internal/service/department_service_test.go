package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DuyPhong1504/duyphong-app/internal/apperror"
	"github.com/DuyPhong1504/duyphong-app/internal/models"
)

func TestCreateDepartmentTrimsName(t *testing.T) {
	f := newFixture(t)

	created, err := f.departments.CreateDepartment(context.Background(), CreateDepartmentInput{Name: "  Finance  "})
	require.NoError(t, err)
	assert.Equal(t, "Finance", created.Name)
	assert.Len(t, created.ID, 36)

	var stored models.Department
	require.NoError(t, f.db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, "Finance", stored.Name)
}

func TestCreateDepartmentRejectsDuplicateName(t *testing.T) {
	f := newFixture(t)

	_, err := f.departments.CreateDepartment(context.Background(), CreateDepartmentInput{Name: "Engineering"})
	requireCode(t, err, apperror.CodeConflict)
	assert.Equal(t, "Department with name 'Engineering' already exists", err.Error())

	var count int64
	require.NoError(t, f.db.Model(&models.Department{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestCreateDepartmentNameIsCaseSensitive(t *testing.T) {
	f := newFixture(t)

	_, err := f.departments.CreateDepartment(context.Background(), CreateDepartmentInput{Name: "engineering"})
	require.NoError(t, err)
}

func TestCreateDepartmentValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"blank", "   ", "Department name is required"},
		{"too long", strings.Repeat("a", 256), "Department name cannot exceed 255 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.departments.CreateDepartment(context.Background(), CreateDepartmentInput{Name: tt.input})
			requireCode(t, err, apperror.CodeValidation)
			assert.Equal(t, tt.message, apperror.FieldsOf(err)["name"])
		})
	}
}

func TestListDepartmentsOrderedByName(t *testing.T) {
	f := newFixture(t)

	departments, err := f.departments.ListDepartments(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(departments))
	for _, department := range departments {
		names = append(names, department.Name)
	}
	assert.Equal(t, []string{"Archive", "Engineering", "Operations"}, names)
}

func TestAverageSalaries(t *testing.T) {
	f := newFixture(t)

	rows, err := f.departments.AverageSalaries(context.Background())
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

func TestGetStatistics(t *testing.T) {
	f := newFixture(t)

	stats, err := f.departments.GetStatistics(context.Background(), "d-eng")
	require.NoError(t, err)

	assert.Equal(t, "Engineering", stats.DepartmentName)
	assert.EqualValues(t, 2, stats.TotalEmployees)
	assert.InDelta(t, 5000.0, stats.AverageSalary, 0.001)
	assert.Equal(t, map[models.TaskStatus]int64{
		models.TaskStatusToDo:       1,
		models.TaskStatusInProgress: 2,
		models.TaskStatusDone:       0,
	}, stats.TaskCountsByStatus)

	require.Len(t, stats.NewEmployees, 1)
	assert.Equal(t, "e2", stats.NewEmployees[0].ID)
}

func TestGetStatisticsForEmptyDepartment(t *testing.T) {
	f := newFixture(t)

	stats, err := f.departments.GetStatistics(context.Background(), "d-empty")
	require.NoError(t, err)

	assert.Zero(t, stats.TotalEmployees)
	assert.Zero(t, stats.AverageSalary)
	assert.Len(t, stats.TaskCountsByStatus, len(models.TaskStatuses()))
	for _, count := range stats.TaskCountsByStatus {
		assert.Zero(t, count)
	}
	assert.NotNil(t, stats.NewEmployees)
	assert.Empty(t, stats.NewEmployees)
}

func TestGetStatisticsUnknownDepartment(t *testing.T) {
	f := newFixture(t)

	_, err := f.departments.GetStatistics(context.Background(), "missing")
	requireCode(t, err, apperror.CodeNotFound)
	assert.Equal(t, "Department with ID 'missing' not found", err.Error())
}
