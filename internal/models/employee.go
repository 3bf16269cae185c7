package models

import "time"

// Employee rows are provisioned outside this service; only the patchable
// fields and the department reference are ever written here.
type Employee struct {
	ID           string      `gorm:"primaryKey;type:varchar(255)"`
	Username     string      `gorm:"type:varchar(255);not null;uniqueIndex"`
	Email        string      `gorm:"type:varchar(255);not null;uniqueIndex"`
	Fullname     string      `gorm:"type:varchar(255);not null"`
	DepartmentID *string     `gorm:"type:varchar(255);index"`
	Department   *Department `gorm:"foreignKey:DepartmentID;references:ID"`
	Position     *string     `gorm:"type:varchar(255)"`
	Salary       *int
	Tasks        []Task    `gorm:"foreignKey:EmployeeID;references:ID"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}
