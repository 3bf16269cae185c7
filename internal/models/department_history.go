package models

import "time"

// DepartmentHistory is an append-only audit row written by every successful
// department transfer.
type DepartmentHistory struct {
	ID              uint        `gorm:"primaryKey"`
	EmployeeID      string      `gorm:"type:varchar(255);not null;index"`
	Employee        *Employee   `gorm:"foreignKey:EmployeeID;references:ID"`
	OldDepartmentID *string     `gorm:"type:varchar(255)"`
	OldDepartment   *Department `gorm:"foreignKey:OldDepartmentID;references:ID"`
	NewDepartmentID string      `gorm:"type:varchar(255);not null"`
	NewDepartment   *Department `gorm:"foreignKey:NewDepartmentID;references:ID"`
	ChangeDate      time.Time   `gorm:"not null;index"`
}

func (DepartmentHistory) TableName() string {
	return "department_history"
}
