package models

import (
	"time"

	"gorm.io/datatypes"
)

type Task struct {
	ID          uint           `gorm:"primaryKey"`
	EmployeeID  string         `gorm:"type:varchar(255);not null;index"`
	Employee    *Employee      `gorm:"foreignKey:EmployeeID;references:ID"`
	TaskName    string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	DueDate     datatypes.Date `gorm:"index"`
	Status      TaskStatus     `gorm:"type:varchar(50);not null;default:'TO_DO';index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}
