package models

import "gorm.io/datatypes"

type LunchLog struct {
	ID         uint           `gorm:"primaryKey"`
	EmployeeID string         `gorm:"type:varchar(255);not null;index"`
	Employee   *Employee      `gorm:"foreignKey:EmployeeID;references:ID"`
	LunchDate  datatypes.Date `gorm:"not null"`
	MealType   MealType       `gorm:"type:varchar(50);not null"`
	Restaurant *string        `gorm:"type:varchar(255)"`
	Notes      *string        `gorm:"type:text"`
}
