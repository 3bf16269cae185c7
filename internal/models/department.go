package models

type Department struct {
	ID        string     `gorm:"primaryKey;type:varchar(255)"`
	Name      string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Employees []Employee `gorm:"foreignKey:DepartmentID;references:ID"`
}
