package admin

import "time"

type Admin struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"column:username;type:varchar(60);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(100);not null"`
	FullName     string `gorm:"column:full_name;type:varchar(120);not null"`
	Role         string `gorm:"column:role;type:varchar(20);not null;default:'staff'"`
	IsActive     bool   `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Admin) TableName() string {
	return "admins"
}
