package settings

import "time"

const (
	KeyGracePeriod = "grace_period"
	KeyWorkHours   = "work_hours"
)

const (
	DefaultGracePeriodMinutes = 10
	DefaultWorkHours          = 8.0
)

type Setting struct {
	ID        int64  `gorm:"primaryKey"`
	Key       string `gorm:"column:key;type:varchar(50);uniqueIndex;not null"`
	Value     string `gorm:"column:value;type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Setting) TableName() string {
	return "settings"
}
