package branch

import "time"

type Branch struct {
	ID              int64    `gorm:"primaryKey"`
	Name            string   `gorm:"column:name;type:varchar(120);uniqueIndex;not null"`
	Address         string   `gorm:"column:address;type:text"`
	GPSLatitude     *float64 `gorm:"column:gps_latitude"`
	GPSLongitude    *float64 `gorm:"column:gps_longitude"`
	GPSRadiusMeters *float64 `gorm:"column:gps_radius_meters"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Branch) TableName() string {
	return "branches"
}
