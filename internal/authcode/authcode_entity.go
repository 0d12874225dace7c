package authcode

import "time"

const (
	TypeEarlyStart       = "early_start"
	TypeOfficialOvertime = "official_overtime"
)

// UnlimitedUses marks a code that never runs out.
const UnlimitedUses = -1

type AuthCode struct {
	ID             int64      `gorm:"primaryKey"`
	Code           string     `gorm:"column:code;type:varchar(20);uniqueIndex;not null"`
	CodeType       string     `gorm:"column:code_type;type:varchar(30);not null;index"`
	Description    *string    `gorm:"column:description;type:text"`
	UsesRemaining  int        `gorm:"column:uses_remaining;not null;default:-1"`
	ValidUntil     *time.Time `gorm:"column:valid_until;type:date"`
	AllowableHours float64    `gorm:"column:allowable_hours;not null;default:0"`
	IsActive       bool       `gorm:"column:is_active;not null;default:true"`
	CreatedBy      *int64     `gorm:"column:created_by"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (AuthCode) TableName() string {
	return "admin_auth_codes"
}

func ValidType(codeType string) bool {
	return codeType == TypeEarlyStart || codeType == TypeOfficialOvertime
}
