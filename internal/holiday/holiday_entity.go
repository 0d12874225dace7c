package holiday

import "time"

const (
	KindRegular = "regular"
	KindSpecial = "special"
)

type Holiday struct {
	ID        int64     `gorm:"primaryKey"`
	Date      time.Time `gorm:"column:date;type:date;uniqueIndex;not null"`
	Name      string    `gorm:"column:name;type:varchar(120);not null"`
	Kind      string    `gorm:"column:kind;type:varchar(10);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Holiday) TableName() string {
	return "holidays"
}

func ValidKind(kind string) bool {
	return kind == KindRegular || kind == KindSpecial
}
