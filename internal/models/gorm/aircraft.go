package gorm

import "time"

// Aircraft is the admin-managed catalog record behind the read-only
// sqlx view the generator consumes. Passengers, Range and Speed stay
// free-text on purpose: they are marketing descriptors, and the
// generator regex-extracts what it needs.
type Aircraft struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid"`
	Name         string    `gorm:"column:name;type:text;not null"`
	Slug         string    `gorm:"column:slug;type:text;not null;uniqueIndex"`
	Category     string    `gorm:"column:category;type:varchar(50);not null"`
	CategorySlug string    `gorm:"column:category_slug;type:varchar(50);not null"`
	Image        *string   `gorm:"column:image;type:text"`
	Passengers   string    `gorm:"column:passengers;type:varchar(100)"`
	Range        string    `gorm:"column:range;type:varchar(100)"`
	Speed        string    `gorm:"column:speed;type:varchar(100)"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Aircraft) TableName() string {
	return "aircraft"
}
