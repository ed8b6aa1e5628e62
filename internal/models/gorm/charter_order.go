package gorm

import "time"

// CharterOrder is an inquiry placed against a synthesized listing. The
// listing itself is never persisted; the order keeps the listing id so
// the back office can regenerate the exact offer the customer saw.
type CharterOrder struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid"`
	ListingID   string    `gorm:"column:listing_id;type:text;not null;index"`
	ListingKind string    `gorm:"column:listing_kind;type:varchar(20);not null"`
	FullName    string    `gorm:"column:full_name;type:text;not null"`
	Email       string    `gorm:"column:email;type:text;not null"`
	Phone       string    `gorm:"column:phone;type:varchar(50)"`
	Passengers  int       `gorm:"column:passengers;default:1"`
	Message     string    `gorm:"column:message;type:text"`
	Status      string    `gorm:"column:status;type:varchar(20);not null;default:new"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (CharterOrder) TableName() string {
	return "charter_orders"
}
