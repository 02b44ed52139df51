package models

// SaveSlot is a named, stored copy of a game. Payload holds the serialized
// save file; the other columns are denormalized for listing.
type SaveSlot struct {
	Base
	SessionID     string `gorm:"type:uuid;not null;index" json:"session_id"`
	Name          string `gorm:"not null" json:"name"`
	RoleID        string `gorm:"not null" json:"role_id"`
	RoleName      string `gorm:"not null" json:"role_name"`
	Month         int    `gorm:"not null" json:"month"`
	Cash          int64  `gorm:"type:bigint;not null" json:"cash"`
	PassiveIncome int64  `gorm:"type:bigint;not null" json:"passive_income"`
	FixedExpenses int64  `gorm:"type:bigint;not null" json:"fixed_expenses"`
	Won           bool   `gorm:"not null;default:false" json:"won"`
	Payload       string `gorm:"type:text;not null" json:"-"`
}
