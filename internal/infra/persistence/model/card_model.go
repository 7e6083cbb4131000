package model

import "time"

// CardModel is the GORM-specific struct for the 'cards' table. The board_id
// foreign key carries ON DELETE CASCADE (see migrations), so board deletion
// removes owned cards inside the storage layer, without application-level
// iteration.
type CardModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	BoardID     int64     `gorm:"not null;index"`
	Description string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:status_enum;not null;default:'todo'"`
	CreatedAt   time.Time `gorm:"not null;default:now()"`
}

// TableName explicitly sets the table name for GORM.
func (CardModel) TableName() string {
	return "cards"
}
