// Package model contains the GORM-specific structs mapped to database tables.
package model

import "time"

// BoardModel is the GORM-specific struct for the 'boards' table.
type BoardModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

// TableName explicitly sets the table name for GORM.
func (BoardModel) TableName() string {
	return "boards"
}
