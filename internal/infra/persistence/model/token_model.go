package model

import "time"

// TokenModel is the GORM-specific struct for the 'tokens' table. Rows are
// created out of band; the application only ever selects from this table.
type TokenModel struct {
	ID        string    `gorm:"type:text;primaryKey"`
	ExpiredAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (TokenModel) TableName() string {
	return "tokens"
}
