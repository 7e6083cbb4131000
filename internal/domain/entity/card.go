package entity

import "time"

// Card is a unit of work belonging to exactly one board.
type Card struct {
	ID          int64     `json:"id"`
	BoardID     int64     `json:"boardId"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
