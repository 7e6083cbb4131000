// Package entity contains the core domain objects of the task-tracking system.
package entity

import "time"

// Board is a named collection of cards.
type Board struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// BoardSummary holds the per-status card counts of a single board. It is
// derived on every request and never stored.
type BoardSummary struct {
	Todo  int64 `json:"todo"`
	Doing int64 `json:"doing"`
	Done  int64 `json:"done"`
}
