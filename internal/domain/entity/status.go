package entity

import "github.com/pkg/errors"

// Status describes a card's workflow stage. The set is closed: any other
// value coming back from storage is a data corruption, not a new stage.
type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// ErrUnknownStatus is returned when a status value falls outside the closed set.
var ErrUnknownStatus = errors.New("unknown card status")

// ParseStatus validates a raw status value against the closed set.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusTodo, StatusDoing, StatusDone:
		return Status(raw), nil
	default:
		return "", errors.Wrapf(ErrUnknownStatus, "%q", raw)
	}
}

// Valid reports whether the status belongs to the closed set.
func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))

	return err == nil
}
