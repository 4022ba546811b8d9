package gateway

import "errors"

// ErrNotFound matches every NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError is the 404 tier of the gateway's error taxonomy. Message is
// returned to API callers verbatim.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// Is lets errors.Is(err, ErrNotFound) match any NotFoundError.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

var (
	ErrPlayerNotFound       = &NotFoundError{Message: "Player not found"}
	ErrItemNotFound         = &NotFoundError{Message: "Item not found"}
	ErrWikiPageNotFound     = &NotFoundError{Message: "No wiki page found"}
	ErrQuestNotFound        = &NotFoundError{Message: "Quest not found"}
	ErrSlayerMasterNotFound = &NotFoundError{Message: "Slayer master not found"}
)
