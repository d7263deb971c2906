package reminder

import "errors"

var ErrParseStatus = errors.New("invalid status")

type Status struct {
	v string
}

func (s Status) String() string {
	return s.v
}

func ParseStatus(value string) (Status, error) {
	switch value {
	case "pending":
		return StatusPending, nil
	default:
		return StatusUnknown, ErrParseStatus
	}
}

// A reminder never leaves the pending state: there is no delivery
// confirmation callback that could drive a transition.
var (
	StatusUnknown = Status{}
	StatusPending = Status{v: "pending"}
)
