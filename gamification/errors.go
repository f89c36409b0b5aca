package gamification

import "errors"

// ErrInvalidInput is returned when a caller passes a value the engine refuses
// to act on, such as a negative XP delta or an unknown badge name. State is
// never mutated when it is returned.
var ErrInvalidInput = errors.New("gamification: invalid input")
